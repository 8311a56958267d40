package app

import (
	"github.com/yungbote/careerpath-backend/internal/middleware"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type Middleware struct {
	RequestLog *middleware.RequestLogMiddleware
}

func wireMiddleware(log *logger.Logger) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		RequestLog: middleware.NewRequestLogMiddleware(log),
	}
}
