package app

import (
	"github.com/yungbote/careerpath-backend/internal/platform/envutil"
)

const (
	StorageBackendMemory   = "memory"
	StorageBackendPostgres = "postgres"
)

type Config struct {
	Port                 string
	StorageBackend       string
	CORSOrigins          []string
	OpenAIAPIKey         string
	AutomationForwardURL string
}

func LoadConfig() Config {
	return Config{
		Port:                 envutil.Str("PORT", "8080"),
		StorageBackend:       envutil.Str("STORAGE_BACKEND", StorageBackendMemory),
		CORSOrigins:          envutil.List("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		OpenAIAPIKey:         envutil.Str("OPENAI_API_KEY", ""),
		AutomationForwardURL: envutil.Str("AUTOMATION_WEBHOOK_URL", ""),
	}
}
