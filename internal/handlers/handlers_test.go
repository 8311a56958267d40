package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/handlers"
	"github.com/yungbote/careerpath-backend/internal/middleware"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/server"
	"github.com/yungbote/careerpath-backend/internal/services"
	"github.com/yungbote/careerpath-backend/internal/storage"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type testServer struct {
	router *gin.Engine
	store  *storage.MemStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	store := storage.NewMemStore(log)
	if err := store.SeedRoles(t.Context(), storage.DefaultRoles()); err != nil {
		t.Fatalf("SeedRoles: %v", err)
	}

	router := server.NewRouter(server.RouterConfig{
		RequestLog:         middleware.NewRequestLogMiddleware(log),
		UserHandler:        handlers.NewUserHandler(services.NewUserService(store, log)),
		ProgressHandler:    handlers.NewProgressHandler(services.NewProgressService(store, log)),
		RoleHandler:        handlers.NewRoleHandler(services.NewRoleService(store, log)),
		ApplicationHandler: handlers.NewApplicationHandler(services.NewApplicationService(store, log)),
		ConfidenceHandler:  handlers.NewConfidenceHandler(services.NewConfidenceService(store, log)),
		WaitlistHandler:    handlers.NewWaitlistHandler(services.NewWaitlistService(store, log)),
		CoachHandler:       handlers.NewCoachHandler(services.NewCoachService(nil, log)),
		WebhookHandler:     handlers.NewWebhookHandler(log, services.NewAutomationService(log, "")),
	})
	return &testServer{router: router, store: store}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func (ts *testServer) register(t *testing.T, email string) types.User {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/users", gin.H{"email": email})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: status=%d body=%s", email, rec.Code, rec.Body.String())
	}
	return decode[types.User](t, rec)
}

func (ts *testServer) roles(t *testing.T) []types.Role {
	t.Helper()
	rec := ts.do(t, http.MethodGet, "/api/roles", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list roles: status=%d", rec.Code)
	}
	return decode[[]types.Role](t, rec)
}

func TestHealthcheck(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/healthcheck", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: want=%d got=%d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("body: want=%q got=%q", "ok", rec.Body.String())
	}
}

func TestRegisterAndFetchUser(t *testing.T) {
	ts := newTestServer(t)

	user := ts.register(t, "asha@example.com")
	if user.Email != "asha@example.com" {
		t.Fatalf("email: want=%q got=%q", "asha@example.com", user.Email)
	}

	rec := ts.do(t, http.MethodGet, "/api/users/asha@example.com", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("fetch: status=%d body=%s", rec.Code, rec.Body.String())
	}
	fetched := decode[types.User](t, rec)
	if fetched.ID != user.ID {
		t.Fatalf("fetch id: want=%s got=%s", user.ID, fetched.ID)
	}

	rec = ts.do(t, http.MethodGet, "/api/users/missing@example.com", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing user: status=%d", rec.Code)
	}

	rec = ts.do(t, http.MethodPost, "/api/users", gin.H{"email": "asha@example.com"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: status=%d body=%s", rec.Code, rec.Body.String())
	}
	envelope := decode[handlers.ErrorEnvelope](t, rec)
	if envelope.Error.Code != "duplicate_email" {
		t.Fatalf("error code: want=%q got=%q", "duplicate_email", envelope.Error.Code)
	}
}

func TestProgressLifecycle(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "priya@example.com")

	rec := ts.do(t, http.MethodGet, "/api/progress/"+user.ID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get progress: status=%d body=%s", rec.Code, rec.Body.String())
	}
	progress := decode[types.UserProgress](t, rec)
	if progress.CurrentPhase != 0 {
		t.Fatalf("initial phase: want=0 got=%d", progress.CurrentPhase)
	}

	rec = ts.do(t, http.MethodPatch, "/api/progress/"+user.ID.String(), gin.H{
		"current_phase":       1,
		"confidence_baseline": 35,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("advance to onboarding: status=%d body=%s", rec.Code, rec.Body.String())
	}
	progress = decode[types.UserProgress](t, rec)
	if progress.CurrentPhase != 1 {
		t.Fatalf("phase: want=1 got=%d", progress.CurrentPhase)
	}
	if progress.ConfidenceBaseline == nil || *progress.ConfidenceBaseline != 35 {
		t.Fatalf("baseline: got=%v", progress.ConfidenceBaseline)
	}

	rec = ts.do(t, http.MethodPatch, "/api/progress/"+user.ID.String(), gin.H{"current_phase": 0})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("backward phase: status=%d", rec.Code)
	}

	rec = ts.do(t, http.MethodPatch, "/api/progress/"+user.ID.String(), gin.H{"current_phase": 2})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("premature discovery: status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = ts.do(t, http.MethodGet, "/api/progress/"+uuid.NewString(), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown user progress: status=%d", rec.Code)
	}
}

func TestRoleCatalog(t *testing.T) {
	ts := newTestServer(t)

	roles := ts.roles(t)
	if len(roles) != 5 {
		t.Fatalf("catalog size: want=5 got=%d", len(roles))
	}

	rec := ts.do(t, http.MethodGet, "/api/roles/"+roles[0].ID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get role: status=%d", rec.Code)
	}
	role := decode[types.Role](t, rec)
	if role.Title != roles[0].Title {
		t.Fatalf("role title: want=%q got=%q", roles[0].Title, role.Title)
	}

	rec = ts.do(t, http.MethodGet, "/api/roles/not-a-uuid", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed id: status=%d", rec.Code)
	}

	rec = ts.do(t, http.MethodGet, "/api/roles/"+uuid.NewString(), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown role: status=%d", rec.Code)
	}
}

func TestUserRoleLinking(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "link@example.com")
	roles := ts.roles(t)
	base := fmt.Sprintf("/api/users/%s/roles", user.ID)

	// Linking without a body leaves the shortlist flag off.
	rec := ts.do(t, http.MethodPost, base+"/"+roles[0].ID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("link: status=%d body=%s", rec.Code, rec.Body.String())
	}
	link := decode[types.UserRole](t, rec)
	if link.IsShortlisted {
		t.Fatalf("shortlist flag set without body")
	}

	// Relinking upserts instead of duplicating.
	rec = ts.do(t, http.MethodPost, base+"/"+roles[0].ID.String(), gin.H{"is_shortlisted": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("relink: status=%d body=%s", rec.Code, rec.Body.String())
	}
	relink := decode[types.UserRole](t, rec)
	if relink.ID != link.ID {
		t.Fatalf("relink created new row: want=%s got=%s", link.ID, relink.ID)
	}
	if !relink.IsShortlisted {
		t.Fatalf("shortlist flag not updated on relink")
	}

	rec = ts.do(t, http.MethodPatch, base+"/"+roles[0].ID.String(), gin.H{"is_selected": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("update link: status=%d body=%s", rec.Code, rec.Body.String())
	}
	updated := decode[types.UserRole](t, rec)
	if !updated.IsSelected || !updated.IsShortlisted {
		t.Fatalf("link flags: got=%+v", updated)
	}

	rec = ts.do(t, http.MethodGet, base, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list links: status=%d", rec.Code)
	}
	links := decode[[]types.UserRoleWithRole](t, rec)
	if len(links) != 1 {
		t.Fatalf("link count: want=1 got=%d", len(links))
	}
	if links[0].Role.Title != roles[0].Title {
		t.Fatalf("embedded role title: want=%q got=%q", roles[0].Title, links[0].Role.Title)
	}

	rec = ts.do(t, http.MethodPost, base+"/"+uuid.NewString(), nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("link unknown role: status=%d", rec.Code)
	}
}

func TestApplicationEndpoints(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "apply@example.com")
	roles := ts.roles(t)

	rec := ts.do(t, http.MethodPost, "/api/applications", gin.H{
		"user_id": user.ID,
		"role_id": roles[0].ID,
		"status":  "sent",
		"method":  "easyapply",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create application: status=%d body=%s", rec.Code, rec.Body.String())
	}
	app := decode[types.Application](t, rec)
	if app.SubmittedAt.IsZero() {
		t.Fatalf("submitted_at not set")
	}

	rec = ts.do(t, http.MethodPost, "/api/applications", gin.H{
		"user_id": user.ID,
		"role_id": roles[0].ID,
		"status":  "ghosted",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid status: status=%d", rec.Code)
	}

	rec = ts.do(t, http.MethodPatch, "/api/applications/"+app.ID.String(), gin.H{"status": "interview"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update application: status=%d body=%s", rec.Code, rec.Body.String())
	}
	updated := decode[types.Application](t, rec)
	if updated.Status != "interview" {
		t.Fatalf("status: want=%q got=%q", "interview", updated.Status)
	}
	if !updated.SubmittedAt.Equal(app.SubmittedAt) {
		t.Fatalf("submitted_at changed by patch")
	}

	rec = ts.do(t, http.MethodGet, fmt.Sprintf("/api/users/%s/applications", user.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list applications: status=%d", rec.Code)
	}
	apps := decode[[]types.ApplicationWithRole](t, rec)
	if len(apps) != 1 {
		t.Fatalf("application count: want=1 got=%d", len(apps))
	}
	if apps[0].Role.ID != roles[0].ID {
		t.Fatalf("embedded role: want=%s got=%s", roles[0].ID, apps[0].Role.ID)
	}
}

func TestConfidenceEndpoints(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "conf@example.com")

	for _, level := range []int{30, 45} {
		rec := ts.do(t, http.MethodPost, "/api/confidence", gin.H{
			"user_id":          user.ID,
			"confidence_level": level,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("add confidence %d: status=%d body=%s", level, rec.Code, rec.Body.String())
		}
	}

	rec := ts.do(t, http.MethodPost, "/api/confidence", gin.H{
		"user_id":          user.ID,
		"confidence_level": 101,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("out of range level: status=%d", rec.Code)
	}

	rec = ts.do(t, http.MethodGet, fmt.Sprintf("/api/users/%s/confidence", user.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("history: status=%d", rec.Code)
	}
	history := decode[[]types.ConfidenceEntry](t, rec)
	if len(history) != 2 {
		t.Fatalf("history length: want=2 got=%d", len(history))
	}
	if history[0].ConfidenceLevel != 30 || history[1].ConfidenceLevel != 45 {
		t.Fatalf("history out of order: got=%d,%d", history[0].ConfidenceLevel, history[1].ConfidenceLevel)
	}
}

func TestWaitlistEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/waitlist", gin.H{"email": "wait@example.com", "type": "training"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("waitlist signup: status=%d body=%s", rec.Code, rec.Body.String())
	}
	entry := decode[types.WaitlistEntry](t, rec)
	if entry.Type != types.WaitlistTypeTraining {
		t.Fatalf("type: want=%q got=%q", types.WaitlistTypeTraining, entry.Type)
	}

	rec = ts.do(t, http.MethodPost, "/api/waitlist", gin.H{"email": "wait@example.com", "type": "newsletter"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid type: status=%d", rec.Code)
	}
}

func TestCoachEndpointsServeFallbackWithoutGenerator(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/ai/generate-questions", gin.H{
		"education":       "B.Com",
		"work_experience": "2 years retail",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("generate questions: status=%d body=%s", rec.Code, rec.Body.String())
	}
	questions := decode[services.QuestionSet](t, rec)
	if len(questions.Questions) != 3 {
		t.Fatalf("question count: want=3 got=%d", len(questions.Questions))
	}

	rec = ts.do(t, http.MethodPost, "/api/ai/generate-narrative", gin.H{})
	if rec.Code != http.StatusOK {
		t.Fatalf("generate narrative: status=%d body=%s", rec.Code, rec.Body.String())
	}
	narrative := decode[services.NarrativeResult](t, rec)
	if narrative.Narrative == "" {
		t.Fatalf("narrative empty")
	}
}

func TestWebhookAcknowledgesImmediately(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/automation/webhook", gin.H{
		"type":    "career_analysis",
		"payload": gin.H{"user_id": uuid.NewString()},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("webhook: status=%d body=%s", rec.Code, rec.Body.String())
	}
	ack := decode[map[string]any](t, rec)
	if ack["success"] != true {
		t.Fatalf("ack: got=%v", ack)
	}

	rec = ts.do(t, http.MethodPost, "/api/automation/webhook", gin.H{"payload": gin.H{}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing type: status=%d", rec.Code)
	}
}
