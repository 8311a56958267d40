package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/yungbote/careerpath-backend/internal/platform/errs"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, baseURL string) Client {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", baseURL)
	t.Setenv("OPENAI_MAX_RETRIES", "2")
	c, err := NewClient(newTestLogger(t))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func completionResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewClient(newTestLogger(t)); err == nil {
		t.Fatalf("NewClient: expected error without api key")
	}
}

func TestGenerateJSONParsesModelContent(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(completionResponse(`{"narrative":"A strong story."}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	obj, err := c.GenerateJSON(context.Background(), "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if obj["narrative"] != "A strong story." {
		t.Fatalf("parsed object: got=%v", obj)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization: want=%q got=%q", "Bearer test-key", gotAuth)
	}
	if gotReq.ResponseFormat.Type != "json_object" {
		t.Fatalf("response_format: want=%q got=%q", "json_object", gotReq.ResponseFormat.Type)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("messages: got=%+v", gotReq.Messages)
	}
}

func TestGenerateJSONRetriesTransientStatuses(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(completionResponse(`{"ok":true}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	obj, err := c.GenerateJSON(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if obj["ok"] != true {
		t.Fatalf("parsed object: got=%v", obj)
	}
	if hits.Load() != 2 {
		t.Fatalf("request count: want=2 got=%d", hits.Load())
	}
}

func TestGenerateJSONDoesNotRetryClientErrors(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"bad request"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.GenerateJSON(context.Background(), "s", "u")
	if !errors.Is(err, errs.ErrDependencyFailure) {
		t.Fatalf("GenerateJSON: want=ErrDependencyFailure got=%v", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("request count: want=1 got=%d", hits.Load())
	}
}

func TestGenerateJSONRejectsNonJSONContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionResponse("plain text, not json"))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.GenerateJSON(context.Background(), "s", "u")
	if err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("GenerateJSON: want parse error, got %v", err)
	}
}
