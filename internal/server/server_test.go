package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gaiapac/backend/internal/config"
	"github.com/gaiapac/backend/internal/models"
	"github.com/gaiapac/backend/internal/repository"
)

type stubSubmissionRepository struct{}

func (stubSubmissionRepository) Insert(ctx context.Context, submission *models.Submission) (*models.Submission, error) {
	submission.ID = "f3b4aefc-0003-4f5a-9e53-000000000003"
	submission.Status = models.SubmissionStatusPending
	return submission, nil
}

func (stubSubmissionRepository) Probe(ctx context.Context) error {
	return nil
}

var _ repository.SubmissionRepository = stubSubmissionRepository{}

func newTestServer() *Server {
	cfg := &config.Config{
		Environment:  "development",
		Port:         "5000",
		FrontendURL:  "https://gaiapac.ae",
		Frontend2URL: "https://www.gaiapac.ae",
	}
	return NewServer(cfg, stubSubmissionRepository{})
}

func TestServer_BothPathShapesRegistered(t *testing.T) {
	srv := newTestServer()

	for _, path := range []string{"/health", "/api/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}

	body := `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","message":"Hello"}`
	for _, path := range []string{"/contact", "/api/contact"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("POST %s = %d, want 200 — body: %s", path, rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), `"success":true`) {
			t.Errorf("POST %s body = %s", path, rec.Body.String())
		}
	}
}

func TestServer_ServiceDescriptorPaths(t *testing.T) {
	srv := newTestServer()

	for _, path := range []string{"/", "/info", "/api"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Gaiapac Backend API") {
			t.Errorf("GET %s body = %s", path, rec.Body.String())
		}
	}
}

func TestServer_MethodNotAllowed(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/health"},
		{http.MethodDelete, "/contact"},
		{http.MethodPut, "/info"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s = %d, want 405", tt.method, tt.path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Method not allowed") {
			t.Errorf("%s %s body = %s", tt.method, tt.path, rec.Body.String())
		}
	}
}

func TestServer_PreflightAnyPath(t *testing.T) {
	srv := newTestServer()

	for _, path := range []string{"/contact", "/api/contact", "/health", "/anything"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://gaiapac.ae")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("OPTIONS %s = %d, want 200", path, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("OPTIONS %s body = %q, want empty", path, rec.Body.String())
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://gaiapac.ae" {
			t.Errorf("OPTIONS %s Allow-Origin = %q", path, got)
		}
	}
}

func TestServer_RequestIDAssigned(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response is missing X-Request-ID")
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("X-Request-ID = %q, want the supplied id echoed", got)
	}
}
