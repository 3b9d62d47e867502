package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gaiapac/backend/internal/api/dto/common"
	"github.com/gaiapac/backend/internal/version"

	"github.com/gin-gonic/gin"
)

func TestInfoDescribe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", NewInfoHandler().Describe)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp common.InfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if resp.Message != "Gaiapac Backend API" {
		t.Errorf("Message = %q", resp.Message)
	}
	if resp.Version != version.Version {
		t.Errorf("Version = %q, want %q", resp.Version, version.Version)
	}
	if resp.Status != "running" {
		t.Errorf("Status = %q, want running", resp.Status)
	}
	if _, ok := resp.Endpoints["contact"]; !ok {
		t.Error("descriptor is missing the contact endpoint")
	}
	if _, ok := resp.Endpoints["health"]; !ok {
		t.Error("descriptor is missing the health endpoint")
	}
	if resp.Documentation == "" {
		t.Error("descriptor is missing the documentation pointer")
	}
}
