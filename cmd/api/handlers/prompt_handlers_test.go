package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"promptdeck/services"
)

func TestPromptLookupStatus(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid hex id",
			err:        fmt.Errorf("invalid prompt id: %w", primitive.ErrInvalidHex),
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_prompt_id",
		},
		{
			name:       "missing document",
			err:        mongo.ErrNoDocuments,
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "store outage is not a 404",
			err:        errors.New("server selection timeout"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "store_failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, code := promptLookupStatus(tc.err)
			if status != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, status)
			}
			if code != tc.wantCode {
				t.Fatalf("expected code %q, got %q", tc.wantCode, code)
			}
		})
	}
}

func TestGetPromptHandlerRejectsMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// the id is rejected before any repository access
	svc := services.NewPromptService(nil, nil)
	r := gin.New()
	r.GET("/prompts/:id", GetPromptHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/prompts/not-a-hex-id", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] != "invalid_prompt_id" {
		t.Fatalf("expected invalid_prompt_id, got %q", body["error"])
	}
}
