package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"promptdeck/cmd/api/auth"
)

func newTestManager(t *testing.T) *auth.JWTManager {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "test-issuer")

	manager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("failed to create jwt manager: %v", err)
	}
	return manager
}

func newTestRouter(manager *auth.JWTManager, allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/protected", RequireRoles(manager, allowed...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
		})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRolesRejectsMissingToken(t *testing.T) {
	manager := newTestManager(t)
	r := newTestRouter(manager, auth.CategorizerRoles...)

	w := doRequest(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireRolesRejectsGarbageToken(t *testing.T) {
	manager := newTestManager(t)
	r := newTestRouter(manager, auth.CategorizerRoles...)

	w := doRequest(r, "not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireRolesRejectsInsufficientRole(t *testing.T) {
	manager := newTestManager(t)
	r := newTestRouter(manager, auth.CategorizerRoles...)

	token, err := manager.Sign("user-001", []string{auth.RoleUser})
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	w := doRequest(r, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for role user, got %d", w.Code)
	}
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	manager := newTestManager(t)
	r := newTestRouter(manager, auth.CategorizerRoles...)

	for _, role := range []string{auth.RolePro, auth.RoleAdmin, auth.RoleSuperAdmin} {
		token, err := manager.Sign("user-001", []string{role})
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		w := doRequest(r, token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for role %s, got %d", role, w.Code)
		}
	}
}

func TestRequireRolesWithoutAllowListOnlyAuthenticates(t *testing.T) {
	manager := newTestManager(t)
	r := newTestRouter(manager)

	token, err := manager.Sign("user-001", []string{auth.RoleUser})
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	w := doRequest(r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for any authenticated user, got %d", w.Code)
	}
}
