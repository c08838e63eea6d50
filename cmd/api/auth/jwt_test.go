package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewJWTManagerFromEnvRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ISSUER", "issuer-for-test")

	manager, err := NewJWTManagerFromEnv()
	if err == nil {
		t.Fatalf("expected error when JWT_SECRET is empty")
	}
	if manager != nil {
		t.Fatalf("expected nil manager when env is invalid")
	}
}

func TestNewJWTManagerFromEnvUsesDefaultIssuer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "")

	manager, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager.issuer != "promptdeck" {
		t.Fatalf("expected default issuer promptdeck, got %q", manager.issuer)
	}
	if manager.ttl != 24*time.Hour {
		t.Fatalf("expected default ttl 24h, got %s", manager.ttl)
	}
}

func TestJWTManagerSignAndParseRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "test-issuer")

	manager, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := manager.Sign("user-001", []string{RolePro, RoleUser})
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	userID, roles, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if userID != "user-001" {
		t.Fatalf("expected userID user-001, got %q", userID)
	}
	if len(roles) != 2 || roles[0] != RolePro || roles[1] != RoleUser {
		t.Fatalf("expected roles [pro user], got %v", roles)
	}
}

func TestJWTManagerParseRejectsInvalidSignature(t *testing.T) {
	manager := &JWTManager{
		secret: []byte("service-secret"),
		issuer: "issuer",
		ttl:    time.Hour,
	}

	forgedClaims := jwt.MapClaims{
		"sub":   "user-001",
		"roles": []string{RoleAdmin},
		"iss":   "issuer",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	forgedToken := jwt.NewWithClaims(jwt.SigningMethodHS256, forgedClaims)
	tokenString, err := forgedToken.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("failed to sign forged token: %v", err)
	}

	_, _, err = manager.Parse(tokenString)
	if err == nil {
		t.Fatalf("expected parse error for invalid signature")
	}
}

func TestJWTManagerParseRejectsMissingSubClaim(t *testing.T) {
	manager := &JWTManager{
		secret: []byte("service-secret"),
		issuer: "issuer",
		ttl:    time.Hour,
	}

	claims := jwt.MapClaims{
		"roles": []string{RoleUser},
		"iss":   "issuer",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(manager.secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	_, _, err = manager.Parse(tokenString)
	if err == nil {
		t.Fatalf("expected parse error for missing sub claim")
	}
	if !strings.Contains(err.Error(), "token missing sub claim") {
		t.Fatalf("expected missing sub error, got %v", err)
	}
}

func TestJWTManagerParseAllowsMissingRolesClaim(t *testing.T) {
	manager := &JWTManager{
		secret: []byte("service-secret"),
		issuer: "issuer",
		ttl:    time.Hour,
	}

	claims := jwt.MapClaims{
		"sub": "user-001",
		"iss": "issuer",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(manager.secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	userID, roles, err := manager.Parse(tokenString)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if userID != "user-001" {
		t.Fatalf("expected userID user-001, got %q", userID)
	}
	if len(roles) != 0 {
		t.Fatalf("expected empty roles when claim is missing, got %v", roles)
	}
}

func TestHasAnyRole(t *testing.T) {
	testCases := []struct {
		name    string
		roles   []string
		allowed []string
		want    bool
	}{
		{name: "plain user is not a categorizer", roles: []string{RoleUser}, allowed: CategorizerRoles, want: false},
		{name: "pro may categorize", roles: []string{RolePro}, allowed: CategorizerRoles, want: true},
		{name: "admin may categorize", roles: []string{RoleAdmin}, allowed: CategorizerRoles, want: true},
		{name: "super_admin may categorize", roles: []string{RoleSuperAdmin}, allowed: CategorizerRoles, want: true},
		{name: "mixed roles intersect", roles: []string{RoleUser, RolePro}, allowed: CategorizerRoles, want: true},
		{name: "pro is not an operator", roles: []string{RolePro}, allowed: OperatorRoles, want: false},
		{name: "empty roles", roles: nil, allowed: CategorizerRoles, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasAnyRole(tc.roles, tc.allowed...); got != tc.want {
				t.Fatalf("HasAnyRole(%v, %v) = %v, want %v", tc.roles, tc.allowed, got, tc.want)
			}
		})
	}
}
