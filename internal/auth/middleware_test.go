package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tasklight/tasklight/internal/auth"
	"github.com/tasklight/tasklight/internal/shared"
)

func newProtectedHandler(t *testing.T, tokens *auth.TokenService) (http.Handler, *shared.Identity) {
	t.Helper()
	var seen shared.Identity
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := shared.IdentityFromContext(r.Context())
		if !ok {
			t.Fatalf("identity missing from context")
		}
		seen = identity
		w.WriteHeader(http.StatusOK)
	})
	return auth.RequireAuth(tokens, nil)(inner), &seen
}

func decodeEnvelope(t *testing.T, res *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestRequireAuthMissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	handler, _ := newProtectedHandler(t, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
	body := decodeEnvelope(t, res)
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
}

func TestRequireAuthRejectsNonBearerScheme(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	handler, _ := newProtectedHandler(t, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	handler, _ := newProtectedHandler(t, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", res.Code)
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	expired := auth.NewTokenService("secret", -time.Minute)
	tok, err := expired.Issue(1, "a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tokens := auth.NewTokenService("secret", time.Hour)
	handler, _ := newProtectedHandler(t, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	// Expired and malformed tokens surface the same 403.
	if res.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", res.Code)
	}
}

func TestRequireAuthResolvesIdentity(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	tok, err := tokens.Issue(9, "owner@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	handler, seen := newProtectedHandler(t, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if seen.UserID != 9 || seen.Email != "owner@x.com" {
		t.Fatalf("unexpected identity: %+v", *seen)
	}
}
