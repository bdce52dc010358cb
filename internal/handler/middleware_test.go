package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/msomdec/recipe-hub/internal/service"
)

// registerAndLogin creates a user through the API and returns a bearer token.
func registerAndLogin(t *testing.T, srv string, email, password string) string {
	t.Helper()

	body := strings.NewReader(`{"email":"` + email + `","password":"` + password + `"}`)
	resp, err := http.Post(srv+"/auth/register", "application/json", body)
	if err != nil {
		t.Fatalf("POST /auth/register: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.StatusCode)
	}

	resp, err = http.PostForm(srv+"/auth/login", url.Values{
		"username": {email},
		"password": {password},
	})
	if err != nil {
		t.Fatalf("POST /auth/login: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	if token.TokenType != "bearer" {
		t.Fatalf("expected token_type bearer, got %q", token.TokenType)
	}
	return token.AccessToken
}

func getMe(t *testing.T, srv, authorization string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, srv+"/auth/me", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /auth/me: %v", err)
	}
	return resp
}

func TestRequireAuth_ValidToken(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	token := registerAndLogin(t, srv.URL, "mw@example.com", "password123")

	resp := getMe(t, srv.URL, "Bearer "+token)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp := getMe(t, srv.URL, "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("WWW-Authenticate"); got != "Bearer" {
		t.Fatalf("expected WWW-Authenticate: Bearer, got %q", got)
	}
}

func TestRequireAuth_WrongScheme(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	token := registerAndLogin(t, srv.URL, "mw@example.com", "password123")

	resp := getMe(t, srv.URL, "Basic "+token)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRequireAuth_TamperedToken(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	token := registerAndLogin(t, srv.URL, "mw@example.com", "password123")

	// Replace the signature segment entirely.
	parts := strings.SplitN(token, ".", 3)
	tampered := parts[0] + "." + parts[1] + ".invalidsignature"
	resp := getMe(t, srv.URL, "Bearer "+tampered)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	srv, svc := newTestServer(t, nil)

	user, err := svc.Auth.Register(context.Background(), "expired@example.com", "password123", nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	tokens, err := service.NewTokenService(testJWTSecret, "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	expired, err := tokens.IssueWithTTL(strconv.FormatInt(user.ID, 10), -time.Minute)
	if err != nil {
		t.Fatalf("IssueWithTTL: %v", err)
	}

	resp := getMe(t, srv.URL, "Bearer "+expired)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", resp.StatusCode)
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()

	if got := resp.Header.Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected nosniff, got %q", got)
	}
	if got := resp.Header.Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("expected DENY, got %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/recipes", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS /recipes: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	// No origins configured allows any origin.
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}

func TestRequestLogger_EchoesRequestID(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("X-Request-ID", "test-request-id")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()

	if got := resp.Header.Get("X-Request-ID"); got != "test-request-id" {
		t.Fatalf("expected request ID to be echoed, got %q", got)
	}
}

func TestLoginRateLimit(t *testing.T) {
	limiter := service.NewLoginLimiter(0.0001, 2)
	defer limiter.Close()
	srv, _ := newTestServer(t, limiter)

	attempt := func() int {
		resp, err := http.PostForm(srv.URL+"/auth/login", url.Values{
			"username": {"nobody@example.com"},
			"password": {"wrong"},
		})
		if err != nil {
			t.Fatalf("POST /auth/login: %v", err)
		}
		resp.Body.Close()
		return resp.StatusCode
	}

	for i := 0; i < 2; i++ {
		if status := attempt(); status != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, status)
		}
	}
	if status := attempt(); status != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", status)
	}
}
