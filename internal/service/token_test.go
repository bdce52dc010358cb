package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/msomdec/recipe-hub/internal/domain"
	"github.com/msomdec/recipe-hub/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests!!"

func newTestTokenService(t *testing.T) *service.TokenService {
	t.Helper()
	tokens, err := service.NewTokenService(testJWTSecret, "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return tokens
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := newTestTokenService(t)

	signed, err := tokens.Issue("42")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	subject, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "42" {
		t.Fatalf("expected subject 42, got %s", subject)
	}
}

func TestTokenService_Expired(t *testing.T) {
	tokens := newTestTokenService(t)

	signed, err := tokens.IssueWithTTL("42", -time.Minute)
	if err != nil {
		t.Fatalf("IssueWithTTL: %v", err)
	}

	_, err = tokens.Verify(signed)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	tokens := newTestTokenService(t)
	other, err := service.NewTokenService("another-secret-entirely-32-chars!", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	signed, err := other.Issue("42")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = tokens.Verify(signed)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_AlgorithmMismatch(t *testing.T) {
	hs256 := newTestTokenService(t)
	hs512, err := service.NewTokenService(testJWTSecret, "HS512", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	// Same secret, different declared algorithm: must be rejected.
	signed, err := hs512.Issue("42")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = hs256.Verify(signed)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	tokens := newTestTokenService(t)

	_, err := tokens.Verify("not.a.jwt")
	if !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestNewTokenService_RejectsNonHMAC(t *testing.T) {
	for _, alg := range []string{"RS256", "ES256", "none", "bogus"} {
		if _, err := service.NewTokenService(testJWTSecret, alg, time.Hour); err == nil {
			t.Errorf("expected error for algorithm %s", alg)
		}
	}
}
