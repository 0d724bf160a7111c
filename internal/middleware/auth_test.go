package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"hireflow/interview-api/internal/services"
)

type stubVerifier struct {
	user *services.AuthUser
	err  error
}

func (s *stubVerifier) Verify(_ context.Context, _ string) (*services.AuthUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func protectedApp(verifier services.TokenVerifier) *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireAuth(verifier), func(c *fiber.Ctx) error {
		user := c.Locals(UserLocalKey).(*services.AuthUser)
		return c.JSON(fiber.Map{"userId": user.ID})
	})
	return app
}

func TestRequireAuthMissingHeader(t *testing.T) {
	app := protectedApp(&stubVerifier{user: &services.AuthUser{ID: "u1"}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	app := protectedApp(&stubVerifier{user: &services.AuthUser{ID: "u1"}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	app := protectedApp(&stubVerifier{err: services.ErrUnauthorized})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired-token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRequireAuthAttachesUser(t *testing.T) {
	app := protectedApp(&stubVerifier{user: &services.AuthUser{ID: "u1", Email: "hr@example.com"}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
