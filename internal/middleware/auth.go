package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hireflow/interview-api/internal/services"
)

// UserLocalKey is the fiber locals key holding the verified AuthUser.
const UserLocalKey = "user"

// RequireAuth rejects requests without a valid bearer token before the
// route handler runs. The verified user is attached to the request locals.
func RequireAuth(verifier services.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or invalid authorization header",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := verifier.Verify(c.Context(), token)
		if err != nil {
			log.Printf("⚠️  Token verification failed: %v\n", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals(UserLocalKey, user)
		return c.Next()
	}
}
