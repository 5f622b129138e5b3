package middleware

import (
	"github.com/gofiber/fiber/v2"

	"hirestack/recruitdesk/internal/models"
	"hirestack/recruitdesk/internal/repositories"
	"hirestack/recruitdesk/internal/services"
)

// SessionCookie is the auth cookie name the dashboard session rides in.
const SessionCookie = "recruitdesk_session"

const userLocal = "current_user"

// Authenticate verifies the session cookie and attaches the account to the
// request. It runs on every navigable request; there is no session cache.
func Authenticate(auth services.AuthService, users repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "not authenticated",
			})
		}

		userID, err := auth.ParseToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "not authenticated",
			})
		}

		user, err := users.FindByID(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "not authenticated",
			})
		}

		c.Locals(userLocal, user)
		return c.Next()
	}
}

// RequireAccess holds accounts without the access flag at the pending
// approval screen. Runs after Authenticate.
func RequireAccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !user.Access {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   "pending approval",
				"pending": true,
			})
		}
		return c.Next()
	}
}

// RequireAdmin gates the user administration surface.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "admin role required",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated account attached by Authenticate.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocal).(*models.User)
	return user
}
