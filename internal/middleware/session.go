package middleware

import (
	"log"

	"musefolio/pkg/auth"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the fixed admin session cookie.
const SessionCookieName = "musefolio-admin-session"

const (
	adminRootPath  = "/admin"
	adminLoginPath = "/admin/login"
)

// SessionGate protects everything under the admin prefix. Requests without a
// valid session cookie are redirected to the login page; a logged-in visit to
// the login page itself is redirected back to the admin root.
func SessionGate(sessionAuth *auth.SessionAuth) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		email, err := verifySession(sessionAuth, c.Cookies(SessionCookieName))
		authenticated := err == nil

		// Exact match only: anything else under /admin stays gated.
		if path == adminLoginPath || path == adminLoginPath+"/" {
			if authenticated {
				return c.Redirect(adminRootPath, fiber.StatusSeeOther)
			}
			return c.Next()
		}

		if !authenticated {
			return c.Redirect(adminLoginPath, fiber.StatusSeeOther)
		}

		c.Locals("admin_email", email)
		return c.Next()
	}
}

func verifySession(sessionAuth *auth.SessionAuth, cookie string) (string, error) {
	if cookie == "" {
		return "", auth.ErrInvalidSession
	}
	email, err := sessionAuth.VerifyToken(cookie)
	if err != nil {
		log.Printf("⚠️ Rejected admin session cookie: %v", err)
		return "", err
	}
	return email, nil
}
