package handlers

import (
	"log"
	"time"

	"musefolio/internal/forms"
	"musefolio/internal/middleware"
	"musefolio/internal/services"
	"musefolio/pkg/auth"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler issues and clears the admin session cookie. There is exactly
// one allowed identity, configured at startup.
type AuthHandler struct {
	sessionAuth   *auth.SessionAuth
	adminEmail    string
	adminPassword string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessionAuth *auth.SessionAuth, adminEmail, adminPassword string) *AuthHandler {
	return &AuthHandler{
		sessionAuth:   sessionAuth,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// Login checks submitted credentials against the configured admin identity.
// A mismatch in either field yields the same generic message, and no cookie
// is set.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	input, issues := forms.ParseLogin(formValues(c))
	if issues != nil {
		return validationFailed(c, "login", "Email and password are required.", issues)
	}

	emailOK := input.Email == h.adminEmail
	passwordOK := auth.VerifyPassword(h.adminPassword, input.Password)
	if !emailOK || !passwordOK {
		log.Printf("⚠️ Failed admin login attempt for: %s", input.Email)
		countLogin("failure")
		return c.Status(fiber.StatusUnauthorized).JSON(forms.State{
			Success: false,
			Message: "Invalid email or password.",
		})
	}

	token, err := h.sessionAuth.IssueToken(input.Email)
	if err != nil {
		return storeFailed(c, "issue session token", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.sessionAuth.Expiry()),
		HTTPOnly: true,
		Secure:   c.Protocol() == "https",
		SameSite: "Lax",
		Path:     "/",
	})

	countLogin("success")
	return c.JSON(forms.State{Success: true, Message: "Logged in."})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return c.JSON(forms.State{Success: true, Message: "Logged out."})
}

func countLogin(outcome string) {
	if m := services.GetMetrics(); m != nil {
		m.LoginAttempts.WithLabelValues(outcome).Inc()
	}
}
