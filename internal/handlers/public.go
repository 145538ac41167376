package handlers

import (
	"musefolio/internal/forms"
	"musefolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PublicHandler serves the public-facing reads and the contact form. Reads go
// through the page cache; a failed read degrades to an empty document so the
// rendering layer always has a defined fallback.
type PublicHandler struct {
	projects ProjectStore
	content  ContentStore
	messages MessageStore
	cache    PageCache
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(projects ProjectStore, content ContentStore, messages MessageStore, cache PageCache) *PublicHandler {
	return &PublicHandler{projects: projects, content: content, messages: messages, cache: cache}
}

// ListProjects returns all projects; featured=true narrows to the home page
// selection.
func (h *PublicHandler) ListProjects(c *fiber.Ctx) error {
	// The featured list gets its own cache key; "/" belongs to the home
	// content singleton.
	route := "/projects"
	featured := c.Query("featured") == "true"
	if featured {
		route = "/featured"
	}

	if cached, ok := h.cache.Get(route); ok {
		return c.JSON(cached)
	}

	var (
		projects interface{}
		err      error
	)
	if featured {
		projects, err = h.projects.ListFeatured(c.Context())
	} else {
		projects, err = h.projects.List(c.Context())
	}
	if err != nil {
		logStoreError("list projects", err)
		return c.JSON(fiber.Map{"projects": []interface{}{}})
	}

	response := fiber.Map{"projects": projects}
	h.cache.Set(route, response)
	return c.JSON(response)
}

// GetProject returns a single project by slug.
func (h *PublicHandler) GetProject(c *fiber.Ctx) error {
	slug := c.Params("slug")
	route := "/projects/" + slug

	if cached, ok := h.cache.Get(route); ok {
		return c.JSON(cached)
	}

	project, err := h.projects.GetBySlug(c.Context(), slug)
	if err != nil {
		return storeFailed(c, "get project by slug", err)
	}
	if project == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}

	response := fiber.Map{"project": project}
	h.cache.Set(route, response)
	return c.JSON(response)
}

// GetContent returns one of the three page content singletons by name.
func (h *PublicHandler) GetContent(c *fiber.Ctx) error {
	page := c.Params("page")
	route := contentRoute(page)
	if route == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown page"})
	}

	if cached, ok := h.cache.Get(route); ok {
		return c.JSON(cached)
	}

	var (
		content interface{}
		err     error
	)
	switch page {
	case "home":
		content, err = h.content.GetHome(c.Context())
	case "about":
		content, err = h.content.GetAbout(c.Context())
	case "contact":
		content, err = h.content.GetContact(c.Context())
	}
	if err != nil {
		logStoreError("get "+page+" content", err)
		return c.JSON(fiber.Map{"content": nil})
	}

	response := fiber.Map{"content": content}
	h.cache.Set(route, response)
	return c.JSON(response)
}

func contentRoute(page string) string {
	switch page {
	case "home":
		return "/"
	case "about":
		return "/about"
	case "contact":
		return "/contact"
	}
	return ""
}

// SubmitContact validates and stores a public contact-form submission.
func (h *PublicHandler) SubmitContact(c *fiber.Ctx) error {
	input, issues := forms.ParseContactMessage(formValues(c))
	if issues != nil {
		return validationFailed(c, "contact_message", "Invalid form data.", issues)
	}

	if _, err := h.messages.Add(c.Context(), input.Name, input.Email, input.Subject, input.Message); err != nil {
		return storeFailed(c, "save contact message", err)
	}

	if m := services.GetMetrics(); m != nil {
		m.MessagesReceived.Inc()
	}

	return c.JSON(forms.State{
		Success: true,
		Message: "Thank you for your message! We'll get back to you soon.",
	})
}
