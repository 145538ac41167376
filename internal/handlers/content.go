package handlers

import (
	"musefolio/internal/forms"
	"musefolio/internal/images"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler handles the per-page content edit surface. Updates follow
// the merge-then-write discipline: the handler fetches the current document,
// overlays the validated form fields, and hands the store a complete document.
type ContentHandler struct {
	store    ContentStore
	cache    PageCache
	resolver images.Resolver
}

// NewContentHandler creates a new content handler
func NewContentHandler(store ContentStore, cache PageCache, resolver images.Resolver) *ContentHandler {
	return &ContentHandler{store: store, cache: cache, resolver: resolver}
}

// GetHome returns the home page content for the admin edit form.
func (h *ContentHandler) GetHome(c *fiber.Ctx) error {
	content, err := h.store.GetHome(c.Context())
	if err != nil {
		return storeFailed(c, "get home content", err)
	}
	return c.JSON(fiber.Map{"content": content})
}

// UpdateHome validates and persists the home page copy. The form carries
// every field, so the parsed result is already the complete document.
func (h *ContentHandler) UpdateHome(c *fiber.Ctx) error {
	content, issues := forms.ParseHomeContent(formValues(c))
	if issues != nil {
		return validationFailed(c, "home_content", "Invalid home page content data.", issues)
	}

	updated, err := h.store.UpdateHome(c.Context(), content)
	if err != nil {
		return storeFailed(c, "update home content", err)
	}

	h.cache.Invalidate("/", "/admin/edit-home", "/admin")
	countMutation("content", "update_home")

	return c.JSON(forms.State{
		Success:  true,
		Message:  "Home page content updated successfully!",
		Document: updated,
	})
}

// GetAbout returns the about page content for the admin edit form.
func (h *ContentHandler) GetAbout(c *fiber.Ctx) error {
	content, err := h.store.GetAbout(c.Context())
	if err != nil {
		return storeFailed(c, "get about content", err)
	}
	return c.JSON(fiber.Map{"content": content})
}

// UpdateAbout validates the about form, merges it over the current document
// (the profile image survives unless a new file was uploaded), and persists.
func (h *ContentHandler) UpdateAbout(c *fiber.Ctx) error {
	file, err := formFile(c, "profileImageFile")
	if err != nil {
		return storeFailed(c, "read profile image", err)
	}

	submission, issues := forms.ParseAboutContent(formValues(c), file)
	if issues != nil {
		return validationFailed(c, "about_content", "Invalid about page data.", issues)
	}

	current, err := h.store.GetAbout(c.Context())
	if err != nil {
		return storeFailed(c, "get about content", err)
	}

	content := submission.Content
	content.ProfileImage = current.ProfileImage
	if submission.ProfileImageFile != nil {
		url, err := h.resolver.Resolve(c.Context(), submission.ProfileImageFile.Filename, submission.ProfileImageFile.Data)
		if err != nil {
			return storeFailed(c, "resolve profile image", err)
		}
		content.ProfileImage = url
	}
	if content.SkillItems == nil {
		content.SkillItems = current.SkillItems
	}
	if content.ExperienceItems == nil {
		content.ExperienceItems = current.ExperienceItems
	}

	updated, err := h.store.UpdateAbout(c.Context(), content)
	if err != nil {
		return storeFailed(c, "update about content", err)
	}

	h.cache.Invalidate("/about", "/admin/edit-about", "/admin")
	countMutation("content", "update_about")

	return c.JSON(forms.State{
		Success:  true,
		Message:  "About page content updated successfully!",
		Document: updated,
	})
}

// GetContact returns the contact page content for the admin edit form.
func (h *ContentHandler) GetContact(c *fiber.Ctx) error {
	content, err := h.store.GetContact(c.Context())
	if err != nil {
		return storeFailed(c, "get contact content", err)
	}
	return c.JSON(fiber.Map{"content": content})
}

// UpdateContact validates and persists the contact page copy.
func (h *ContentHandler) UpdateContact(c *fiber.Ctx) error {
	content, issues := forms.ParseContactContent(formValues(c))
	if issues != nil {
		return validationFailed(c, "contact_content", "Invalid contact page data.", issues)
	}

	updated, err := h.store.UpdateContact(c.Context(), content)
	if err != nil {
		return storeFailed(c, "update contact content", err)
	}

	h.cache.Invalidate("/contact", "/admin/edit-contact", "/admin")
	countMutation("content", "update_contact")

	return c.JSON(forms.State{
		Success:  true,
		Message:  "Contact page content updated successfully!",
		Document: updated,
	})
}
