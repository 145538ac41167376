package handlers

import (
	"fmt"

	"musefolio/internal/forms"
	"musefolio/internal/images"

	"github.com/gofiber/fiber/v2"
)

// ProjectHandler handles admin project CRUD.
type ProjectHandler struct {
	store    ProjectStore
	cache    PageCache
	resolver images.Resolver
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(store ProjectStore, cache PageCache, resolver images.Resolver) *ProjectHandler {
	return &ProjectHandler{store: store, cache: cache, resolver: resolver}
}

// List returns all projects for the admin dashboard. Store failures fall back
// to an empty list so the dashboard always has something to render.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.store.List(c.Context())
	if err != nil {
		logStoreError("list projects", err)
		return c.JSON(fiber.Map{"projects": []interface{}{}})
	}
	return c.JSON(fiber.Map{"projects": projects, "count": len(projects)})
}

// Get returns a single project for the admin edit form.
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	project, err := h.store.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return storeFailed(c, "get project", err)
	}
	if project == nil {
		return c.Status(fiber.StatusNotFound).JSON(forms.State{
			Success: false,
			Message: "Project not found.",
		})
	}
	return c.JSON(fiber.Map{"project": project})
}

// Create validates and persists a new project.
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	file, err := formFile(c, "mainImageFile")
	if err != nil {
		return storeFailed(c, "read project image", err)
	}

	submission, issues := forms.ParseProject(formValues(c), file)
	if issues != nil {
		return validationFailed(c, "project", "Invalid project data.", issues)
	}

	if submission.ImageFile != nil {
		url, err := h.resolver.Resolve(c.Context(), submission.ImageFile.Filename, submission.ImageFile.Data)
		if err != nil {
			return storeFailed(c, "resolve project image", err)
		}
		submission.Input.ImageURL = url
	}

	project, err := h.store.Add(c.Context(), submission.Input)
	if err != nil {
		return storeFailed(c, "add project", err)
	}

	h.cache.Invalidate("/featured", "/projects", "/admin")
	countMutation("project", "create")

	return c.Status(fiber.StatusCreated).JSON(forms.State{
		Success:   true,
		Message:   fmt.Sprintf("Project %q added successfully!", project.Title),
		ProjectID: project.ID.Hex(),
		Document:  project,
	})
}

// Update validates a partial edit and merges it into the stored project.
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	file, err := formFile(c, "mainImageFile")
	if err != nil {
		return storeFailed(c, "read project image", err)
	}

	submission, issues := forms.ParseProjectUpdate(formValues(c), file)
	if issues != nil {
		return validationFailed(c, "project", "Invalid project data for editing.", issues)
	}

	if submission.ImageFile != nil {
		url, err := h.resolver.Resolve(c.Context(), submission.ImageFile.Filename, submission.ImageFile.Data)
		if err != nil {
			return storeFailed(c, "resolve project image", err)
		}
		submission.Update.ImageURL = &url
	}

	project, err := h.store.Update(c.Context(), c.Params("id"), submission.Update)
	if err != nil {
		return storeFailed(c, "update project", err)
	}
	if project == nil {
		return c.Status(fiber.StatusNotFound).JSON(forms.State{
			Success: false,
			Message: "Project not found for editing.",
		})
	}

	h.cache.Invalidate("/featured", "/projects", "/projects/"+project.Slug, "/admin")
	countMutation("project", "update")

	return c.JSON(forms.State{
		Success:   true,
		Message:   fmt.Sprintf("Project %q updated successfully!", project.Title),
		ProjectID: project.ID.Hex(),
		Document:  project,
	})
}

// Delete removes a project by identifier.
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.store.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return storeFailed(c, "delete project", err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(forms.State{
			Success: false,
			Message: "Project not found or already deleted.",
		})
	}

	h.cache.Invalidate("/featured", "/projects", "/admin")
	countMutation("project", "delete")

	return c.JSON(forms.State{
		Success: true,
		Message: "Project deleted successfully.",
	})
}
