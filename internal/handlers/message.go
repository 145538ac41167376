package handlers

import (
	"musefolio/internal/forms"

	"github.com/gofiber/fiber/v2"
)

// MessageHandler handles the admin inbox.
type MessageHandler struct {
	store MessageStore
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(store MessageStore) *MessageHandler {
	return &MessageHandler{store: store}
}

// List returns all contact messages, newest first. Store failures fall back
// to an empty inbox.
func (h *MessageHandler) List(c *fiber.Ctx) error {
	messages, err := h.store.List(c.Context())
	if err != nil {
		logStoreError("list messages", err)
		return c.JSON(fiber.Map{"messages": []interface{}{}})
	}
	return c.JSON(fiber.Map{"messages": messages, "count": len(messages)})
}

// MarkRead flags a message as read.
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	return h.toggle(c, true)
}

// MarkUnread flags a message as unread.
func (h *MessageHandler) MarkUnread(c *fiber.Ctx) error {
	return h.toggle(c, false)
}

func (h *MessageHandler) toggle(c *fiber.Ctx, read bool) error {
	var (
		changed bool
		err     error
	)
	if read {
		changed, err = h.store.MarkRead(c.Context(), c.Params("id"))
	} else {
		changed, err = h.store.MarkUnread(c.Context(), c.Params("id"))
	}
	if err != nil {
		return storeFailed(c, "toggle message read state", err)
	}
	if !changed {
		return c.Status(fiber.StatusNotFound).JSON(forms.State{
			Success: false,
			Message: "Message not found or already in that state.",
		})
	}

	countMutation("message", "toggle_read")
	return c.JSON(forms.State{Success: true, Message: "Message updated."})
}

// Delete removes a message by identifier.
func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.store.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return storeFailed(c, "delete message", err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(forms.State{
			Success: false,
			Message: "Message not found or already deleted.",
		})
	}

	countMutation("message", "delete")
	return c.JSON(forms.State{Success: true, Message: "Message deleted."})
}
