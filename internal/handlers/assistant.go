package handlers

import (
	"log"

	"musefolio/internal/forms"
	"musefolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AssistantHandler proxies the design-recommendation feature.
type AssistantHandler struct {
	recommendations *services.RecommendationService
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(recommendations *services.RecommendationService) *AssistantHandler {
	return &AssistantHandler{recommendations: recommendations}
}

// Recommend validates the request and asks the generation service for design
// recommendations. Any upstream failure maps to one generic message.
func (h *AssistantHandler) Recommend(c *fiber.Ctx) error {
	input, issues := forms.ParseAssistant(formValues(c))
	if issues != nil {
		return validationFailed(c, "assistant", "Invalid form data.", issues)
	}

	recommendations, err := h.recommendations.Generate(c.Context(), input.StyleDescription, input.Count)
	if err != nil {
		log.Printf("⚠️ Recommendation generation failed: %v", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(forms.State{
			Success: false,
			Message: "Could not generate recommendations at this time. Please try again.",
		})
	}

	return c.JSON(forms.State{
		Success:         true,
		Message:         "Design recommendations generated successfully!",
		Recommendations: recommendations,
	})
}
