package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"

	"musefolio/internal/forms"
	"musefolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// formValues flattens a submitted form (multipart or urlencoded) into the
// flat field bag the validation pipeline consumes.
func formValues(c *fiber.Ctx) forms.Values {
	values := forms.Values{}

	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		for key, vals := range mf.Value {
			if len(vals) > 0 {
				values[key] = vals[0]
			}
		}
		return values
	}

	c.Context().PostArgs().VisitAll(func(key, val []byte) {
		values[string(key)] = string(val)
	})
	return values
}

// formFile reads an optional uploaded file into memory. A missing file is not
// an error; an unreadable one is.
func formFile(c *fiber.Ctx, field string) (*forms.FilePayload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	if header.Size == 0 {
		return nil, nil
	}

	data, err := readMultipartFile(header)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file %q: %w", field, err)
	}

	return &forms.FilePayload{
		Filename: header.Filename,
		Size:     header.Size,
		Data:     data,
	}, nil
}

func readMultipartFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// validationFailed returns the structured failure result for a rejected form
// and counts it.
func validationFailed(c *fiber.Ctx, form, message string, issues []forms.FieldIssue) error {
	if m := services.GetMetrics(); m != nil {
		m.ValidationFailures.WithLabelValues(form).Inc()
	}
	return c.Status(fiber.StatusBadRequest).JSON(forms.Failure(message, issues))
}

// storeFailed logs the store error with full detail and returns a generic
// failure result; internal detail never reaches the caller.
func storeFailed(c *fiber.Ctx, operation string, err error) error {
	logStoreError(operation, err)
	return c.Status(fiber.StatusInternalServerError).JSON(forms.State{
		Success: false,
		Message: "Something went wrong. Please try again later.",
	})
}

func logStoreError(operation string, err error) {
	log.Printf("❌ %s: %v", operation, err)
}

func countMutation(entity, operation string) {
	if m := services.GetMetrics(); m != nil {
		m.Mutations.WithLabelValues(entity, operation).Inc()
	}
}
