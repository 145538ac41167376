// Package forms validates and normalizes admin and public form submissions
// into typed inputs for the stores. Validation failures carry field-level
// messages; nothing is persisted on failure.
package forms

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageSize is the upload limit for image files.
const MaxImageSize = 5 * 1024 * 1024

// acceptedImageTypes is the image MIME allow-list, checked against the sniffed
// content type rather than the declared one.
var acceptedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// FieldIssue names one violated field and the reason.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// State is the structured result every mutation entry point returns.
type State struct {
	Success         bool         `json:"success"`
	Message         string       `json:"message"`
	Issues          []FieldIssue `json:"issues,omitempty"`
	ProjectID       string       `json:"projectId,omitempty"`
	Document        interface{}  `json:"document,omitempty"`
	Recommendations []string     `json:"recommendations,omitempty"`
}

// Failure builds a failed state with field issues.
func Failure(message string, issues []FieldIssue) State {
	return State{Success: false, Message: message, Issues: issues}
}

// FilePayload is an uploaded file as received from a multipart form.
type FilePayload struct {
	Filename string
	Size     int64
	Data     []byte
}

// Values is a flat bag of submitted form fields.
type Values map[string]string

// Get returns the trimmed value for a field.
func (v Values) Get(key string) string {
	return strings.TrimSpace(v[key])
}

// Has reports whether the field was submitted at all, even if blank.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// validator accumulates field issues across checks.
type validator struct {
	issues []FieldIssue
}

func (c *validator) add(field, message string) {
	c.issues = append(c.issues, FieldIssue{Field: field, Message: message})
}

func (c *validator) minLen(field, value string, min int, label string) {
	if len(value) < min {
		c.add(field, fmt.Sprintf("%s must be at least %d characters.", label, min))
	}
}

// optionalMinLen validates only when a value was supplied.
func (c *validator) optionalMinLen(field, value string, min int, label string) {
	if value != "" {
		c.minLen(field, value, min, label)
	}
}

func (c *validator) optionalURL(field, value string) {
	if value == "" {
		return
	}
	parsed, err := url.ParseRequestURI(value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		c.add(field, "Must be a valid URL.")
	}
}

func (c *validator) email(field, value string) {
	if !emailPattern.MatchString(value) {
		c.add(field, "Invalid email address.")
	}
}

func (c *validator) optionalEmail(field, value string) {
	if value != "" {
		c.email(field, value)
	}
}

func (c *validator) optionalPhone(field, value string) {
	if value != "" && !phonePattern.MatchString(value) {
		c.add(field, "Invalid phone number format.")
	}
}

// imageFile checks an optional upload for size and content type. A nil or
// empty payload passes; the caller decides whether an image is required.
func (c *validator) imageFile(field string, file *FilePayload) {
	if file == nil || file.Size == 0 {
		return
	}
	if file.Size > MaxImageSize {
		c.add(field, "Max file size is 5MB.")
		return
	}
	mime := mimetype.Detect(file.Data)
	if !acceptedImageTypes[mime.String()] {
		c.add(field, "Only .jpg, .jpeg, .png, .webp and .gif formats are supported.")
	}
}

// splitList turns a comma-separated string into a trimmed list, dropping
// empty entries.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func hasFile(file *FilePayload) bool {
	return file != nil && file.Size > 0
}
