package forms

import (
	"strings"
	"testing"
)

func validProjectValues() Values {
	return Values{
		"title":               "My New Project",
		"description":         "A description long enough.",
		"detailedDescription": "A detailed description that is definitely over twenty characters.",
		"imageUrl":            "https://placehold.co/1200x800.png",
		"tags":                "design, ui , ux",
		"technologies":        "go,mongodb",
		"featured":            "on",
		"liveLink":            "https://example.com",
		"year":                "2024",
	}
}

func TestParseProject_Valid(t *testing.T) {
	submission, issues := ParseProject(validProjectValues(), nil)
	if issues != nil {
		t.Fatalf("Expected no issues, got %v", issues)
	}

	input := submission.Input
	if input.Title != "My New Project" {
		t.Errorf("Expected title preserved, got %q", input.Title)
	}
	if !input.Featured {
		t.Error("Expected featured checkbox 'on' to parse as true")
	}
	if len(input.Tags) != 3 || input.Tags[1] != "ui" {
		t.Errorf("Expected trimmed tag list, got %v", input.Tags)
	}
	if len(input.Technologies) != 2 {
		t.Errorf("Expected 2 technologies, got %v", input.Technologies)
	}
	if input.Year != 2024 {
		t.Errorf("Expected year 2024, got %d", input.Year)
	}
}

func TestParseProject_ShortTitle(t *testing.T) {
	values := validProjectValues()
	values["title"] = "AB"

	_, issues := ParseProject(values, nil)
	if issues == nil {
		t.Fatal("Expected validation failure for 2-character title")
	}

	found := false
	for _, issue := range issues {
		if issue.Field == "title" && strings.Contains(issue.Message, "3") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a title issue referencing the minimum length of 3, got %v", issues)
	}
}

func TestParseProject_RequiresImage(t *testing.T) {
	values := validProjectValues()
	delete(values, "imageUrl")

	_, issues := ParseProject(values, nil)
	if issues == nil {
		t.Fatal("Expected failure when neither image file nor URL is supplied")
	}
	if issues[0].Field != "mainImageFile" {
		t.Errorf("Expected mainImageFile issue, got %v", issues)
	}
}

func TestParseProject_BadLink(t *testing.T) {
	values := validProjectValues()
	values["liveLink"] = "not-a-url"

	_, issues := ParseProject(values, nil)
	if issues == nil {
		t.Fatal("Expected failure for malformed live link")
	}
}

func TestParseProject_OversizedFile(t *testing.T) {
	file := &FilePayload{
		Filename: "huge.png",
		Size:     MaxImageSize + 1,
		Data:     []byte{0x89, 'P', 'N', 'G'},
	}

	_, issues := ParseProject(validProjectValues(), file)
	if issues == nil {
		t.Fatal("Expected failure for oversized file")
	}
	if !strings.Contains(issues[0].Message, "5MB") {
		t.Errorf("Expected size message, got %v", issues)
	}
}

func TestParseProject_NonImageFile(t *testing.T) {
	file := &FilePayload{
		Filename: "notes.txt",
		Size:     11,
		Data:     []byte("hello world"),
	}

	_, issues := ParseProject(validProjectValues(), file)
	if issues == nil {
		t.Fatal("Expected failure for non-image content")
	}
}

func TestParseProjectUpdate_PartialFields(t *testing.T) {
	values := Values{
		"title": "Renamed Project",
		"tags":  "one,two",
	}

	submission, issues := ParseProjectUpdate(values, nil)
	if issues != nil {
		t.Fatalf("Expected no issues, got %v", issues)
	}

	update := submission.Update
	if update.Title == nil || *update.Title != "Renamed Project" {
		t.Error("Expected title to be set")
	}
	if update.Description != nil {
		t.Error("Expected omitted description to stay nil")
	}
	if len(update.Tags) != 2 {
		t.Errorf("Expected 2 tags, got %v", update.Tags)
	}
	if update.Featured != nil {
		t.Error("Expected omitted featured to stay nil")
	}
}

func TestParseProjectUpdate_ClearsLists(t *testing.T) {
	values := Values{
		"tags":         "",
		"technologies": "",
	}

	submission, issues := ParseProjectUpdate(values, nil)
	if issues != nil {
		t.Fatalf("Expected no issues, got %v", issues)
	}

	update := submission.Update
	if update.Tags == nil || len(update.Tags) != 0 {
		t.Errorf("Expected blank tags to produce an empty list, got %v", update.Tags)
	}
	if update.Technologies == nil || len(update.Technologies) != 0 {
		t.Errorf("Expected blank technologies to produce an empty list, got %v", update.Technologies)
	}
}

func TestParseProjectUpdate_ValidatesSuppliedFields(t *testing.T) {
	values := Values{"title": "AB"}

	_, issues := ParseProjectUpdate(values, nil)
	if issues == nil {
		t.Fatal("Expected failure for short title in update")
	}
}
