package forms

import "testing"

func validHomeValues() Values {
	return Values{
		"heroTitle":           "Crafting Digital Dreams",
		"heroSubtitle":        "Portfolio of a futuristic designer.",
		"heroButtonExplore":   "Explore My Work",
		"heroButtonContact":   "Get In Touch",
		"featuredWorkTitle":   "Featured Work",
		"featuredWorkViewAll": "View All Projects",
		"aiAssistantTitle":    "Design Recommendations",
		"aiAssistantSubtitle": "Let the assistant suggest a direction.",
		"aiAssistantButton":   "Try It",
	}
}

func TestParseHomeContent_Valid(t *testing.T) {
	content, issues := ParseHomeContent(validHomeValues())
	if issues != nil {
		t.Fatalf("Expected no issues, got %v", issues)
	}
	if content.HeroTitle != "Crafting Digital Dreams" {
		t.Errorf("Unexpected hero title: %q", content.HeroTitle)
	}
	if content.AssistantButton != "Try It" {
		t.Errorf("Unexpected assistant button text: %q", content.AssistantButton)
	}
}

func TestParseHomeContent_ShortSubtitle(t *testing.T) {
	values := validHomeValues()
	values["heroSubtitle"] = "short"

	_, issues := ParseHomeContent(values)
	if issues == nil {
		t.Fatal("Expected failure for short hero subtitle")
	}
	if issues[0].Field != "heroSubtitle" {
		t.Errorf("Expected heroSubtitle issue, got %v", issues)
	}
}

func validAboutValues() Values {
	return Values{
		"mainTitle":                "About Me",
		"mainSubtitle":             "The story behind the pixels.",
		"greeting":                 "Hello there,",
		"name":                     "Alex",
		"introduction":             "I design and build immersive digital experiences.",
		"philosophy":               "Design should feel inevitable, never accidental.",
		"futureFocus":              "Exploring spatial interfaces and generative design.",
		"profileCardTitle":         "Designer",
		"profileCardHandle":        "@alex",
		"profileCardStatus":        "Online",
		"profileCardContactText":   "Contact Me",
		"coreCompetenciesTitle":    "Core Competencies",
		"coreCompetenciesSubtitle": "Tools and disciplines I work in.",
		"chroniclesTitle":          "Chronicles",
		"chroniclesSubtitle":       "A timeline of where I have been.",
	}
}

func TestParseAboutContent_Valid(t *testing.T) {
	values := validAboutValues()
	values["skillItemsJSON"] = `[{"name":"UI Design","iconName":"Palette","level":"Expert"}]`
	values["experienceItemsJSON"] = `[{"title":"Lead Designer","company":"Studio","period":"2020 - Present","description":"Led the design practice."}]`

	submission, issues := ParseAboutContent(values, nil)
	if issues != nil {
		t.Fatalf("Expected no issues, got %v", issues)
	}

	content := submission.Content
	if len(content.SkillItems) != 1 || content.SkillItems[0].Name != "UI Design" {
		t.Errorf("Unexpected skill items: %v", content.SkillItems)
	}
	if len(content.ExperienceItems) != 1 {
		t.Fatalf("Expected 1 experience item, got %v", content.ExperienceItems)
	}
	if content.ExperienceItems[0].ID == "" {
		t.Error("Expected missing experience ID to be generated")
	}
	if content.ImageHint != "profile avatar" {
		t.Errorf("Expected default image hint, got %q", content.ImageHint)
	}
}

func TestParseAboutContent_InvalidExperienceJSON(t *testing.T) {
	values := validAboutValues()
	values["experienceItemsJSON"] = `not json`

	_, issues := ParseAboutContent(values, nil)
	if issues == nil {
		t.Fatal("Expected failure for malformed experience JSON")
	}
	if issues[0].Field != "experienceItemsJSON" {
		t.Errorf("Expected experienceItemsJSON issue, got %v", issues)
	}
}

func TestParseAboutContent_ShortNestedSkill(t *testing.T) {
	values := validAboutValues()
	values["skillItemsJSON"] = `[{"name":"X","iconName":"Cpu","level":"Expert"}]`

	_, issues := ParseAboutContent(values, nil)
	if issues == nil {
		t.Fatal("Expected failure for 1-character skill name")
	}
}

func TestParseContactContent_Valid(t *testing.T) {
	content, issues := ParseContactContent(Values{
		"title":        "Get In Touch",
		"description":  "Reach out through any of these channels.",
		"contactName":  "Alex",
		"contactEmail": "alex@example.com",
		"contactPhone": "+15551234567",
	})
	if issues != nil {
		t.Fatalf("Expected no issues, got %v", issues)
	}
	if content.ContactPhone != "+15551234567" {
		t.Errorf("Unexpected phone: %q", content.ContactPhone)
	}
}

func TestParseContactContent_BadPhone(t *testing.T) {
	_, issues := ParseContactContent(Values{
		"title":        "Get In Touch",
		"description":  "Reach out through any of these channels.",
		"contactPhone": "555-CALL-NOW",
	})
	if issues == nil {
		t.Fatal("Expected failure for malformed phone number")
	}
	if issues[0].Field != "contactPhone" {
		t.Errorf("Expected contactPhone issue, got %v", issues)
	}
}

func TestParseContactContent_OptionalFieldsBlank(t *testing.T) {
	_, issues := ParseContactContent(Values{
		"title":       "Get In Touch",
		"description": "Reach out through any of these channels.",
	})
	if issues != nil {
		t.Errorf("Expected blank optional fields to pass, got %v", issues)
	}
}
