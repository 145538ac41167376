package forms

import (
	"encoding/json"
	"fmt"

	"musefolio/internal/models"

	"github.com/google/uuid"
)

// ParseHomeContent validates the home page copy form. All fields are flat
// strings and all are required.
func ParseHomeContent(values Values) (models.HomePageContent, []FieldIssue) {
	var v validator

	content := models.HomePageContent{
		HeroTitle:           values.Get("heroTitle"),
		HeroSubtitle:        values.Get("heroSubtitle"),
		HeroButtonExplore:   values.Get("heroButtonExplore"),
		HeroButtonContact:   values.Get("heroButtonContact"),
		FeaturedWorkTitle:   values.Get("featuredWorkTitle"),
		FeaturedWorkViewAll: values.Get("featuredWorkViewAll"),
		AssistantTitle:      values.Get("aiAssistantTitle"),
		AssistantSubtitle:   values.Get("aiAssistantSubtitle"),
		AssistantButton:     values.Get("aiAssistantButton"),
	}

	v.minLen("heroTitle", content.HeroTitle, 5, "Hero title")
	v.minLen("heroSubtitle", content.HeroSubtitle, 10, "Hero subtitle")
	v.minLen("heroButtonExplore", content.HeroButtonExplore, 3, "Explore button text")
	v.minLen("heroButtonContact", content.HeroButtonContact, 3, "Contact button text")
	v.minLen("featuredWorkTitle", content.FeaturedWorkTitle, 5, "Featured work title")
	v.minLen("featuredWorkViewAll", content.FeaturedWorkViewAll, 5, "View all button text")
	v.minLen("aiAssistantTitle", content.AssistantTitle, 5, "Assistant title")
	v.minLen("aiAssistantSubtitle", content.AssistantSubtitle, 10, "Assistant subtitle")
	v.minLen("aiAssistantButton", content.AssistantButton, 3, "Assistant button text")

	if len(v.issues) > 0 {
		return models.HomePageContent{}, v.issues
	}
	return content, nil
}

// AboutSubmission is the validated about-page form. The caller merges it over
// the current document and resolves the profile image file, if one was sent.
type AboutSubmission struct {
	Content          models.AboutPageContent
	ProfileImageFile *FilePayload
}

// ParseAboutContent validates the about page form, including the JSON-encoded
// skill and experience sub-lists. Malformed JSON or a failing nested item
// aborts the whole submission.
func ParseAboutContent(values Values, file *FilePayload) (AboutSubmission, []FieldIssue) {
	var v validator

	content := models.AboutPageContent{
		MainTitle:                values.Get("mainTitle"),
		MainSubtitle:             values.Get("mainSubtitle"),
		Greeting:                 values.Get("greeting"),
		Name:                     values.Get("name"),
		Introduction:             values.Get("introduction"),
		Philosophy:               values.Get("philosophy"),
		FutureFocus:              values.Get("futureFocus"),
		ImageHint:                values.Get("dataAiHint"),
		ProfileCardTitle:         values.Get("profileCardTitle"),
		ProfileCardHandle:        values.Get("profileCardHandle"),
		ProfileCardStatus:        values.Get("profileCardStatus"),
		ProfileCardContactText:   values.Get("profileCardContactText"),
		CoreCompetenciesTitle:    values.Get("coreCompetenciesTitle"),
		CoreCompetenciesSubtitle: values.Get("coreCompetenciesSubtitle"),
		ChroniclesTitle:          values.Get("chroniclesTitle"),
		ChroniclesSubtitle:       values.Get("chroniclesSubtitle"),
	}

	v.minLen("mainTitle", content.MainTitle, 3, "Main title")
	v.minLen("mainSubtitle", content.MainSubtitle, 10, "Main subtitle")
	v.minLen("greeting", content.Greeting, 5, "Greeting")
	v.minLen("name", content.Name, 2, "Name")
	v.minLen("introduction", content.Introduction, 20, "Introduction")
	v.minLen("philosophy", content.Philosophy, 20, "Philosophy")
	v.minLen("futureFocus", content.FutureFocus, 20, "Future focus")
	v.minLen("profileCardTitle", content.ProfileCardTitle, 3, "Profile card title")
	v.minLen("profileCardHandle", content.ProfileCardHandle, 3, "Profile card handle")
	v.minLen("profileCardStatus", content.ProfileCardStatus, 3, "Profile card status")
	v.minLen("profileCardContactText", content.ProfileCardContactText, 3, "Profile card contact text")
	v.minLen("coreCompetenciesTitle", content.CoreCompetenciesTitle, 5, "Core competencies title")
	v.minLen("coreCompetenciesSubtitle", content.CoreCompetenciesSubtitle, 10, "Core competencies subtitle")
	v.minLen("chroniclesTitle", content.ChroniclesTitle, 5, "Chronicles title")
	v.minLen("chroniclesSubtitle", content.ChroniclesSubtitle, 10, "Chronicles subtitle")
	v.imageFile("profileImageFile", file)

	if content.ImageHint == "" {
		content.ImageHint = "profile avatar"
	}

	content.ExperienceItems = parseExperienceItems(&v, values.Get("experienceItemsJSON"))
	content.SkillItems = parseSkillItems(&v, values.Get("skillItemsJSON"))

	if len(v.issues) > 0 {
		return AboutSubmission{}, v.issues
	}
	return AboutSubmission{Content: content, ProfileImageFile: file}, nil
}

func parseExperienceItems(v *validator, raw string) []models.ExperienceItem {
	if raw == "" {
		return nil
	}

	var items []models.ExperienceItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		v.add("experienceItemsJSON", "Experience items field contains invalid JSON.")
		return nil
	}

	for i := range items {
		item := &items[i]
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		field := fmt.Sprintf("experienceItemsJSON[%d]", i)
		if len(item.Title) < 3 {
			v.add(field, "Experience title is too short.")
		}
		if len(item.Company) < 2 {
			v.add(field, "Company name is too short.")
		}
		if len(item.Period) < 5 {
			v.add(field, "Period format is too short.")
		}
		if len(item.Description) < 10 {
			v.add(field, "Experience description is too short.")
		}
	}
	return items
}

func parseSkillItems(v *validator, raw string) []models.SkillItem {
	if raw == "" {
		return nil
	}

	var items []models.SkillItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		v.add("skillItemsJSON", "Skill items field contains invalid JSON.")
		return nil
	}

	for i, item := range items {
		field := fmt.Sprintf("skillItemsJSON[%d]", i)
		if len(item.Name) < 2 {
			v.add(field, "Skill name is too short.")
		}
		if item.Level == "" {
			v.add(field, "Skill level is required.")
		}
	}
	return items
}

// ParseContactContent validates the contact page copy form.
func ParseContactContent(values Values) (models.ContactPageContent, []FieldIssue) {
	var v validator

	content := models.ContactPageContent{
		Title:        values.Get("title"),
		Description:  values.Get("description"),
		ContactName:  values.Get("contactName"),
		ContactEmail: values.Get("contactEmail"),
		ContactPhone: values.Get("contactPhone"),
	}

	v.minLen("title", content.Title, 5, "Title")
	v.minLen("description", content.Description, 10, "Description")
	v.optionalMinLen("contactName", content.ContactName, 2, "Contact name")
	v.optionalEmail("contactEmail", content.ContactEmail)
	v.optionalPhone("contactPhone", content.ContactPhone)

	if len(v.issues) > 0 {
		return models.ContactPageContent{}, v.issues
	}
	return content, nil
}
