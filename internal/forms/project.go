package forms

import (
	"strconv"

	"musefolio/internal/models"
)

// ProjectSubmission is the validated, normalized result of a project form.
// The image file (if any) still needs resolving into a URL by the caller.
type ProjectSubmission struct {
	Input     models.ProjectInput
	ImageFile *FilePayload
}

// ProjectUpdateSubmission mirrors ProjectSubmission for partial edits.
type ProjectUpdateSubmission struct {
	Update    models.ProjectUpdate
	ImageFile *FilePayload
}

// ParseProject validates a new-project form. An image is required: either an
// uploaded file or an imageUrl field.
func ParseProject(values Values, file *FilePayload) (ProjectSubmission, []FieldIssue) {
	var v validator

	title := values.Get("title")
	description := values.Get("description")
	detailed := values.Get("detailedDescription")
	imageURL := values.Get("imageUrl")

	v.minLen("title", title, 3, "Title")
	v.minLen("description", description, 10, "Description")
	v.minLen("detailedDescription", detailed, 20, "Detailed description")
	v.optionalURL("liveLink", values.Get("liveLink"))
	v.optionalURL("repoLink", values.Get("repoLink"))
	v.imageFile("mainImageFile", file)

	if !hasFile(file) && imageURL == "" {
		v.add("mainImageFile", "Either a main image upload or an image URL is required for a new project.")
	}

	year := 0
	if raw := values.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			v.add("year", "Year must be a number.")
		} else {
			year = parsed
		}
	}

	if len(v.issues) > 0 {
		return ProjectSubmission{}, v.issues
	}

	return ProjectSubmission{
		Input: models.ProjectInput{
			Title:               title,
			Description:         description,
			DetailedDescription: detailed,
			ImageURL:            imageURL,
			Featured:            parseCheckbox(values.Get("featured")),
			Tags:                splitList(values.Get("tags")),
			LiveLink:            values.Get("liveLink"),
			RepoLink:            values.Get("repoLink"),
			Year:                year,
			Client:              values.Get("client"),
			Role:                values.Get("role"),
			Technologies:        splitList(values.Get("technologies")),
			ImageHint:           values.Get("imageHint"),
		},
		ImageFile: file,
	}, nil
}

// ParseProjectUpdate validates a project edit form. Only submitted fields are
// validated and carried into the partial update; omitted fields stay untouched.
func ParseProjectUpdate(values Values, file *FilePayload) (ProjectUpdateSubmission, []FieldIssue) {
	var v validator
	var update models.ProjectUpdate

	if values.Has("title") {
		title := values.Get("title")
		v.minLen("title", title, 3, "Title")
		update.Title = &title
	}
	if values.Has("description") {
		description := values.Get("description")
		v.minLen("description", description, 10, "Description")
		update.Description = &description
	}
	if values.Has("detailedDescription") {
		detailed := values.Get("detailedDescription")
		v.minLen("detailedDescription", detailed, 20, "Detailed description")
		update.DetailedDescription = &detailed
	}
	if values.Has("liveLink") {
		link := values.Get("liveLink")
		v.optionalURL("liveLink", link)
		update.LiveLink = &link
	}
	if values.Has("repoLink") {
		link := values.Get("repoLink")
		v.optionalURL("repoLink", link)
		update.RepoLink = &link
	}
	if values.Has("year") {
		year := 0
		if raw := values.Get("year"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				v.add("year", "Year must be a number.")
			} else {
				year = parsed
			}
		}
		update.Year = &year
	}
	if values.Has("featured") {
		featured := parseCheckbox(values.Get("featured"))
		update.Featured = &featured
	}
	if values.Has("tags") {
		update.Tags = splitList(values.Get("tags"))
		if update.Tags == nil {
			// submitted blank clears the list; nil would mean untouched
			update.Tags = []string{}
		}
	}
	if values.Has("technologies") {
		update.Technologies = splitList(values.Get("technologies"))
		if update.Technologies == nil {
			update.Technologies = []string{}
		}
	}
	if values.Has("client") {
		client := values.Get("client")
		update.Client = &client
	}
	if values.Has("role") {
		role := values.Get("role")
		update.Role = &role
	}
	if values.Has("imageHint") {
		hint := values.Get("imageHint")
		update.ImageHint = &hint
	}
	if values.Has("imageUrl") && values.Get("imageUrl") != "" {
		imageURL := values.Get("imageUrl")
		update.ImageURL = &imageURL
	}

	v.imageFile("mainImageFile", file)

	if len(v.issues) > 0 {
		return ProjectUpdateSubmission{}, v.issues
	}

	return ProjectUpdateSubmission{Update: update, ImageFile: file}, nil
}

// parseCheckbox accepts the browser checkbox value "on" as well as literals.
func parseCheckbox(value string) bool {
	return value == "on" || value == "true" || value == "1"
}
