package forms

import "strconv"

// ContactMessageInput is a validated public contact-form submission.
type ContactMessageInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ParseContactMessage validates the public contact form.
func ParseContactMessage(values Values) (ContactMessageInput, []FieldIssue) {
	var v validator

	input := ContactMessageInput{
		Name:    values.Get("name"),
		Email:   values.Get("email"),
		Subject: values.Get("subject"),
		Message: values.Get("message"),
	}

	v.minLen("name", input.Name, 2, "Name")
	v.email("email", input.Email)
	v.minLen("message", input.Message, 10, "Message")

	if len(v.issues) > 0 {
		return ContactMessageInput{}, v.issues
	}
	return input, nil
}

// AssistantInput is a validated recommendation request.
type AssistantInput struct {
	StyleDescription string
	Count            int
}

// ParseAssistant validates the design-assistant form: a style description of
// at least 20 characters and a requested count between 1 and 10.
func ParseAssistant(values Values) (AssistantInput, []FieldIssue) {
	var v validator

	description := values.Get("projectStyleDescription")
	v.minLen("projectStyleDescription", description, 20, "Description")

	count := 0
	raw := values.Get("desiredNumberOfRecommendations")
	if raw == "" {
		v.add("desiredNumberOfRecommendations", "Please request at least 1 recommendation.")
	} else if parsed, err := strconv.Atoi(raw); err != nil {
		v.add("desiredNumberOfRecommendations", "Requested count must be a number.")
	} else if parsed < 1 {
		v.add("desiredNumberOfRecommendations", "Please request at least 1 recommendation.")
	} else if parsed > 10 {
		v.add("desiredNumberOfRecommendations", "Cannot request more than 10 recommendations.")
	} else {
		count = parsed
	}

	if len(v.issues) > 0 {
		return AssistantInput{}, v.issues
	}
	return AssistantInput{StyleDescription: description, Count: count}, nil
}

// LoginInput carries submitted admin credentials.
type LoginInput struct {
	Email    string
	Password string
}

// ParseLogin checks that both credential fields were submitted. Credential
// correctness is checked by the handler, never reported per-field.
func ParseLogin(values Values) (LoginInput, []FieldIssue) {
	var v validator

	input := LoginInput{
		Email:    values.Get("email"),
		Password: values["password"], // passwords are not trimmed
	}

	if input.Email == "" {
		v.add("email", "Email is required.")
	}
	if input.Password == "" {
		v.add("password", "Password is required.")
	}

	if len(v.issues) > 0 {
		return LoginInput{}, v.issues
	}
	return input, nil
}
