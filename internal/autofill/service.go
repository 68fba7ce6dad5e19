package autofill

import (
	"context"
	"strings"
	"time"

	"jobtrack-backend/internal/applications"
)

// ApplicationCreator is the slice of the applications service that autofill
// needs to record a captured posting.
type ApplicationCreator interface {
	Create(ctx context.Context, in applications.CreateInput) (applications.Application, error)
}

// Service turns a job posting URL into a tracked application.
type Service struct {
	Apps ApplicationCreator
}

// Capture parses the posting and creates an application from whatever the
// extractor found. At least one of url or text must be present; pasted text
// is kept in the notes so nothing the user supplied is lost.
func (s *Service) Capture(ctx context.Context, rawURL, text string) (applications.Application, error) {
	rawURL = strings.TrimSpace(rawURL)
	text = strings.TrimSpace(text)
	if rawURL == "" && text == "" {
		return applications.Application{}, ErrInvalidInput
	}

	result := ParseJobURL(rawURL)
	notes := "Auto-captured via autofill: " + result.Message
	if text != "" {
		notes += "\n\n" + text
	}

	return s.Apps.Create(ctx, applications.CreateInput{
		CompanyName: result.CompanyName,
		RoleTitle:   result.RoleTitle,
		DateApplied: time.Now().UTC(),
		Status:      applications.StatusApplied,
		Source:      "Autofill",
		Notes:       notes,
	})
}
