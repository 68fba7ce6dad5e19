package bootstrap

import (
	"context"
	"fmt"
	"time"

	"jobtrack-backend/internal/applications"
	"jobtrack-backend/internal/communications"
	"jobtrack-backend/internal/reminders"
	"jobtrack-backend/internal/shared/telemetry"
)

type seedApplication struct {
	input       applications.CreateInput
	commType    string
	commMessage string
	reminder    *reminders.CreateInput
}

// seedDemoData populates an empty tracker with sample applications,
// communications, and reminders. A tracker that already holds applications
// is left alone, so restarts never duplicate the data.
func seedDemoData(ctx context.Context, app *App) error {
	existing, err := app.ApplicationsService.List(ctx, "")
	if err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	seeds := []seedApplication{
		{
			input: applications.CreateInput{
				CompanyName: "Google",
				RoleTitle:   "Senior Software Engineer",
				DateApplied: now.AddDate(0, 0, -5),
				Source:      "LinkedIn",
				Location:    "Mountain View, CA",
				Duration:    "Full-time",
				Notes:       "Initial phone screen went well. Technical interview scheduled for next week.",
			},
			commType:    communications.TypeInterviewInvite,
			commMessage: "Recruiter invited me to a technical interview.",
			reminder: &reminders.CreateInput{
				Type:    reminders.TypeInterviewPrep,
				Message: "Review system design notes before the Google interview.",
				DueDate: now.AddDate(0, 0, 3),
			},
		},
		{
			input: applications.CreateInput{
				CompanyName: "Microsoft",
				RoleTitle:   "Full Stack Engineer",
				DateApplied: now.AddDate(0, 0, -12),
				Source:      "Company Site",
				Location:    "Seattle, WA",
				Duration:    "Full-time",
				Notes:       "Applied through their careers page. Waiting for response.",
			},
			reminder: &reminders.CreateInput{
				Type:    reminders.TypeFollowUp,
				Message: "Follow up with the Microsoft recruiter if still silent.",
				DueDate: now.AddDate(0, 0, 2),
			},
		},
		{
			input: applications.CreateInput{
				CompanyName: "Netflix",
				RoleTitle:   "Backend Engineer",
				DateApplied: now.AddDate(0, 0, -7),
				Source:      "LinkedIn",
				Location:    "Los Gatos, CA",
				Duration:    "Full-time",
				Notes:       "Received offer. Negotiating equity.",
			},
			commType:    communications.TypeOffer,
			commMessage: "Offer letter received, one week to respond.",
		},
		{
			input: applications.CreateInput{
				CompanyName: "Apple",
				RoleTitle:   "iOS Developer",
				DateApplied: now.AddDate(0, 0, -15),
				Source:      "Company Site",
				Notes:       "Position went to an internal candidate.",
			},
			commType:    communications.TypeRejection,
			commMessage: "Standard rejection email.",
		},
		{
			input: applications.CreateInput{
				CompanyName: "Stripe",
				RoleTitle:   "Product Engineer",
				DateApplied: now.AddDate(0, 0, -2),
				Source:      "Referral",
				Notes:       "Referred by a former colleague.",
			},
		},
	}

	for _, seed := range seeds {
		created, err := app.ApplicationsService.Create(ctx, seed.input)
		if err != nil {
			return fmt.Errorf("seed application %s: %w", seed.input.CompanyName, err)
		}
		if seed.commType != "" {
			_, err := app.CommunicationsService.Create(ctx, communications.CreateInput{
				ApplicationID: created.ID,
				Type:          seed.commType,
				Message:       seed.commMessage,
				Timestamp:     now.AddDate(0, 0, -1),
			})
			if err != nil {
				return fmt.Errorf("seed communication for %s: %w", seed.input.CompanyName, err)
			}
		}
		if seed.reminder != nil {
			in := *seed.reminder
			in.ApplicationID = created.ID
			if _, err := app.RemindersService.Create(ctx, in); err != nil {
				return fmt.Errorf("seed reminder for %s: %w", seed.input.CompanyName, err)
			}
		}
	}

	telemetry.Info("bootstrap.demo_data_seeded", map[string]any{
		"applications": len(seeds),
	})
	return nil
}
