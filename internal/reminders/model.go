package reminders

import "time"

// Reminder types recognized by the tracker.
const (
	TypeFollowUp      = "Follow-up"
	TypeInterviewPrep = "Interview Prep"
	TypeOther         = "Other"
)

// Reminder is a dated follow-up attached to an application.
type Reminder struct {
	ID            string
	ApplicationID string
	Type          string
	Message       string
	DueDate       time.Time
	IsCompleted   bool
	CreatedAt     time.Time
}

// ValidType reports whether t is a known reminder type.
func ValidType(t string) bool {
	switch t {
	case TypeFollowUp, TypeInterviewPrep, TypeOther:
		return true
	default:
		return false
	}
}
