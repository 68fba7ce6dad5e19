package applications

import "time"

// Application statuses follow the tracker's pipeline.
const (
	StatusApplied   = "Applied"
	StatusInterview = "Interview"
	StatusOffer     = "Offer"
	StatusRejected  = "Rejected"
)

// Application is a tracked job application.
type Application struct {
	ID          string
	CompanyName string
	RoleTitle   string
	DateApplied time.Time
	Status      string
	Source      string
	Location    string
	Duration    string
	Notes       string
	ResumeID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidStatus reports whether s is a known pipeline status.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	default:
		return false
	}
}
