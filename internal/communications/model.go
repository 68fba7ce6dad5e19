package communications

import "time"

// Communication types recognized by the tracker.
const (
	TypeInterviewInvite = "Interview Invite"
	TypeRejection       = "Rejection"
	TypeOffer           = "Offer"
	TypeNote            = "Note"
	TypeFollowUp        = "Follow-up"
)

// Communication is a logged contact with an employer about an application.
type Communication struct {
	ID            string
	ApplicationID string
	Type          string
	Message       string
	Timestamp     time.Time
	CreatedAt     time.Time
}

// ValidType reports whether t is a known communication type.
func ValidType(t string) bool {
	switch t {
	case TypeInterviewInvite, TypeRejection, TypeOffer, TypeNote, TypeFollowUp:
		return true
	default:
		return false
	}
}
