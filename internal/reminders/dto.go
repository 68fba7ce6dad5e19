package reminders

import "time"

// ReminderResponse is the outward-facing representation of a reminder.
type ReminderResponse struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"applicationId"`
	Type          string    `json:"type"`
	Message       string    `json:"message,omitempty"`
	DueDate       time.Time `json:"dueDate"`
	IsCompleted   bool      `json:"isCompleted"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toResponse(rem Reminder) ReminderResponse {
	return ReminderResponse{
		ID:            rem.ID,
		ApplicationID: rem.ApplicationID,
		Type:          rem.Type,
		Message:       rem.Message,
		DueDate:       rem.DueDate,
		IsCompleted:   rem.IsCompleted,
		CreatedAt:     rem.CreatedAt,
	}
}
