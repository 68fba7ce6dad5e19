package applications

import "time"

// ApplicationResponse is the outward-facing representation of an application.
type ApplicationResponse struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	RoleTitle   string    `json:"roleTitle"`
	DateApplied time.Time `json:"dateApplied"`
	Status      string    `json:"status"`
	Source      string    `json:"source,omitempty"`
	Location    string    `json:"location,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	ResumeID    string    `json:"resumeId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewResponse converts an application for transport. Feature packages that
// create applications on the user's behalf reuse it for their responses.
func NewResponse(app Application) ApplicationResponse {
	return toResponse(app)
}

func toResponse(app Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          app.ID,
		CompanyName: app.CompanyName,
		RoleTitle:   app.RoleTitle,
		DateApplied: app.DateApplied,
		Status:      app.Status,
		Source:      app.Source,
		Location:    app.Location,
		Duration:    app.Duration,
		Notes:       app.Notes,
		ResumeID:    app.ResumeID,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}
}
