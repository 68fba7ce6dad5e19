package resumes

import (
	"time"

	"jobtrack-backend/resume/model"
)

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	IsMaster       bool                `json:"isMaster"`
	MasterResumeID string              `json:"masterResumeId,omitempty"`
	LatexContent   string              `json:"latexContent,omitempty"`
	Content        model.ResumeContent `json:"content"`
	VersionHistory []Version           `json:"versionHistory"`
	FileName       string              `json:"fileName,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

func toResponse(rec Resume) ResumeResponse {
	history := rec.VersionHistory
	if history == nil {
		history = []Version{}
	}
	return ResumeResponse{
		ID:             rec.ID,
		Name:           rec.Name,
		IsMaster:       rec.IsMaster,
		MasterResumeID: rec.MasterResumeID,
		LatexContent:   rec.LatexContent,
		Content:        rec.Content,
		VersionHistory: history,
		FileName:       rec.FileName,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}
