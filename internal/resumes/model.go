package resumes

import (
	"time"

	"jobtrack-backend/resume/model"
)

// Resume is a stored resume, either a master or a variant derived from one.
type Resume struct {
	ID             string
	Name           string
	IsMaster       bool
	MasterResumeID string
	LatexContent   string
	Content        model.ResumeContent
	VersionHistory []Version
	FileName       string
	FileType       string
	StorageKey     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Version is a lightweight snapshot taken before a content update.
type Version struct {
	Timestamp time.Time           `json:"timestamp"`
	Content   model.ResumeContent `json:"content"`
}
