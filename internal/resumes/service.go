package resumes

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobtrack-backend/internal/extract"
	"jobtrack-backend/internal/shared/metrics"
	"jobtrack-backend/internal/shared/storage/object"
	"jobtrack-backend/internal/shared/telemetry"
	resumemigrate "jobtrack-backend/resume/migrate"
	"jobtrack-backend/resume/model"
	"jobtrack-backend/resume/parse"
	"jobtrack-backend/resume/render"
)

const uploadFolder = "resumes"

// Service contains business logic for resumes.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
}

// CreateInput carries the fields accepted when creating a resume.
type CreateInput struct {
	Name           string
	IsMaster       bool
	MasterResumeID string
	LatexContent   string
	Content        *model.ResumeContent
}

// UpdateInput carries the fields accepted when updating a resume.
// Nil pointers leave the stored value untouched.
type UpdateInput struct {
	Name           *string
	IsMaster       *bool
	MasterResumeID *string
	LatexContent   *string
	Content        *model.ResumeContent
}

// Create stores a new resume. When LaTeX source is supplied without
// structured content, the source is parsed to seed the content.
func (s *Service) Create(ctx context.Context, in CreateInput) (Resume, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Resume{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	rec := Resume{
		ID:             uuid.NewString(),
		Name:           name,
		IsMaster:       in.IsMaster,
		MasterResumeID: strings.TrimSpace(in.MasterResumeID),
		LatexContent:   in.LatexContent,
		VersionHistory: []Version{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	switch {
	case in.Content != nil:
		rec.Content = normalizeContent(*in.Content)
	case strings.TrimSpace(in.LatexContent) != "":
		rec.Content = parseTimed(in.LatexContent)
	}

	if err := s.Repo.Create(ctx, rec); err != nil {
		return Resume{}, err
	}
	return rec, nil
}

// Upload stores an uploaded resume file, extracts its text, and creates a
// resume record from it. LaTeX uploads keep their source verbatim; PDF and
// DOCX uploads are parsed from their extracted plain text.
func (s *Service) Upload(ctx context.Context, name, fileName string, r io.Reader) (Resume, error) {
	if strings.TrimSpace(fileName) == "" {
		return Resume{}, ErrInvalidInput
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return Resume{}, err
	}

	storageKey, _, mimeType, err := s.Store.Save(ctx, uploadFolder, fileName, bytes.NewReader(raw))
	if err != nil {
		return Resume{}, err
	}

	text, err := extract.ExtractTextFromBytes(ctx, raw, mimeType, fileName)
	if err != nil {
		metrics.IncExtractionFailed()
		return Resume{}, err
	}
	metrics.IncResumeUploaded()

	if strings.TrimSpace(name) == "" {
		name = fileName
	}

	now := time.Now().UTC()
	rec := Resume{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(name),
		Content:        parseTimed(text),
		VersionHistory: []Version{},
		FileName:       fileName,
		FileType:       mimeType,
		StorageKey:     storageKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if extract.IsLaTeX(fileName, mimeType) {
		rec.LatexContent = text
	}

	if err := s.Repo.Create(ctx, rec); err != nil {
		return Resume{}, err
	}
	return rec, nil
}

// Get fetches a resume. Legacy-shaped records are converted to generic
// sections exactly once; the converted form is persisted immediately so the
// legacy fields never resurface.
func (s *Service) Get(ctx context.Context, id string) (Resume, error) {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Resume{}, err
	}
	if resumemigrate.Apply(&rec.Content) {
		rec.UpdatedAt = time.Now().UTC()
		if err := s.Repo.Update(ctx, rec); err != nil {
			return Resume{}, err
		}
		telemetry.Info("resume.migrated", map[string]any{
			"resume_id": rec.ID,
			"sections":  len(rec.Content.Sections),
		})
	}
	return rec, nil
}

// List returns all resumes, newest first.
func (s *Service) List(ctx context.Context) ([]Resume, error) {
	return s.Repo.List(ctx)
}

// Update applies a partial update. The previous content is snapshotted into
// the version history before the new content replaces it.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Resume, error) {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Resume{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Resume{}, ErrInvalidInput
		}
		rec.Name = name
	}
	if in.IsMaster != nil {
		rec.IsMaster = *in.IsMaster
	}
	if in.MasterResumeID != nil {
		rec.MasterResumeID = strings.TrimSpace(*in.MasterResumeID)
	}
	if in.LatexContent != nil {
		rec.LatexContent = *in.LatexContent
	}
	if in.Content != nil {
		if len(rec.Content.Sections) > 0 || rec.Content.HasLegacyFields() {
			rec.VersionHistory = append(rec.VersionHistory, Version{
				Timestamp: time.Now().UTC(),
				Content:   rec.Content,
			})
		}
		rec.Content = normalizeContent(*in.Content)
	}

	rec.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, rec); err != nil {
		return Resume{}, err
	}
	return rec, nil
}

// Delete removes a resume.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// Parse re-parses the stored LaTeX source into structured content and
// persists the result.
func (s *Service) Parse(ctx context.Context, id string) (Resume, error) {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Resume{}, err
	}
	if strings.TrimSpace(rec.LatexContent) == "" {
		return Resume{}, ErrNoLatex
	}

	if len(rec.Content.Sections) > 0 {
		rec.VersionHistory = append(rec.VersionHistory, Version{
			Timestamp: time.Now().UTC(),
			Content:   rec.Content,
		})
	}
	rec.Content = parseTimed(rec.LatexContent)
	rec.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, rec); err != nil {
		return Resume{}, err
	}
	return rec, nil
}

// Export renders the stored content back into a LaTeX body.
func (s *Service) Export(ctx context.Context, id string) (string, string, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return "", "", err
	}
	return render.LaTeX(rec.Content), rec.Name, nil
}

// parseTimed runs the LaTeX parser and records its duration.
func parseTimed(doc string) model.ResumeContent {
	start := time.Now()
	content := parse.Parse(doc)
	metrics.ObserveParseDurationMs(float64(time.Since(start)) / float64(time.Millisecond))
	metrics.IncResumeParsed()
	return content
}

// normalizeContent runs the save pipeline over incoming content: legacy
// fields migrate once, empty sections drop, and the order repairs itself.
func normalizeContent(content model.ResumeContent) model.ResumeContent {
	resumemigrate.Apply(&content)
	// When a payload carries both generic sections and legacy fields the
	// sections win; a saved record never keeps legacy fields.
	content.ClearLegacyFields()
	content.FilterEmpty()
	content.ReconcileOrder()
	return content
}
