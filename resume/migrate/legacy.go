// Package migrate converts resume content stored under the old fixed-field
// schema (summary, experience, skills, education) into the generic section
// model. It runs once, on first load of an old-format record.
package migrate

import (
	"strings"

	"jobtrack-backend/resume/model"
)

// FromLegacy builds generic sections from the legacy fields, in the fixed
// order summary, experience, skills, education, each with a fresh
// identifier. Entries with no semantic content are dropped so the result
// never contains a section the save-time emptiness filter would remove.
func FromLegacy(content model.ResumeContent) []model.GenericSection {
	var sections []model.GenericSection

	if strings.TrimSpace(content.Summary) != "" {
		sections = append(sections, model.GenericSection{
			ID:   model.NewSectionID(),
			Type: model.SectionText,
			Name: "Summary",
			Data: model.TextData{Content: strings.TrimSpace(content.Summary)},
		})
	}

	if items := experienceItems(content.Experience); len(items) > 0 {
		sections = append(sections, model.GenericSection{
			ID:              model.NewSectionID(),
			Type:            model.SectionBulletPoints,
			Name:            "Experience",
			BulletPointType: model.BulletWorkExperience,
			Data:            model.BulletPointsData{Items: items},
		})
	}

	if skills := nonBlank(content.Skills); len(skills) > 0 {
		sections = append(sections, model.GenericSection{
			ID:   model.NewSectionID(),
			Type: model.SectionList,
			Name: "Skills",
			Data: model.ListData{Items: skills},
		})
	}

	if content.Education != nil && strings.TrimSpace(content.Education.Degree) != "" {
		sections = append(sections, model.GenericSection{
			ID:   model.NewSectionID(),
			Type: model.SectionEducation,
			Name: "Education",
			Data: model.EducationData{
				Degree:     strings.TrimSpace(content.Education.Degree),
				University: strings.TrimSpace(content.Education.University),
				Year:       strings.TrimSpace(content.Education.Year),
			},
		})
	}

	return sections
}

// Apply migrates a record in place when it still carries legacy fields and
// has no generic sections yet, then clears the legacy fields.
func Apply(content *model.ResumeContent) bool {
	if len(content.Sections) > 0 || !content.HasLegacyFields() {
		return false
	}
	content.Sections = FromLegacy(*content)
	content.ReconcileOrder()
	content.ClearLegacyFields()
	return true
}

func experienceItems(entries []model.LegacyExperience) []model.BulletPointItem {
	var items []model.BulletPointItem
	for _, entry := range entries {
		item := model.BulletPointItem{
			Company:     strings.TrimSpace(entry.Company),
			Role:        strings.TrimSpace(entry.Role),
			Duration:    strings.TrimSpace(entry.Duration),
			Description: strings.Join(nonBlank(entry.Bullets), "\n"),
		}
		if item.Company == "" && item.Role == "" && item.Duration == "" && item.Description == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
