// Package parse implements the best-effort resume document engine: it
// extracts contact fields and typed sections out of free-form LaTeX source.
// Every function is pure and total; unrecognized or malformed input
// degrades to partial or empty results, never to an error.
package parse

import (
	"strings"

	"jobtrack-backend/resume/model"
)

// Parse builds a ResumeContent from raw LaTeX source. Field extraction and
// section segmentation read the same input independently; each non-empty
// segment is classified and routed to its kind-specific sub-parser.
func Parse(doc string) model.ResumeContent {
	content := model.ResumeContent{
		Name:  ExtractName(doc),
		Email: ExtractEmail(doc),
		Phone: ExtractPhone(doc),
	}

	for _, seg := range SplitSections(doc) {
		if strings.TrimSpace(seg.Body) == "" {
			continue
		}
		section := parseSegment(seg)
		content.Sections = append(content.Sections, section)
		content.SectionOrder = append(content.SectionOrder, section.ID)
	}
	return content
}

func parseSegment(seg Segment) model.GenericSection {
	section := model.GenericSection{
		ID:   model.NewSectionID(),
		Type: Classify(seg.Name, seg.Body),
		Name: strings.TrimSpace(seg.Name),
	}
	switch section.Type {
	case model.SectionEducation:
		section.Data = parseEducation(seg.Body)
	case model.SectionBulletPoints:
		section.BulletPointType = bulletTypeForName(seg.Name)
		section.Data = parseBulletPoints(seg.Body)
	case model.SectionList:
		section.Data = parseList(seg.Body)
	default:
		section.Data = model.TextData{Content: Normalize(seg.Body)}
	}
	return section
}

// bulletTypeForName picks the editor sub-tag from the heading name. It only
// drives default naming and placeholders downstream.
func bulletTypeForName(name string) model.BulletPointType {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "experience") || strings.Contains(lower, "employment") || strings.Contains(lower, "work"):
		return model.BulletWorkExperience
	case strings.Contains(lower, "project"):
		return model.BulletProjects
	default:
		return model.BulletGeneric
	}
}
