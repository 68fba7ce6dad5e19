package model

import "strings"

// ResumeContent is the structured record for one resume: contact fields plus
// the ordered collection of generic sections. SectionOrder, not the slice
// order of Sections, is authoritative for display.
//
// The legacy fields (Summary, Experience, Skills, Education) exist only for
// records created before the generic model; migration converts them into
// Sections and they are cleared on the next save.
type ResumeContent struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	Sections     []GenericSection `json:"sections,omitempty"`
	SectionOrder []string         `json:"sectionOrder,omitempty"`

	Summary    string             `json:"summary,omitempty"`
	Experience []LegacyExperience `json:"experience,omitempty"`
	Skills     []string           `json:"skills,omitempty"`
	Education  *LegacyEducation   `json:"education,omitempty"`
}

// LegacyExperience is one work entry of the pre-generic schema.
type LegacyExperience struct {
	Company  string   `json:"company,omitempty"`
	Role     string   `json:"role,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
}

// LegacyEducation is the single education block of the pre-generic schema.
type LegacyEducation struct {
	Degree     string `json:"degree,omitempty"`
	University string `json:"university,omitempty"`
	Year       string `json:"year,omitempty"`
}

// HasLegacyFields reports whether any pre-generic field is populated.
func (c ResumeContent) HasLegacyFields() bool {
	if strings.TrimSpace(c.Summary) != "" {
		return true
	}
	if len(c.Experience) > 0 {
		return true
	}
	for _, skill := range c.Skills {
		if strings.TrimSpace(skill) != "" {
			return true
		}
	}
	return c.Education != nil
}

// ClearLegacyFields drops the pre-generic fields so a migrated record does
// not repopulate them.
func (c *ResumeContent) ClearLegacyFields() {
	c.Summary = ""
	c.Experience = nil
	c.Skills = nil
	c.Education = nil
}

// SectionByID returns the section with the given identifier.
func (c ResumeContent) SectionByID(id string) (GenericSection, bool) {
	for _, sec := range c.Sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return GenericSection{}, false
}

// OrderedSections returns the sections in display order. IDs in SectionOrder
// that match no section are skipped; sections missing from SectionOrder are
// appended in slice order.
func (c ResumeContent) OrderedSections() []GenericSection {
	out := make([]GenericSection, 0, len(c.Sections))
	seen := make(map[string]bool, len(c.Sections))
	for _, id := range c.SectionOrder {
		if seen[id] {
			continue
		}
		if sec, ok := c.SectionByID(id); ok {
			out = append(out, sec)
			seen[id] = true
		}
	}
	for _, sec := range c.Sections {
		if !seen[sec.ID] {
			out = append(out, sec)
			seen[sec.ID] = true
		}
	}
	return out
}

// ReconcileOrder rewrites SectionOrder so every section appears exactly once:
// unknown identifiers are dropped and unordered sections appended.
func (c *ResumeContent) ReconcileOrder() {
	ordered := c.OrderedSections()
	order := make([]string, 0, len(ordered))
	for _, sec := range ordered {
		order = append(order, sec.ID)
	}
	c.SectionOrder = order
}

// FilterEmpty removes semantically empty sections from both Sections and
// SectionOrder. Emptiness is kind-specific, see SectionData.Empty.
func (c *ResumeContent) FilterEmpty() {
	kept := c.Sections[:0]
	keptIDs := make(map[string]bool, len(c.Sections))
	for _, sec := range c.Sections {
		if sec.Empty() {
			continue
		}
		kept = append(kept, sec)
		keptIDs[sec.ID] = true
	}
	c.Sections = kept
	order := c.SectionOrder[:0]
	for _, id := range c.SectionOrder {
		if keptIDs[id] {
			order = append(order, id)
			keptIDs[id] = false
		}
	}
	c.SectionOrder = order
}
