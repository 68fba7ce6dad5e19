package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SectionType identifies the structural kind of a section. It is fixed at
// creation; edits change a section's data and name, never its kind.
type SectionType string

const (
	SectionText         SectionType = "text"
	SectionBulletPoints SectionType = "bullet-points"
	SectionList         SectionType = "list"
	SectionEducation    SectionType = "education"
)

// BulletPointType is a sub-tag on bullet-points sections used only for
// default naming and placeholders in the editor. It carries no parsing
// semantics.
type BulletPointType string

const (
	BulletWorkExperience BulletPointType = "work-experience"
	BulletProjects       BulletPointType = "projects"
	BulletGeneric        BulletPointType = "generic"
)

// SectionData is the closed set of per-kind payloads. Exactly one concrete
// type matches each SectionType.
type SectionData interface {
	sectionData()
	// Empty reports whether the payload carries no semantic content.
	Empty() bool
}

// TextData is the payload of a text section.
type TextData struct {
	Content string `json:"content"`
}

func (TextData) sectionData() {}

func (d TextData) Empty() bool {
	return strings.TrimSpace(d.Content) == ""
}

// BulletPointItem is one entry of a bullet-points section. Description holds
// newline-joined free text; each line renders as one bullet.
type BulletPointItem struct {
	Company     string `json:"company,omitempty"`
	Role        string `json:"role,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

func (i BulletPointItem) blank() bool {
	return strings.TrimSpace(i.Company) == "" &&
		strings.TrimSpace(i.Role) == "" &&
		strings.TrimSpace(i.Duration) == "" &&
		strings.TrimSpace(i.Description) == ""
}

// BulletPointsData is the payload of a bullet-points section.
type BulletPointsData struct {
	Items []BulletPointItem `json:"items"`
}

func (BulletPointsData) sectionData() {}

func (d BulletPointsData) Empty() bool {
	for _, item := range d.Items {
		if !item.blank() {
			return false
		}
	}
	return true
}

// ListData is the payload of a list section, one string per flat entry.
type ListData struct {
	Items []string `json:"items"`
}

func (ListData) sectionData() {}

func (d ListData) Empty() bool {
	for _, item := range d.Items {
		if strings.TrimSpace(item) != "" {
			return false
		}
	}
	return true
}

// EducationData is the payload of an education section. Only the degree
// counts toward emptiness; university and year alone do not.
type EducationData struct {
	Degree      string `json:"degree"`
	University  string `json:"university"`
	Year        string `json:"year"`
	Description string `json:"description,omitempty"`
}

func (EducationData) sectionData() {}

func (d EducationData) Empty() bool {
	return strings.TrimSpace(d.Degree) == ""
}

// GenericSection is one named block of a resume, tagged with its structural
// kind and carrying the matching payload.
type GenericSection struct {
	ID              string          `json:"id"`
	Type            SectionType     `json:"type"`
	Name            string          `json:"name"`
	BulletPointType BulletPointType `json:"bulletPointType,omitempty"`
	Data            SectionData     `json:"data"`
}

// Empty reports whether the section carries no semantic content and should
// be filtered out before persistence.
func (s GenericSection) Empty() bool {
	if s.Data == nil {
		return true
	}
	return s.Data.Empty()
}

// NewSectionID returns a fresh section identifier, unique within a session.
func NewSectionID() string {
	return uuid.NewString()
}

type sectionAlias struct {
	ID              string          `json:"id"`
	Type            SectionType     `json:"type"`
	Name            string          `json:"name"`
	BulletPointType BulletPointType `json:"bulletPointType,omitempty"`
	Data            json.RawMessage `json:"data"`
}

// UnmarshalJSON decodes the payload into the concrete type selected by Type.
func (s *GenericSection) UnmarshalJSON(raw []byte) error {
	var alias sectionAlias
	if err := json.Unmarshal(raw, &alias); err != nil {
		return err
	}
	s.ID = alias.ID
	s.Type = alias.Type
	s.Name = alias.Name
	s.BulletPointType = alias.BulletPointType
	s.Data = nil
	if len(alias.Data) == 0 || string(alias.Data) == "null" {
		return nil
	}
	switch alias.Type {
	case SectionText:
		var data TextData
		if err := json.Unmarshal(alias.Data, &data); err != nil {
			return err
		}
		s.Data = data
	case SectionBulletPoints:
		var data BulletPointsData
		if err := json.Unmarshal(alias.Data, &data); err != nil {
			return err
		}
		s.Data = data
	case SectionList:
		var data ListData
		if err := json.Unmarshal(alias.Data, &data); err != nil {
			return err
		}
		s.Data = data
	case SectionEducation:
		var data EducationData
		if err := json.Unmarshal(alias.Data, &data); err != nil {
			return err
		}
		s.Data = data
	default:
		return fmt.Errorf("unknown section type %q", alias.Type)
	}
	return nil
}

// MarshalJSON encodes the section with its payload inline.
func (s GenericSection) MarshalJSON() ([]byte, error) {
	var data json.RawMessage
	if s.Data != nil {
		encoded, err := json.Marshal(s.Data)
		if err != nil {
			return nil, err
		}
		data = encoded
	}
	return json.Marshal(sectionAlias{
		ID:              s.ID,
		Type:            s.Type,
		Name:            s.Name,
		BulletPointType: s.BulletPointType,
		Data:            data,
	})
}
