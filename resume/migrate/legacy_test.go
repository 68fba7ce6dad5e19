package migrate

import (
	"testing"

	"jobtrack-backend/resume/model"
)

func TestFromLegacyFixedOrder(t *testing.T) {
	content := model.ResumeContent{
		Summary: "Backend engineer.",
		Experience: []model.LegacyExperience{
			{Company: "Acme", Role: "Engineer", Duration: "2020", Bullets: []string{"Shipped", " ", "Scaled"}},
		},
		Skills:    []string{"Go", "", "Rust"},
		Education: &model.LegacyEducation{Degree: "BSc", University: "MIT", Year: "2018"},
	}

	sections := FromLegacy(content)

	if len(sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(sections))
	}
	wantNames := []string{"Summary", "Experience", "Skills", "Education"}
	wantTypes := []model.SectionType{model.SectionText, model.SectionBulletPoints, model.SectionList, model.SectionEducation}
	for i := range sections {
		if sections[i].Name != wantNames[i] || sections[i].Type != wantTypes[i] {
			t.Fatalf("section %d = %q/%q", i, sections[i].Name, sections[i].Type)
		}
		if sections[i].ID == "" {
			t.Fatalf("section %d has no id", i)
		}
		if sections[i].Empty() {
			t.Fatalf("section %d would fail the emptiness filter", i)
		}
	}

	items := sections[1].Data.(model.BulletPointsData).Items
	if len(items) != 1 {
		t.Fatalf("experience items = %#v", items)
	}
	if items[0].Description != "Shipped\nScaled" {
		t.Fatalf("description = %q", items[0].Description)
	}
	if sections[1].BulletPointType != model.BulletWorkExperience {
		t.Fatalf("bulletPointType = %q", sections[1].BulletPointType)
	}

	skills := sections[2].Data.(model.ListData).Items
	if len(skills) != 2 || skills[0] != "Go" || skills[1] != "Rust" {
		t.Fatalf("skills = %#v", skills)
	}
}

func TestFromLegacySparseRecord(t *testing.T) {
	content := model.ResumeContent{
		Experience: []model.LegacyExperience{{Company: "Acme"}},
	}

	sections := FromLegacy(content)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	sec := sections[0]
	if sec.Type != model.SectionBulletPoints || sec.Name != "Experience" {
		t.Fatalf("section = %#v", sec)
	}
	items := sec.Data.(model.BulletPointsData).Items
	if len(items) != 1 {
		t.Fatalf("items = %#v", items)
	}
	want := model.BulletPointItem{Company: "Acme", Role: "", Duration: "", Description: ""}
	if items[0] != want {
		t.Fatalf("item = %#v, want %#v", items[0], want)
	}
}

func TestFromLegacyDropsEmptyEntries(t *testing.T) {
	content := model.ResumeContent{
		Experience: []model.LegacyExperience{{Bullets: []string{"  "}}},
		Skills:     []string{"", "  "},
		Education:  &model.LegacyEducation{University: "MIT"},
	}

	if sections := FromLegacy(content); len(sections) != 0 {
		t.Fatalf("expected no sections, got %#v", sections)
	}
}

func TestApplyMigratesOnceAndClearsLegacy(t *testing.T) {
	content := model.ResumeContent{Summary: "hello"}

	if !Apply(&content) {
		t.Fatalf("expected migration to run")
	}
	if len(content.Sections) != 1 || content.Sections[0].Type != model.SectionText {
		t.Fatalf("sections = %#v", content.Sections)
	}
	if content.Summary != "" {
		t.Fatalf("legacy summary not cleared")
	}
	if len(content.SectionOrder) != 1 || content.SectionOrder[0] != content.Sections[0].ID {
		t.Fatalf("sectionOrder = %#v", content.SectionOrder)
	}

	if Apply(&content) {
		t.Fatalf("migration must not run twice")
	}
}

func TestApplySkipsRecordsWithSections(t *testing.T) {
	content := model.ResumeContent{
		Summary: "stale legacy text",
		Sections: []model.GenericSection{
			{ID: "s1", Type: model.SectionText, Data: model.TextData{Content: "current"}},
		},
	}

	if Apply(&content) {
		t.Fatalf("records with generic sections must not be migrated")
	}
}
