package render

import (
	"strings"
	"testing"

	"jobtrack-backend/resume/model"
	"jobtrack-backend/resume/parse"
)

const specials = `\&%$#_{}~^`

func TestEscapeCoversAllSpecials(t *testing.T) {
	escaped := Escape(specials)

	// No unescaped occurrence of any special may survive. Every remaining
	// special character must be the payload of an escape sequence.
	checks := []string{`\&`, `\%`, `\$`, `\#`, `\_`, `\{`, `\}`, `\textbackslash `, `\textasciitilde{}`, `\textasciicircum{}`}
	for _, want := range checks {
		if !strings.Contains(escaped, want) {
			t.Fatalf("escaped %q misses %q: %q", specials, want, escaped)
		}
	}
	if strings.Contains(escaped, "~") || strings.Contains(escaped, "^") {
		t.Fatalf("raw tilde or caret survived: %q", escaped)
	}
}

func TestEscapeIsInjectiveOnSpecials(t *testing.T) {
	base := "value"
	seen := map[string]string{}
	for _, r := range specials {
		in := base + string(r)
		out := Escape(in)
		if prev, ok := seen[out]; ok {
			t.Fatalf("Escape collides: %q and %q both map to %q", prev, in, out)
		}
		seen[out] = in
	}
}

func TestEscapeDoesNotReescapeBackslash(t *testing.T) {
	got := Escape(`a\&b`)
	if strings.Contains(got, `\\&`) {
		t.Fatalf("backslash escaping ran after ampersand: %q", got)
	}
	if got != `a\textbackslash \&b` {
		t.Fatalf("got %q", got)
	}
}

func sampleContent() model.ResumeContent {
	content := model.ResumeContent{
		Name:  "Jane Doe",
		Email: "jane@x.com",
		Phone: "555-123-4567",
		Sections: []model.GenericSection{
			{ID: "s1", Type: model.SectionText, Name: "Summary",
				Data: model.TextData{Content: "Backend engineer."}},
			{ID: "s2", Type: model.SectionBulletPoints, Name: "Experience",
				BulletPointType: model.BulletWorkExperience,
				Data: model.BulletPointsData{Items: []model.BulletPointItem{{
					Company:     "Acme",
					Role:        "Engineer",
					Duration:    "2020--2023",
					Description: "Shipped billing\nCut costs",
				}}}},
			{ID: "s3", Type: model.SectionList, Name: "Skills",
				Data: model.ListData{Items: []string{"Go", "Rust"}}},
			{ID: "s4", Type: model.SectionEducation, Name: "Education",
				Data: model.EducationData{Degree: "BSc", University: "MIT", Year: "2018"}},
		},
		SectionOrder: []string{"s1", "s2", "s3", "s4"},
	}
	return content
}

func TestLaTeXEmitsSectionsInOrder(t *testing.T) {
	doc := LaTeX(sampleContent())

	wantParts := []string{
		`\name{Jane Doe}`,
		`\email{jane@x.com}`,
		`\phone{555-123-4567}`,
		`\section{Summary}`,
		`\section{Experience}`,
		`\resumeSubheading{Engineer}{2020--2023}{Acme}{}`,
		`\resumeItem{Shipped billing}`,
		`\resumeItem{Cut costs}`,
		`\section{Skills}`,
		`\item Go`,
		`\educationHeading{BSc}{MIT}{}{2018}`,
		`\end{document}`,
	}
	last := -1
	for _, part := range wantParts {
		idx := strings.Index(doc, part)
		if idx < 0 {
			t.Fatalf("document misses %q:\n%s", part, doc)
		}
		if idx < last {
			t.Fatalf("%q appears out of order:\n%s", part, doc)
		}
		last = idx
	}
}

func TestLaTeXOmitsBlankContactFields(t *testing.T) {
	doc := LaTeX(model.ResumeContent{Name: "Jane"})

	if !strings.Contains(doc, `\name{Jane}`) {
		t.Fatalf("missing name: %s", doc)
	}
	if strings.Contains(doc, `\email{`) || strings.Contains(doc, `\phone{`) {
		t.Fatalf("blank contact fields emitted: %s", doc)
	}
}

// Re-parsing a generated document must classify every section with the kind
// it was generated from, and regenerating must be stable.
func TestRoundTripKeepsSectionKinds(t *testing.T) {
	original := sampleContent()

	doc := LaTeX(original)
	reparsed := parse.Parse(doc)

	if len(reparsed.Sections) != len(original.Sections) {
		t.Fatalf("reparsed %d sections, want %d:\n%s", len(reparsed.Sections), len(original.Sections), doc)
	}
	for i, sec := range reparsed.Sections {
		if sec.Type != original.Sections[i].Type {
			t.Fatalf("section %d kind = %q, want %q", i, sec.Type, original.Sections[i].Type)
		}
		if sec.Name != original.Sections[i].Name {
			t.Fatalf("section %d name = %q, want %q", i, sec.Name, original.Sections[i].Name)
		}
	}

	doc2 := LaTeX(reparsed)
	reparsed2 := parse.Parse(doc2)
	for i, sec := range reparsed2.Sections {
		if sec.Type != original.Sections[i].Type {
			t.Fatalf("second round trip flipped section %d to %q", i, sec.Type)
		}
	}
}

func TestRoundTripKeepsEducationFields(t *testing.T) {
	doc := LaTeX(sampleContent())
	reparsed := parse.Parse(doc)

	var education model.EducationData
	found := false
	for _, sec := range reparsed.Sections {
		if sec.Type == model.SectionEducation {
			education = sec.Data.(model.EducationData)
			found = true
		}
	}
	if !found {
		t.Fatalf("no education section after round trip:\n%s", doc)
	}
	if education.Degree != "BSc" || education.University != "MIT" || education.Year != "2018" {
		t.Fatalf("education = %#v", education)
	}
}

func TestRoundTripKeepsBulletItems(t *testing.T) {
	doc := LaTeX(sampleContent())
	reparsed := parse.Parse(doc)

	var items []model.BulletPointItem
	for _, sec := range reparsed.Sections {
		if sec.Type == model.SectionBulletPoints {
			items = sec.Data.(model.BulletPointsData).Items
		}
	}
	if len(items) != 1 {
		t.Fatalf("items = %#v", items)
	}
	item := items[0]
	if item.Role != "Engineer" || item.Company != "Acme" || item.Duration != "2020--2023" {
		t.Fatalf("item = %#v", item)
	}
	if item.Description != "Shipped billing\nCut costs" {
		t.Fatalf("description = %q", item.Description)
	}
}
