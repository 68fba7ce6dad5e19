// Package render serializes a structured resume back into a LaTeX document
// body. It is the inverse of the parse direction: given well-typed content
// it has no failure cases beyond string construction.
package render

import (
	"fmt"
	"strings"

	"jobtrack-backend/resume/model"
)

// LaTeX produces a document body from contact fields and the sections in
// display order: a contact header, one heading+body block per section, and
// the closing marker. All user-supplied text passes through Escape.
func LaTeX(content model.ResumeContent) string {
	var b strings.Builder

	writeContact(&b, "name", content.Name)
	writeContact(&b, "email", content.Email)
	writeContact(&b, "phone", content.Phone)

	for _, section := range content.OrderedSections() {
		b.WriteString("\n")
		fmt.Fprintf(&b, "\\section{%s}\n", Escape(section.Name))
		writeSectionBody(&b, section)
	}

	b.WriteString("\n\\end{document}\n")
	return b.String()
}

func writeContact(b *strings.Builder, command, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "\\%s{%s}\n", command, Escape(value))
}

func writeSectionBody(b *strings.Builder, section model.GenericSection) {
	switch data := section.Data.(type) {
	case model.TextData:
		b.WriteString(Escape(data.Content))
		b.WriteString("\n")
	case model.BulletPointsData:
		for _, item := range data.Items {
			writeBulletItem(b, item)
		}
	case model.ListData:
		b.WriteString("\\begin{itemize}\n")
		for _, item := range data.Items {
			fmt.Fprintf(b, "\\item %s\n", Escape(item))
		}
		b.WriteString("\\end{itemize}\n")
	case model.EducationData:
		fmt.Fprintf(b, "\\educationHeading{%s}{%s}{}{%s}\n",
			Escape(data.Degree), Escape(data.University), Escape(data.Year))
		if strings.TrimSpace(data.Description) != "" {
			fmt.Fprintf(b, "\\resumeItem{%s}\n", Escape(data.Description))
		}
	}
}

// writeBulletItem emits one timeline entry: the role as title, the duration
// as date, the company as subtitle, then one list item per description line.
func writeBulletItem(b *strings.Builder, item model.BulletPointItem) {
	fmt.Fprintf(b, "\\resumeSubheading{%s}{%s}{%s}{}\n",
		Escape(item.Role), Escape(item.Duration), Escape(item.Company))

	var lines []string
	for _, line := range strings.Split(item.Description, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString("\\resumeItemListStart\n")
	for _, line := range lines {
		fmt.Fprintf(b, "\\resumeItem{%s}\n", Escape(line))
	}
	b.WriteString("\\resumeItemListEnd\n")
}
