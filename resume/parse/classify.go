package parse

import (
	"regexp"
	"strings"

	"jobtrack-backend/resume/model"
)

var (
	listEnvRe = regexp.MustCompile(`\\begin\{(?:itemize|enumerate)\}|\\resumeItemListStart`)

	// A list whose entries carry a bold title and an italic subtitle is a
	// timeline written with plain items rather than a heading command.
	boldTitleItemRe = regexp.MustCompile(`\\item\s*\\textbf\{[^{}]*\}[^\\]*\\(?:emph|textit)\{`)
)

// Classify assigns one segment its structural kind by presence testing.
// Education and entry-heading constructs are checked before the generic
// list test so that, for example, an education section written with the
// same itemize environment as a skills section is still education.
func Classify(name, body string) model.SectionType {
	switch {
	case educationHeadingRe.MatchString(body) ||
		strings.Contains(strings.ToLower(name), "education"):
		return model.SectionEducation
	case hasEntryHeading(body) || boldTitleItemRe.MatchString(body):
		return model.SectionBulletPoints
	case listEnvRe.MatchString(body):
		return model.SectionList
	default:
		return model.SectionText
	}
}

func hasEntryHeading(body string) bool {
	for _, shape := range entryShapes {
		if shape.re.MatchString(body) {
			return true
		}
	}
	return false
}
