package parse

import (
	"regexp"
	"strings"
)

// fieldPattern is one rung of an ordered fallback chain for an atomic
// contact field. Specific commands come first, a generic token match last;
// the first pattern that hits wins.
type fieldPattern struct {
	re *regexp.Regexp
	// group selects the submatch holding the value; 0 takes the whole match.
	group int
}

var namePatterns = []fieldPattern{
	{re: regexp.MustCompile(`\\name\{([^{}]*)\}`), group: 1},
	{re: regexp.MustCompile(`\\author\{([^{}]*)\}`), group: 1},
	{re: regexp.MustCompile(`\\textbf\{\\Huge\s*(?:\\scshape\s*)?([^{}\\]+)\}`), group: 1},
	{re: regexp.MustCompile(`\{\\Huge\s*(?:\\scshape\s*)?([^{}\\]+)\}`), group: 1},
}

var emailPatterns = []fieldPattern{
	{re: regexp.MustCompile(`\\email\{([^{}]*)\}`), group: 1},
	{re: regexp.MustCompile(`\\href\{mailto:([^{}]*)\}`), group: 1},
	{re: regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`), group: 0},
}

var phonePatterns = []fieldPattern{
	{re: regexp.MustCompile(`\\phone(?:\[[^\]]*\])?\{([^{}]*)\}`), group: 1},
	{re: regexp.MustCompile(`\\mobile\{([^{}]*)\}`), group: 1},
	{re: regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`), group: 0},
}

// ExtractName returns the candidate name from the document, or "".
func ExtractName(doc string) string {
	return Normalize(firstMatch(namePatterns, doc))
}

// ExtractEmail returns the first email-shaped value from the document, or "".
func ExtractEmail(doc string) string {
	return strings.TrimSpace(firstMatch(emailPatterns, doc))
}

// ExtractPhone returns the first phone-shaped value from the document, or "".
func ExtractPhone(doc string) string {
	return Normalize(firstMatch(phonePatterns, doc))
}

func firstMatch(patterns []fieldPattern, doc string) string {
	for _, p := range patterns {
		sub := p.re.FindStringSubmatch(doc)
		if sub == nil {
			continue
		}
		if value := strings.TrimSpace(sub[p.group]); value != "" {
			return value
		}
	}
	return ""
}
