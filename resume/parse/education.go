package parse

import (
	"regexp"
	"strings"

	"jobtrack-backend/resume/model"
)

var (
	// \educationHeading{degree}{university}{location}{year}; location discarded.
	educationHeadingRe = regexp.MustCompile(`\\educationHeading` + arg + arg + arg + arg)

	yearTokenRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	eduSplitRe  = regexp.MustCompile(`[,\x{2013}\x{2014}-]`)
)

// parseEducation extracts one education record from a section body. The
// dedicated heading command is tried first; otherwise the normalized text is
// mined for a year token and comma/dash-separated degree and university.
func parseEducation(body string) model.EducationData {
	if sub := educationHeadingRe.FindStringSubmatch(body); sub != nil {
		data := model.EducationData{
			Degree:     Normalize(sub[1]),
			University: Normalize(sub[2]),
			Year:       Normalize(sub[4]),
		}
		if rest := describeSlice(body[educationHeadingRe.FindStringIndex(body)[1]:]); rest != "" {
			data.Description = rest
		}
		return data
	}

	normalized := Normalize(body)
	data := model.EducationData{}
	if year := yearTokenRe.FindString(normalized); year != "" {
		data.Year = year
	}

	var tokens []string
	for _, part := range eduSplitRe.Split(normalized, -1) {
		trimmed := strings.TrimSpace(yearTokenRe.ReplaceAllString(part, ""))
		if trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	if len(tokens) > 0 {
		data.Degree = tokens[0]
	}
	if len(tokens) > 1 {
		data.University = tokens[1]
	}
	return data
}
