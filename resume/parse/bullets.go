package parse

import (
	"regexp"
	"strings"

	"jobtrack-backend/resume/model"
)

// arg matches one braced command argument, tolerating one level of nested
// braces (e.g. \textbf{..} inside a heading argument).
const arg = `\{((?:[^{}]|\{[^{}]*\})*)\}`

// entryShape is one rung of the ordered fallback chain for entry-heading
// commands. The first shape with at least one match handles the whole
// section; later shapes are never consulted.
type entryShape struct {
	re    *regexp.Regexp
	build func(sub []string) model.BulletPointItem
}

var entryShapes = []entryShape{
	// \cvevent{company}{role}{location}{dates}; location discarded.
	{
		re: regexp.MustCompile(`\\cvevent` + arg + arg + arg + arg),
		build: func(sub []string) model.BulletPointItem {
			return model.BulletPointItem{
				Company:  Normalize(sub[1]),
				Role:     Normalize(sub[2]),
				Duration: Normalize(sub[4]),
			}
		},
	},
	// \resumeSubheading{title}{dates}{company}{location}; location discarded.
	{
		re: regexp.MustCompile(`\\resumeSubheading` + arg + arg + arg + arg),
		build: func(sub []string) model.BulletPointItem {
			return model.BulletPointItem{
				Role:     Normalize(sub[1]),
				Duration: Normalize(sub[2]),
				Company:  Normalize(sub[3]),
			}
		},
	},
	// \resumeProjectHeading{\textbf{Title} .. \emph{Tech}}{dates}.
	{
		re: regexp.MustCompile(`\\resumeProjectHeading` + arg + arg),
		build: func(sub []string) model.BulletPointItem {
			title, tech := splitTitleTech(sub[1])
			return model.BulletPointItem{
				Role:     title,
				Company:  tech,
				Duration: Normalize(sub[2]),
			}
		},
	},
	// \cvproject{title}{url}{tech}{dates?}; url discarded, dates optional.
	{
		re: regexp.MustCompile(`\\cvproject` + arg + arg + arg + `(?:` + arg + `)?`),
		build: func(sub []string) model.BulletPointItem {
			return model.BulletPointItem{
				Role:     Normalize(sub[1]),
				Company:  Normalize(sub[3]),
				Duration: Normalize(sub[4]),
			}
		},
	},
}

var (
	projectTitleRe = regexp.MustCompile(`\\textbf\{([^{}]*)\}`)
	projectTechRe  = regexp.MustCompile(`\\(?:emph|textit)\{([^{}]*)\}`)
	boldTitleRe    = regexp.MustCompile(`\\textbf\{([^{}]*)\}`)
)

func splitTitleTech(inner string) (title, tech string) {
	if sub := projectTitleRe.FindStringSubmatch(inner); sub != nil {
		title = Normalize(sub[1])
	} else {
		title = Normalize(inner)
	}
	if sub := projectTechRe.FindStringSubmatch(inner); sub != nil {
		tech = Normalize(sub[1])
	}
	return title, tech
}

// parseBulletPoints extracts timeline entries from a section body. It walks
// an ordered chain of strategies and keeps the first one that yields at
// least one entry: the four known heading shapes, then a loose bold-title
// pattern, then the whole body as a single description-only entry.
func parseBulletPoints(body string) model.BulletPointsData {
	for _, shape := range entryShapes {
		if items := parseShape(shape, body); len(items) > 0 {
			return model.BulletPointsData{Items: items}
		}
	}
	if items := parseBoldTitles(body); len(items) > 0 {
		return model.BulletPointsData{Items: items}
	}
	return model.BulletPointsData{Items: []model.BulletPointItem{
		{Description: normalizeLines(body)},
	}}
}

// parseShape treats every occurrence of the shape as one entry whose
// description is the text up to the next occurrence (or end of section).
func parseShape(shape entryShape, body string) []model.BulletPointItem {
	matches := shape.re.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return nil
	}
	items := make([]model.BulletPointItem, 0, len(matches))
	for i, match := range matches {
		sub := submatchStrings(body, match)
		item := shape.build(sub)
		sliceEnd := len(body)
		if i+1 < len(matches) {
			sliceEnd = matches[i+1][0]
		}
		item.Description = describeSlice(body[match[1]:sliceEnd])
		items = append(items, item)
	}
	return items
}

// parseBoldTitles is the loose fallback: a bold run starts an entry and the
// following free text is its description.
func parseBoldTitles(body string) []model.BulletPointItem {
	matches := boldTitleRe.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return nil
	}
	items := make([]model.BulletPointItem, 0, len(matches))
	for i, match := range matches {
		sliceEnd := len(body)
		if i+1 < len(matches) {
			sliceEnd = matches[i+1][0]
		}
		items = append(items, model.BulletPointItem{
			Role:        Normalize(body[match[2]:match[3]]),
			Description: describeSlice(body[match[1]:sliceEnd]),
		})
	}
	return items
}

// describeSlice turns the text following an entry heading into description
// lines. An inner item list explodes into one line per item; otherwise the
// normalized slice is a single line.
func describeSlice(slice string) string {
	if items := listItems(slice); len(items) > 0 {
		return strings.Join(items, "\n")
	}
	return Normalize(slice)
}

// normalizeLines normalizes a body line by line, keeping line structure.
func normalizeLines(body string) string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if normalized := Normalize(line); normalized != "" {
			lines = append(lines, normalized)
		}
	}
	return strings.Join(lines, "\n")
}

func submatchStrings(s string, match []int) []string {
	sub := make([]string, len(match)/2)
	for i := range sub {
		start, end := match[2*i], match[2*i+1]
		if start >= 0 {
			sub[i] = s[start:end]
		}
	}
	return sub
}
