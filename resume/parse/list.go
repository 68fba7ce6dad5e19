package parse

import (
	"regexp"
	"strings"

	"jobtrack-backend/resume/model"
)

var (
	resumeItemRe    = regexp.MustCompile(`\\resumeItem\{((?:[^{}]|\{[^{}]*\})*)\}`)
	itemSplitRe     = regexp.MustCompile(`\\item\b`)
	itemTerminateRe = regexp.MustCompile(`\\end\{[^{}]*\}|\\resumeItemListEnd`)
	listSeparator   = regexp.MustCompile(`[,;]`)
)

// listItems pulls the individual entries out of a list-like construct:
// \resumeItem{..} commands first, then plain \item markers. Returns nil when
// the fragment holds neither.
func listItems(fragment string) []string {
	var items []string
	for _, sub := range resumeItemRe.FindAllStringSubmatch(fragment, -1) {
		if value := Normalize(sub[1]); value != "" {
			items = append(items, value)
		}
	}
	if len(items) > 0 {
		return items
	}

	marks := itemSplitRe.FindAllStringIndex(fragment, -1)
	for i, mark := range marks {
		end := len(fragment)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		slice := fragment[mark[1]:end]
		if term := itemTerminateRe.FindStringIndex(slice); term != nil {
			slice = slice[:term[0]]
		}
		if value := Normalize(slice); value != "" {
			items = append(items, value)
		}
	}
	return items
}

// parseList extracts flat entries from a section body. Item markers win;
// when there are none the normalized text is split on commas and semicolons.
func parseList(body string) model.ListData {
	if items := listItems(body); len(items) > 0 {
		return model.ListData{Items: items}
	}

	var items []string
	for _, part := range listSeparator.Split(Normalize(body), -1) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return model.ListData{Items: items}
}
