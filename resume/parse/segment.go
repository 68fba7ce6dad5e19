package parse

import "regexp"

// Segment is one (heading, body) pair cut from the document. Body is the raw
// text strictly between this heading and the next one; it has not been
// normalized, so entry-heading commands inside it stay intact for the
// classifier.
type Segment struct {
	Name string
	Body string
}

var (
	sectionHeadingRe = regexp.MustCompile(`\\section\*?\{([^{}]*)\}`)
	endDocumentRe    = regexp.MustCompile(`\\end\{document\}`)
)

// SplitSections cuts the document into heading-delimited segments in
// document order. A heading immediately followed by another heading or by
// the end marker still yields a segment, with an empty body.
func SplitSections(doc string) []Segment {
	headings := sectionHeadingRe.FindAllStringSubmatchIndex(doc, -1)
	if len(headings) == 0 {
		return nil
	}

	segments := make([]Segment, 0, len(headings))
	for i, match := range headings {
		name := doc[match[2]:match[3]]
		bodyStart := match[1]
		bodyEnd := len(doc)
		if i+1 < len(headings) {
			bodyEnd = headings[i+1][0]
		}
		if end := endDocumentRe.FindStringIndex(doc[bodyStart:bodyEnd]); end != nil {
			bodyEnd = bodyStart + end[0]
		}
		segments = append(segments, Segment{Name: name, Body: doc[bodyStart:bodyEnd]})
	}
	return segments
}
