package parse

import "testing"

func TestSplitSectionsDocumentOrder(t *testing.T) {
	doc := `preamble
\section{First}
one
\section*{Second}
two
\end{document}
trailing junk`

	segments := SplitSections(doc)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Name != "First" || segments[1].Name != "Second" {
		t.Fatalf("names = %q, %q", segments[0].Name, segments[1].Name)
	}
	if want := "\none\n"; segments[0].Body != want {
		t.Fatalf("first body = %q, want %q", segments[0].Body, want)
	}
	// Second body stops at the end-of-document marker.
	if want := "\ntwo\n"; segments[1].Body != want {
		t.Fatalf("second body = %q, want %q", segments[1].Body, want)
	}
}

func TestSplitSectionsEmptyBodySegments(t *testing.T) {
	doc := `\section{A}\section{B}body`

	segments := SplitSections(doc)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Body != "" {
		t.Fatalf("first body = %q, want empty", segments[0].Body)
	}
	if segments[1].Body != "body" {
		t.Fatalf("second body = %q", segments[1].Body)
	}
}

func TestSplitSectionsNoHeadings(t *testing.T) {
	if segments := SplitSections("no headings at all"); len(segments) != 0 {
		t.Fatalf("expected no segments, got %d", len(segments))
	}
}

func TestSplitSectionsBodyKeepsRawCommands(t *testing.T) {
	doc := `\section{Experience}\resumeSubheading{a}{b}{c}{d}`

	segments := SplitSections(doc)

	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Body != `\resumeSubheading{a}{b}{c}{d}` {
		t.Fatalf("body = %q", segments[0].Body)
	}
}
