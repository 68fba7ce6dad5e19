package parse

import (
	"regexp"
	"strings"
)

// The normalizer reduces a LaTeX body fragment to plain text through a fixed
// sequence of passes. Order matters: later passes clean up residue left by
// earlier ones, and the generic argument unwrap must run after every
// recognized command has been handled.
var (
	itemMarkerRe = regexp.MustCompile(`\\item\b`)
	inlineMathRe = regexp.MustCompile(`\$([^$]+)\$`)

	boldItalicRe = regexp.MustCompile(`\\(?:textbf|textit|textsc|emph|underline|uline)\{([^{}]*)\}`)
	hrefRe       = regexp.MustCompile(`\\href\{[^{}]*\}\{([^{}]*)\}`)
	urlRe        = regexp.MustCompile(`\\url\{([^{}]*)\}`)

	spacingRe   = regexp.MustCompile(`\\(?:sectionsep|resumeItemListStart|resumeItemListEnd|resumeSubHeadingListStart|resumeSubHeadingListEnd|vspace\*?\{[^{}]*\}|hspace\*?\{[^{}]*\}|smallskip|medskip|bigskip|noindent|hfill|par)\b`)
	lineBreakRe = regexp.MustCompile(`\\\\(?:\[[^\]]*\])?|\\newline\b|\\break\b`)
	// By the time this pass runs, escaped \% has already been unescaped to a
	// literal % glued to the preceding token. A % at line start or after
	// whitespace therefore reads as a comment; anything else survives.
	commentRe = regexp.MustCompile(`(?m)^[ \t]*%[^\n]*|[ \t]+%[^\n]*`)

	genericCmdRe = regexp.MustCompile(`\\[a-zA-Z]+\*?\{([^{}]*)\}(?:\{([^{}]*)\})?(?:\{([^{}]*)\})?(?:\{([^{}]*)\})?`)
	bareCmdRe    = regexp.MustCompile(`\\[a-zA-Z]+\*?`)

	strayBraceRe = regexp.MustCompile(`[{}]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

var escapedChars = strings.NewReplacer(
	`\&`, "&",
	`\_`, "_",
	`\#`, "#",
	`\%`, "%",
	`\$`, "$",
)

// Normalize strips recognized LaTeX markup from a text fragment and returns
// the remaining human-readable content. It never fails; unbalanced or
// unfamiliar markup degrades to whatever the passes manage to strip.
// Normalizing already-plain text returns it unchanged.
func Normalize(fragment string) string {
	out := fragment

	out = itemMarkerRe.ReplaceAllString(out, " ")
	out = inlineMathRe.ReplaceAllString(out, "$1")
	out = escapedChars.Replace(out)
	out = replaceUntilStable(out, func(s string) string {
		s = boldItalicRe.ReplaceAllString(s, "$1")
		s = hrefRe.ReplaceAllString(s, "$1")
		s = urlRe.ReplaceAllString(s, "$1")
		return s
	})
	out = spacingRe.ReplaceAllString(out, " ")
	out = lineBreakRe.ReplaceAllString(out, " ")
	out = commentRe.ReplaceAllString(out, "")
	out = replaceUntilStable(out, func(s string) string {
		return genericCmdRe.ReplaceAllStringFunc(s, unwrapGenericCommand)
	})
	out = bareCmdRe.ReplaceAllString(out, " ")
	out = strayBraceRe.ReplaceAllString(out, " ")
	out = whitespaceRe.ReplaceAllString(out, " ")

	return strings.TrimSpace(out)
}

// unwrapGenericCommand joins the braced arguments of an unrecognized command
// with spaces. This is the fallback for well-formed commands outside the
// fixed vocabulary, up to four arguments.
func unwrapGenericCommand(match string) string {
	sub := genericCmdRe.FindStringSubmatch(match)
	if sub == nil {
		return match
	}
	var parts []string
	for _, arg := range sub[1:] {
		if strings.TrimSpace(arg) != "" {
			parts = append(parts, strings.TrimSpace(arg))
		}
	}
	return strings.Join(parts, " ")
}

// replaceUntilStable applies fn repeatedly so nested wrappers resolve from
// the inside out. Each pass strictly shrinks the input, so this terminates.
func replaceUntilStable(s string, fn func(string) string) string {
	for i := 0; i < 16; i++ {
		next := fn(s)
		if next == s {
			return next
		}
		s = next
	}
	return s
}
