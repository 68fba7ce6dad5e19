package render

import "strings"

// escapeSteps runs in a fixed order: backslash first, so the backslashes
// introduced by the later replacements are never themselves re-escaped. The
// brace replacements come before the tilde/caret commands, whose own braces
// are intentional.
var escapeSteps = []struct {
	from, to string
}{
	{`\`, `\textbackslash `},
	{`&`, `\&`},
	{`%`, `\%`},
	{`$`, `\$`},
	{`#`, `\#`},
	{`_`, `\_`},
	{`{`, `\{`},
	{`}`, `\}`},
	{`~`, `\textasciitilde{}`},
	{`^`, `\textasciicircum{}`},
}

// Escape makes user-supplied text safe for LaTeX emission.
func Escape(s string) string {
	for _, step := range escapeSteps {
		s = strings.ReplaceAll(s, step.from, step.to)
	}
	return s
}
