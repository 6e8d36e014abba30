package resumeats

import "strings"

// Emphasis markers injected by the formatter around keywords. Control
// characters cannot occur in valid resume text (input is UTF-8 validated
// at parse time and cleaned at format time), so generators can split on
// them without escaping concerns.
const (
	emphasisOpen  = "\x02"
	emphasisClose = "\x03"
)

// textRun is a span of text with uniform emphasis, the unit both the
// HTML and DOCX generators render.
type textRun struct {
	Text string
	Bold bool
}

// splitEmphasis breaks marked text into ordered runs. Unbalanced markers
// are tolerated: a dangling open marker bolds through the end of the
// string, and a stray close marker is dropped.
func splitEmphasis(s string) []textRun {
	if !strings.ContainsAny(s, emphasisOpen+emphasisClose) {
		return []textRun{{Text: s}}
	}

	var runs []textRun
	bold := false
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			runs = append(runs, textRun{Text: current.String(), Bold: bold})
			current.Reset()
		}
	}

	for _, r := range s {
		switch r {
		case '\x02':
			flush()
			bold = true
		case '\x03':
			flush()
			bold = false
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return runs
}

// stripEmphasis removes all emphasis markers, returning plain text.
func stripEmphasis(s string) string {
	if !strings.ContainsAny(s, emphasisOpen+emphasisClose) {
		return s
	}
	return strings.NewReplacer(emphasisOpen, "", emphasisClose, "").Replace(s)
}
