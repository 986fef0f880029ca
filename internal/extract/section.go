package extract

import (
	"regexp"
	"strings"
)

// Span is a half-open byte range into a document body, denoting the text
// strictly between a section heading and the next known heading. The zero
// Span means the section was not found, which is a normal outcome for
// documents using an unrecognized template.
type Span struct {
	Start int
	End   int
}

// IsZero reports whether the span denotes "section not found".
func (s Span) IsZero() bool {
	return s.Start == 0 && s.End == 0
}

// Extract returns the spanned text.
func (s Span) Extract(text string) string {
	if s.IsZero() || s.Start >= len(text) {
		return ""
	}
	end := s.End
	if end > len(text) {
		end = len(text)
	}
	return text[s.Start:end]
}

// headingPattern compiles a section heading into a pattern tolerant of
// OCR-inserted whitespace between the heading's syllables, with an optional
// list prefix ("4.", "□", "o", circled digit) before it.
func headingPattern(heading string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`(?:\d{1,2}\s*[.)]|[□◦○o•]|[①-⑳])?\s*`)
	for i, r := range heading {
		if i > 0 {
			b.WriteString(`\s*`)
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	return regexp.MustCompile(b.String())
}

func headingPatterns(headings ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(headings))
	for _, h := range headings {
		out = append(out, headingPattern(h))
	}
	return out
}

// Section pattern sets, in fixed priority order. The first matching pattern
// wins; there is no attempt to pick a "best" match.
var (
	// FactsHeadings marks the section listing what the institution did.
	FactsHeadings = headingPatterns(
		"제재대상사실",
		"검사결과지적사항",
		"지적사항",
	)

	// ActionHeadings marks the section stating the sanction imposed.
	ActionHeadings = headingPatterns(
		"제재조치내용",
		"조치내용",
		"제재내용",
	)

	// BoundaryHeadings is the fixed list of all known section headings.
	// Whichever of them appears first after a located heading ends the
	// section.
	BoundaryHeadings = headingPatterns(
		"제재조치내용",
		"조치내용",
		"제재내용",
		"제재대상사실",
		"지적사항",
		"조치대상자",
		"관련법규",
		"조치이유",
		"향후계획",
		"참고사항",
	)
)

// Locate finds the span strictly between the end of the first heading
// pattern that matches and the start of the earliest boundary pattern match
// after it, or end of text when no boundary follows. Returns the zero Span
// when no heading matches.
func Locate(text string, headings, boundaries []*regexp.Regexp) Span {
	if text == "" {
		return Span{}
	}

	start := -1
	for _, re := range headings {
		if loc := re.FindStringIndex(text); loc != nil {
			start = loc[1]
			break
		}
	}
	if start < 0 {
		return Span{}
	}

	rest := text[start:]
	end := len(text)
	for _, re := range boundaries {
		if loc := re.FindStringIndex(rest); loc != nil && start+loc[0] < end {
			end = start + loc[0]
		}
	}

	if start == 0 && end == 0 {
		return Span{}
	}
	return Span{Start: start, End: end}
}
