package extract

import (
	"regexp"
	"strings"

	"github.com/koreg/sanctia/internal/model"
)

// Line markers recognized inside a facts section. Patterns tolerate
// OCR-inserted spaces around the marker punctuation.
var (
	ordinalRe  = regexp.MustCompile(`^([가나다라마바사아자차카타파하])\s*[.．]\s*(.*)$`)
	numberedRe = regexp.MustCompile(`^\(\s*\d{1,2}\s*\)\s*(.*)$`)
	circledRe  = regexp.MustCompile(`^[①-⑳⑴-⒇]\s*(.*)$`)
	subItemRe  = regexp.MustCompile(`^\(\s*[가-힣]\s*\)\s*(.*)$`)
)

// subtitleVocab is the fixed vocabulary of category headings ("가. 문책사항")
// that group incidents rather than title them. Checked against the
// space-folded trailing text of an ordinal-letter line.
var subtitleVocab = []string{
	"문책사항",
	"책임사항",
	"개선사항",
	"경영유의사항",
	"주의사항",
	"자율처리필요사항",
	"현지조치사항",
}

// Segmenter walks a facts-section text line by line and groups lines into
// discrete incident records. It holds no state between calls.
type Segmenter struct {
	vocab []string
}

// NewSegmenter creates a segmenter with the default subtitle vocabulary.
func NewSegmenter() *Segmenter {
	return &Segmenter{vocab: subtitleVocab}
}

// Segment produces the ordered incident list for one section text. Line
// classes are tested in priority order: subtitle heading, numbered/circled
// marker, ordinal-letter marker, sub-item marker, plain line. Every emitted
// incident has a non-empty title; a marker with no trailing text is dropped
// together with whatever body it accumulated. Text before the first
// recognized title is discarded.
func (s *Segmenter) Segment(text string) []model.Incident {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var (
		incidents     []model.Incident
		title         string
		open          bool
		bodyLines     []string
		pendingParent string
	)

	flush := func() {
		if open && title != "" {
			incidents = append(incidents, model.Incident{
				Title: title,
				Body:  strings.Join(bodyLines, "\n"),
			})
		}
		open = false
		title = ""
		bodyLines = nil
	}

	openIncident := func(t string) {
		flush()
		title = t
		open = true
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// Class 1: subtitle heading. An ordinal-letter line whose
		// trailing text starts with a vocabulary term groups the
		// incidents that follow; the term itself is never content.
		if m := ordinalRe.FindStringSubmatch(line); m != nil {
			if rest, ok := s.matchSubtitle(m[2]); ok {
				flush()
				pendingParent = rest
				continue
			}
		}

		// Class 2: numbered or circled marker starts an incident,
		// prefixed by the pending parent title when one is set.
		if m := matchNumbered(line); m != "" || numberedOnly(line) {
			t := m
			if pendingParent != "" && t != "" {
				t = pendingParent + " - " + t
			}
			openIncident(t)
			pendingParent = ""
			continue
		}

		// Class 3: ordinal-letter marker outside the subtitle
		// vocabulary starts an incident and discards any pending
		// parent from a preceding subtitle.
		if m := ordinalRe.FindStringSubmatch(line); m != nil {
			openIncident(strings.TrimSpace(m[2]))
			pendingParent = ""
			continue
		}

		// Class 4: sub-item marker "(가)" is always body content.
		if subItemRe.MatchString(line) {
			if open {
				bodyLines = append(bodyLines, line)
			}
			continue
		}

		// Class 5: plain line.
		if open {
			bodyLines = append(bodyLines, line)
		}
	}

	flush()
	return incidents
}

// matchSubtitle checks an ordinal line's trailing text against the subtitle
// vocabulary, folding OCR spaces first. It returns the text remaining after
// the vocabulary term (usually empty) and whether the line is a subtitle.
func (s *Segmenter) matchSubtitle(trailing string) (string, bool) {
	folded := strings.ReplaceAll(trailing, " ", "")
	for _, term := range s.vocab {
		if strings.HasPrefix(folded, term) {
			return strings.TrimSpace(strings.TrimPrefix(folded, term)), true
		}
	}
	return "", false
}

// matchNumbered returns the trailing text of a numbered or circled marker
// line, or "" when the line is not one (or the marker has no trailing text).
func matchNumbered(line string) string {
	if m := numberedRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := circledRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// numberedOnly reports whether the line is a bare numbered/circled marker
// with no trailing text. Such a marker still closes the open incident; the
// titleless incident it opens is dropped at flush time.
func numberedOnly(line string) bool {
	return numberedRe.MatchString(line) || circledRe.MatchString(line)
}
