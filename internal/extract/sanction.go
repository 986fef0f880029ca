package extract

import (
	"strings"

	"github.com/koreg/sanctia/internal/model"
)

// targetAliases folds separator and spelling variants of the combined
// officer/staff category before the vocabulary check. Checked longest
// variant first so "임원 및 직원" is not half-consumed as "임원".
var targetAliases = []struct{ from, to string }{
	{"임원 및 직원", "임직원"},
	{"임원및직원", "임직원"},
	{"임원·직원", "임직원"},
	{"임원ㆍ직원", "임직원"},
	{"임ㆍ직원", "임직원"},
	{"임·직원", "임직원"},
}

// targetVocab is the closed vocabulary of sanction target categories.
// 임직원 precedes 임원 and 직원 so the combined form is not split.
var targetVocab = []string{"임직원", "기관", "임원", "직원"}

// ExtractSanction locates the action section ("조치내용" and variants) and
// scans its lines for a target category followed by the sanction text. The
// first matching line wins. Returns ("-", "-") when nothing matches, which
// is an expected outcome for unrecognized templates, not an error.
func ExtractSanction(body string) (target, sanction string) {
	span := Locate(body, ActionHeadings, BoundaryHeadings)
	section := span.Extract(body)
	if section == "" {
		return model.Placeholder, model.Placeholder
	}

	for _, raw := range strings.Split(section, "\n") {
		line := trimLineMarker(strings.TrimSpace(raw))
		if line == "" {
			continue
		}
		for _, a := range targetAliases {
			line = strings.ReplaceAll(line, a.from, a.to)
		}
		for _, cat := range targetVocab {
			if !strings.HasPrefix(line, cat) {
				continue
			}
			rest := strings.TrimSpace(strings.TrimPrefix(line, cat))
			rest = strings.TrimSpace(strings.TrimLeft(rest, ":：-"))
			if rest == "" {
				continue
			}
			return cat, rest
		}
	}

	return model.Placeholder, model.Placeholder
}

// trimLineMarker strips a leading list marker ("-", "o", "□", "(1)", "①")
// so that a marked table row still starts with its target category.
func trimLineMarker(line string) string {
	if m := numberedRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := circledRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(strings.TrimLeft(line, "-o□◦○•· "))
}
