package extract

import (
	"strings"

	"golang.org/x/text/width"
)

// Replacement is one known OCR misreading and its correction, substituted
// verbatim. The correction must not itself contain any From string in the
// table, otherwise normalization would not be idempotent.
type Replacement struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// DefaultReplacements is the built-in table of Tesseract-kor misreadings
// observed on scanned sanction notices.
func DefaultReplacements() []Replacement {
	return []Replacement{
		{From: "금웅", To: "금융"},
		{From: "쳬재", To: "제재"},
		{From: "재재조치", To: "제재조치"},
		{From: "괴태료", To: "과태료"},
		{From: "과태효", To: "과태료"},
		{From: "업무졍지", To: "업무정지"},
		{From: "엄무정지", To: "업무정지"},
		{From: "문책싱", To: "문책상"},
	}
}

// Normalizer cleans OCR-derived text. It is a pure function over its input:
// no ambient state, and Normalize(Normalize(x)) == Normalize(x).
type Normalizer struct {
	replacements []Replacement
}

// NewNormalizer creates a normalizer with the given replacement table.
// Pass nil to use DefaultReplacements.
func NewNormalizer(replacements []Replacement) *Normalizer {
	if replacements == nil {
		replacements = DefaultReplacements()
	}
	return &Normalizer{replacements: replacements}
}

// Normalize applies, in order: full-width folding, spurious inter-syllable
// space collapsing, and the misreading table. Collapsing runs before the
// table so that a misreading split by OCR spaces ("금 웅 기") is corrected
// on the first pass. Empty input is returned unchanged.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return text
	}

	// Tesseract renders punctuation and digits from Korean scans as
	// full-width forms: "（１）" for "(1)", "：" for ":".
	text = strings.ReplaceAll(text, "　", " ")
	text = width.Narrow.String(text)

	text = collapseSpacedSyllables(text)

	for _, r := range n.replacements {
		text = strings.ReplaceAll(text, r.From, r.To)
	}

	return text
}

// collapseSpacedSyllables removes the spaces from runs of three or more
// Hangul syllables separated by single spaces ("기 관 의 과 태 료" →
// "기관의과태료"). A single space between two syllables is legitimate word
// spacing and is preserved, as is all non-Hangul spacing. Each member of a
// run must be exactly one syllable: "갑 을 병정" has no run because 병정 is
// two syllables.
func collapseSpacedSyllables(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for i < len(runes) {
		if isHangul(runes[i]) && (i == 0 || !isHangul(runes[i-1])) {
			j := i // index of the last syllable in the candidate run
			count := 1
			for j+2 < len(runes) && runes[j+1] == ' ' && isHangul(runes[j+2]) &&
				(j+3 >= len(runes) || !isHangul(runes[j+3])) {
				j += 2
				count++
			}
			if count >= 3 {
				for k := i; k <= j; k++ {
					if runes[k] != ' ' {
						b.WriteRune(runes[k])
					}
				}
				i = j + 1
				continue
			}
		}
		b.WriteRune(runes[i])
		i++
	}

	return b.String()
}

// isHangul reports whether r is a precomposed Hangul syllable.
func isHangul(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}
