package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Institution patterns, in priority order. Titles are the most reliable
// source ("OO은행에 대한 제재"), then labeled body fields.
var institutionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`「([^」]+)」`),
	regexp.MustCompile(`([^\s(]+)\s*에\s*대한\s*(?:검사\s*결과\s*)?(?:기관\s*)?제재`),
	regexp.MustCompile(`제재\s*대상\s*기관\s*[:：]\s*([^\s,(]+)`),
	regexp.MustCompile(`대상\s*기관\s*[:：]\s*([^\s,(]+)`),
	regexp.MustCompile(`기\s*관\s*명\s*[:：]\s*([^\s,(]+)`),
}

// ExtractInstitution returns the sanctioned institution's name, searching
// the title first and then the body. Returns "" when no pattern matches.
func ExtractInstitution(title, body string) string {
	for _, text := range []string{title, body} {
		if text == "" {
			continue
		}
		for _, re := range institutionPatterns {
			if m := re.FindStringSubmatch(text); m != nil {
				if name := strings.TrimSpace(m[1]); name != "" {
					return name
				}
			}
		}
	}
	return ""
}

// Date patterns, in priority order. Labeled dates ("제재조치일: ...") beat
// bare dates, which could be any date mentioned in the document.
var (
	dateDotRe    = regexp.MustCompile(`(\d{4})\s*\.\s*(\d{1,2})\s*\.\s*(\d{1,2})\s*\.?`)
	dateKoreanRe = regexp.MustCompile(`(\d{4})\s*년\s*(\d{1,2})\s*월\s*(\d{1,2})\s*일`)
	dateLabelRe  = regexp.MustCompile(`(?:제재\s*)?조치일\s*[:：]?\s*(\d{4})\s*[.년]\s*(\d{1,2})\s*[.월]\s*(\d{1,2})`)
)

// ExtractSanctionDate returns the sanction date normalized to YYYY-MM-DD,
// or "" when no date pattern matches.
func ExtractSanctionDate(body string) string {
	for _, re := range []*regexp.Regexp{dateLabelRe, dateKoreanRe, dateDotRe} {
		if m := re.FindStringSubmatch(body); m != nil {
			return formatDate(m[1], m[2], m[3])
		}
	}
	return ""
}

func formatDate(y, m, d string) string {
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
