package extract

import (
	"testing"

	"github.com/koreg/sanctia/internal/model"
)

func TestExtractSanction_Institution(t *testing.T) {
	body := "4. 제재대상사실\n가. 내부통제기준 위반\n\n5. 조치내용\n기관 업무정지 3개월\n\n6. 관련법규\n금융산업법"

	target, sanction := ExtractSanction(body)
	if target != "기관" {
		t.Errorf("target = %q, want %q", target, "기관")
	}
	if sanction != "업무정지 3개월" {
		t.Errorf("sanction = %q, want %q", sanction, "업무정지 3개월")
	}
}

func TestExtractSanction_AliasVariants(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantTarget string
	}{
		{"middle dot", "임원·직원 견책", "임직원"},
		{"hangul dot", "임원ㆍ직원 견책", "임직원"},
		{"conjunction", "임원 및 직원 주의", "임직원"},
		{"short form", "임ㆍ직원 주의", "임직원"},
		{"plain combined", "임직원 감봉", "임직원"},
		{"officer only", "임원 문책경고", "임원"},
		{"staff only", "직원 정직 3월", "직원"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := "제재조치내용\n" + tt.line
			target, _ := ExtractSanction(body)
			if target != tt.wantTarget {
				t.Errorf("target = %q, want %q", target, tt.wantTarget)
			}
		})
	}
}

func TestExtractSanction_FirstMatchWins(t *testing.T) {
	body := "조치내용\n기관 과태료 1억원\n임원 문책경고"

	target, sanction := ExtractSanction(body)
	if target != "기관" || sanction != "과태료 1억원" {
		t.Errorf("got (%q, %q), want (기관, 과태료 1억원)", target, sanction)
	}
}

func TestExtractSanction_MarkedLine(t *testing.T) {
	body := "조치내용\n- 기관 : 기관경고"

	target, sanction := ExtractSanction(body)
	if target != "기관" || sanction != "기관경고" {
		t.Errorf("got (%q, %q), want (기관, 기관경고)", target, sanction)
	}
}

func TestExtractSanction_NotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no action section", "본문에 조치 절이 없습니다"},
		{"section without target", "조치내용\n해당사항 없음"},
		{"empty body", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, sanction := ExtractSanction(tt.body)
			if target != model.Placeholder || sanction != model.Placeholder {
				t.Errorf("got (%q, %q), want (-, -)", target, sanction)
			}
		})
	}
}
