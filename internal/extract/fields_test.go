package extract

import "testing"

func TestExtractInstitution(t *testing.T) {
	tests := []struct {
		name  string
		title string
		body  string
		want  string
	}{
		{
			name:  "bracketed title",
			title: "「가나은행」에 대한 검사결과",
			want:  "가나은행",
		},
		{
			name:  "sanction title",
			title: "가나자산운용에 대한 제재 공시",
			want:  "가나자산운용",
		},
		{
			name: "labeled body field",
			body: "제재대상기관 : 다라증권 서울지점",
			want: "다라증권",
		},
		{
			name: "institution name label",
			body: "기관명: 마바저축은행",
			want: "마바저축은행",
		},
		{
			name:  "title beats body",
			title: "「가나은행」 제재 안내",
			body:  "대상기관 : 다라증권",
			want:  "가나은행",
		},
		{
			name: "no match",
			body: "기관명 표기가 없는 문서",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractInstitution(tt.title, tt.body); got != tt.want {
				t.Errorf("ExtractInstitution = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractSanctionDate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "dotted date",
			body: "의결일 2023. 5. 24. 금융위원회",
			want: "2023-05-24",
		},
		{
			name: "korean date",
			body: "2023년 5월 6일 조치하였음",
			want: "2023-05-06",
		},
		{
			name: "labeled date beats earlier bare date",
			body: "접수일 2022. 1. 3. 제재조치일: 2023. 5. 24.",
			want: "2023-05-24",
		},
		{
			name: "ocr spaced date",
			body: "2021 . 11 . 2 . 의결",
			want: "2021-11-02",
		},
		{
			name: "no date",
			body: "날짜 없는 본문",
			want: "",
		},
		{
			name: "implausible month ignored",
			body: "사건번호 2023.77.1",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSanctionDate(tt.body); got != tt.want {
				t.Errorf("ExtractSanctionDate(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}
