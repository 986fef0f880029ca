package extract

import (
	"bytes"
	"strings"
	"testing"

	"github.com/koreg/sanctia/internal/model"
)

const sampleBody = `가나은행에 대한 제재 내용 공개
제재조치일: 2023. 5. 24.

4. 제재대상사실
가. 문책사항
(1) 직무 관련 정보의 이용 금지 위반
임직원이 직무상 취득한 정보를 이용하였음
(2) 내부통제기준 마련의무 위반
(가) 위험관리 조직 미비
(나) 점검 절차 누락

5. 조치내용
기관 업무정지 3개월

6. 관련법규
금융회사의 지배구조에 관한 법률
`

func TestExtractor_Process(t *testing.T) {
	e := NewExtractor(nil)

	doc := &model.Document{
		Agency: model.AgencyFSS,
		ID:     "fss-001",
		Title:  "가나은행에 대한 제재",
		Body:   sampleBody,
	}
	e.Process(doc)

	if doc.Institution != "가나은행" {
		t.Errorf("institution = %q, want 가나은행", doc.Institution)
	}
	if doc.SanctionDate != "2023-05-24" {
		t.Errorf("sanction date = %q, want 2023-05-24", doc.SanctionDate)
	}
	if doc.SanctionTarget != "기관" {
		t.Errorf("target = %q, want 기관", doc.SanctionTarget)
	}
	if doc.SanctionContent != "업무정지 3개월" {
		t.Errorf("content = %q, want 업무정지 3개월", doc.SanctionContent)
	}

	if len(doc.Incidents) != 2 {
		t.Fatalf("expected 2 incidents, got %d: %+v", len(doc.Incidents), doc.Incidents)
	}
	if doc.Incidents[0].Title != "직무 관련 정보의 이용 금지 위반" {
		t.Errorf("incident 0 title = %q", doc.Incidents[0].Title)
	}
	if doc.Incidents[1].Title != "내부통제기준 마련의무 위반" {
		t.Errorf("incident 1 title = %q", doc.Incidents[1].Title)
	}
	if !strings.Contains(doc.Incidents[1].Body, "(가) 위험관리 조직 미비") {
		t.Errorf("incident 1 body = %q", doc.Incidents[1].Body)
	}

	if len(doc.MissingFields) != 0 {
		t.Errorf("expected no missing fields, got %v", doc.MissingFields)
	}
}

func TestExtractor_EmptyBody(t *testing.T) {
	e := NewExtractor(nil)

	doc := &model.Document{Agency: model.AgencyBOK, ID: "bok-9"}
	e.Process(doc)

	if doc.SanctionTarget != model.Placeholder || doc.SanctionContent != model.Placeholder {
		t.Errorf("got (%q, %q), want placeholders", doc.SanctionTarget, doc.SanctionContent)
	}
	if len(doc.Incidents) != 0 {
		t.Errorf("expected no incidents, got %d", len(doc.Incidents))
	}

	want := []string{model.MissingSanctionContent, model.MissingIncidentTitle}
	if len(doc.MissingFields) != len(want) {
		t.Fatalf("missing fields = %v, want %v", doc.MissingFields, want)
	}
	for i, f := range want {
		if doc.MissingFields[i] != f {
			t.Errorf("missing field %d = %q, want %q", i, doc.MissingFields[i], f)
		}
	}
}

func TestExtractor_UnknownTemplate(t *testing.T) {
	e := NewExtractor(nil)

	doc := &model.Document{
		Agency: model.AgencyKRX,
		ID:     "krx-5",
		Body:   "알려진 양식을 따르지 않는 일반 공지입니다.",
	}
	e.Process(doc)

	if len(doc.Incidents) != 0 {
		t.Errorf("expected no incidents, got %+v", doc.Incidents)
	}
	if doc.SanctionTarget != model.Placeholder {
		t.Errorf("target = %q, want placeholder", doc.SanctionTarget)
	}
}

func TestExtractor_NormalizesOCRBody(t *testing.T) {
	e := NewExtractor(nil)

	doc := &model.Document{
		Agency:     model.AgencyFSS,
		ID:         "fss-ocr-1",
		Body:       "조 치 내 용\n기관 업무정지 3개월",
		OCRApplied: true,
	}
	e.Process(doc)

	if doc.SanctionTarget != "기관" {
		t.Errorf("target = %q, want 기관 (OCR-spaced heading should normalize)", doc.SanctionTarget)
	}
	if doc.SanctionContent != "업무정지 3개월" {
		t.Errorf("content = %q", doc.SanctionContent)
	}
}

func TestExtractor_OverrideApplied(t *testing.T) {
	e := NewExtractor(Overrides{
		"fss-known-bad": {Target: "임원", Sanction: "문책경고 상당"},
	})
	var log bytes.Buffer
	e.logW = &log

	doc := &model.Document{
		Agency: model.AgencyFSS,
		ID:     "fss-known-bad",
		Body:   "심하게 훼손된 OCR 본문",
	}
	e.Process(doc)

	if !doc.OverrideApplied {
		t.Error("expected OverrideApplied to be set")
	}
	if doc.SanctionTarget != "임원" || doc.SanctionContent != "문책경고 상당" {
		t.Errorf("got (%q, %q)", doc.SanctionTarget, doc.SanctionContent)
	}
	if !strings.Contains(log.String(), "fss-known-bad") {
		t.Errorf("override application must be logged, got %q", log.String())
	}

	// The override fills sanction content, so only the incident gap
	// remains.
	for _, f := range doc.MissingFields {
		if f == model.MissingSanctionContent {
			t.Errorf("sanction_content should not be missing after override: %v", doc.MissingFields)
		}
	}
}

func TestExtractor_SourceFieldsUntouched(t *testing.T) {
	e := NewExtractor(nil)

	doc := &model.Document{
		Agency:   model.AgencyKOFIA,
		ID:       "kofia-3",
		Title:    "제재공표",
		PostedAt: "2024-01-05",
		Body:     sampleBody,
	}
	e.Process(doc)

	if doc.Title != "제재공표" || doc.PostedAt != "2024-01-05" || doc.Body != sampleBody {
		t.Error("extraction must not mutate source fields")
	}
}
