package extract

import "testing"

func TestLocate_FactsSection(t *testing.T) {
	text := "1. 조치대상자\n주식회사 가나은행\n\n4. 제재대상사실\n가. 위험관리기준 위반\n세부내용\n\n5. 조치이유\n관련법규 위반"

	span := Locate(text, FactsHeadings, BoundaryHeadings)
	if span.IsZero() {
		t.Fatalf("expected facts section to be located")
	}

	got := span.Extract(text)
	want := "\n가. 위험관리기준 위반\n세부내용\n\n"
	if got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

func TestLocate_OCRSpacedHeading(t *testing.T) {
	text := "4. 제 재 대 상 사 실\n가. 내부통제기준 위반\n\n조 치 내 용\n기관 과태료"

	span := Locate(text, FactsHeadings, BoundaryHeadings)
	if span.IsZero() {
		t.Fatalf("expected spaced heading to be located")
	}
	got := span.Extract(text)
	want := "\n가. 내부통제기준 위반\n\n"
	if got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

func TestLocate_NoHeading(t *testing.T) {
	text := "이 문서는 알려진 양식을 따르지 않습니다.\n본문만 있습니다."

	span := Locate(text, FactsHeadings, BoundaryHeadings)
	if !span.IsZero() {
		t.Errorf("expected zero span, got %+v", span)
	}
	if got := span.Extract(text); got != "" {
		t.Errorf("expected empty extract, got %q", got)
	}
}

func TestLocate_NoBoundaryRunsToEnd(t *testing.T) {
	text := "제재대상사실\n가. 유일한 사실\n세부내용"

	span := Locate(text, FactsHeadings, BoundaryHeadings)
	if span.IsZero() {
		t.Fatalf("expected section to be located")
	}
	got := span.Extract(text)
	want := "\n가. 유일한 사실\n세부내용"
	if got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

func TestLocate_PatternPriority(t *testing.T) {
	// "제재대상사실" is tried before "지적사항" regardless of document
	// order: first matching pattern wins, not the earliest occurrence.
	text := "지적사항\n먼저 나온 절\n제재대상사실\n나중 절"

	span := Locate(text, FactsHeadings, BoundaryHeadings)
	got := span.Extract(text)
	want := "\n나중 절"
	if got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

func TestLocate_EmptyText(t *testing.T) {
	if span := Locate("", FactsHeadings, BoundaryHeadings); !span.IsZero() {
		t.Errorf("expected zero span for empty text, got %+v", span)
	}
}
