package worker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/koreg/sanctia/internal/model"
)

// fakeProcessor counts calls and fails for notices whose ID starts with
// "bad".
type fakeProcessor struct {
	calls int32
}

func (f *fakeProcessor) ProcessNotice(ctx context.Context, n model.Notice) (*model.Document, error) {
	atomic.AddInt32(&f.calls, 1)
	if len(n.ID) >= 3 && n.ID[:3] == "bad" {
		return nil, errors.New("download failed")
	}
	return &model.Document{Agency: n.Agency, ID: n.ID, Title: n.Title}, nil
}

func makeNotices(n int) []model.Notice {
	notices := make([]model.Notice, n)
	for i := range notices {
		notices[i] = model.Notice{
			Agency: model.AgencyFSS,
			ID:     fmt.Sprintf("fss-%03d", i),
			Title:  fmt.Sprintf("제재내용공개 %d", i),
		}
	}
	return notices
}

func TestBatchProcessor_AllSucceed(t *testing.T) {
	proc := &fakeProcessor{}
	b := NewBatchProcessor(proc, 3)

	results := b.ProcessNotices(context.Background(), makeNotices(10))

	if len(results) != 10 {
		t.Fatalf("expected 10 results, got %d", len(results))
	}
	for _, r := range results {
		if r.GetError() != nil {
			t.Errorf("unexpected error for %s: %v", r.Notice.ID, r.Err)
		}
		if r.Doc == nil || r.Doc.ID != r.Notice.ID {
			t.Errorf("result document mismatch for %s", r.Notice.ID)
		}
	}
	if got := atomic.LoadInt32(&proc.calls); got != 10 {
		t.Errorf("expected 10 calls, got %d", got)
	}
}

func TestBatchProcessor_FailuresDoNotHaltBatch(t *testing.T) {
	proc := &fakeProcessor{}
	b := NewBatchProcessor(proc, 2)

	notices := makeNotices(4)
	notices = append(notices, model.Notice{Agency: model.AgencyBOK, ID: "bad-1"})

	results := b.ProcessNotices(context.Background(), notices)

	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	var failed, succeeded int
	for _, r := range results {
		if r.GetError() != nil {
			failed++
		} else {
			succeeded++
		}
	}
	if failed != 1 || succeeded != 4 {
		t.Errorf("failed=%d succeeded=%d, want 1/4", failed, succeeded)
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	b := NewBatchProcessor(&fakeProcessor{}, 2)

	results := b.ProcessNotices(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
