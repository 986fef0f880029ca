package worker

import (
	"context"

	"github.com/koreg/sanctia/internal/model"
)

// NoticeProcessor turns one scraped notice into a finished document:
// download attachments, extract text, run the extraction pipeline. The
// crawl pipeline implements this.
type NoticeProcessor interface {
	ProcessNotice(ctx context.Context, notice model.Notice) (*model.Document, error)
}

// NoticeJob is one notice submitted to the pool.
type NoticeJob struct {
	Notice    model.Notice
	Processor NoticeProcessor
}

// Execute runs the job.
func (j *NoticeJob) Execute(ctx context.Context) Result {
	doc, err := j.Processor.ProcessNotice(ctx, j.Notice)
	return &NoticeResult{
		Notice: j.Notice,
		Doc:    doc,
		Err:    err,
	}
}

// NoticeResult is the outcome of processing one notice. A non-nil Err is
// recorded per notice and never halts the batch.
type NoticeResult struct {
	Notice model.Notice
	Doc    *model.Document
	Err    error
}

// GetError returns the error from the notice result.
func (r *NoticeResult) GetError() error {
	return r.Err
}

// BatchProcessor processes multiple notices concurrently. Extraction is
// stateless across documents, so notices parallelize trivially.
type BatchProcessor struct {
	processor   NoticeProcessor
	concurrency int
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(processor NoticeProcessor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
	}
}

// ProcessNotices runs all notices through the pool and returns one result
// per notice, in completion order.
func (b *BatchProcessor) ProcessNotices(ctx context.Context, notices []model.Notice) []*NoticeResult {
	if len(notices) == 0 {
		return []*NoticeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, n := range notices {
		pool.Submit(&NoticeJob{Notice: n, Processor: b.processor})
	}

	results := pool.Wait()

	noticeResults := make([]*NoticeResult, len(results))
	for i, result := range results {
		noticeResults[i] = result.(*NoticeResult)
	}

	return noticeResults
}
