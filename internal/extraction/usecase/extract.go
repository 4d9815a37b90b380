package usecase

import (
	"context"
	"strings"

	"inbox-triage/internal/extraction"
	"inbox-triage/internal/model"
	"inbox-triage/pkg/mailparse"
	"inbox-triage/pkg/openai"
)

// Extract runs the full pipeline: segment, extract per record, rank.
func (uc *implUseCase) Extract(ctx context.Context, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return extraction.ExtractOutput{}, extraction.ErrEmptyInput
	}

	if !uc.running.CompareAndSwap(false, true) {
		return extraction.ExtractOutput{}, extraction.ErrExtractionInFlight
	}
	defer uc.running.Store(false)

	records := uc.segment(input.RawText)
	uc.l.Infof(ctx, "Extract: segmented %d email record(s) from %d bytes", len(records), len(input.RawText))

	llm := uc.clientFor(input)
	mode := extraction.ModeHeuristic
	if llm != nil {
		mode = extraction.ModeAI
	}

	// Records are processed strictly one at a time, in document order,
	// so a failure on one never affects whether the next is attempted.
	tasks := make([]model.Task, 0, len(records))
	for _, record := range records {
		task, ok := uc.extractOne(ctx, llm, record)
		if ok {
			tasks = append(tasks, task)
		}
	}

	uc.l.Infof(ctx, "Extract: %d task(s) from %d email(s), mode=%s", len(tasks), len(records), mode)

	return extraction.ExtractOutput{
		Tasks:      RankTasks(tasks),
		EmailCount: len(records),
		Mode:       mode,
	}, nil
}

// segment converts pasted text into immutable email records.
func (uc *implUseCase) segment(rawText string) []model.EmailRecord {
	parsed := mailparse.Segment(rawText)

	records := make([]model.EmailRecord, 0, len(parsed))
	for _, p := range parsed {
		records = append(records, model.EmailRecord{
			Subject:     p.Subject,
			From:        p.From,
			Body:        p.Body,
			BodyPreview: p.BodyPreview,
		})
	}
	return records
}

// extractOne routes a single record through the AI extractor when one
// is available, falling back to the heuristic extractor on any AI
// failure. The failure is isolated to this record.
func (uc *implUseCase) extractOne(ctx context.Context, llm openai.IOpenAI, record model.EmailRecord) (model.Task, bool) {
	if llm == nil {
		return uc.extractHeuristic(record)
	}

	task, ok, err := uc.extractWithAI(ctx, llm, record)
	if err != nil {
		uc.l.Warnf(ctx, "Extract: AI extraction failed for %q, using heuristic fallback: %v", record.Subject, err)
		return uc.extractHeuristic(record)
	}
	return task, ok
}

// clientFor picks the AI client for this run: a transient client from
// the request's own key, the configured default, or nil (heuristic mode).
func (uc *implUseCase) clientFor(input extraction.ExtractInput) openai.IOpenAI {
	if !input.UseAI {
		return nil
	}

	if input.APIKey != "" {
		cfg := uc.openaiCfg
		cfg.APIKey = input.APIKey
		client, err := openai.New(cfg)
		if err == nil {
			return client
		}
	}

	return uc.llm
}
