package extraction

import "inbox-triage/internal/model"

// Mode reports which extractor produced a run's tasks.
type Mode string

const (
	ModeAI        Mode = "ai"
	ModeHeuristic Mode = "heuristic"
)

// ExtractInput is the input for one extraction run.
type ExtractInput struct {
	RawText string // Pasted email text, one or more blocks
	UseAI   bool   // Route records through the AI extractor when a key is available
	APIKey  string // Optional per-request credential, overrides the configured key
}

// ExtractOutput is the result of one extraction run. Tasks come back
// ranked; the previous run's list is wholly replaced by the caller.
type ExtractOutput struct {
	Tasks      []model.Task
	EmailCount int  // How many email records the input segmented into
	Mode       Mode // Which extractor actually ran
}
