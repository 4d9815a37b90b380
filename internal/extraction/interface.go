package extraction

import "context"

// UseCase defines the business logic interface for the extraction domain.
type UseCase interface {
	// Extract segments raw pasted text into email records, extracts an
	// actionable task from each (AI or heuristic), and returns them ranked.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)
}
