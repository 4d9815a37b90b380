package model

// Priority is the urgency bucket assigned to an extracted task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Severity returns the sort rank of a priority. Lower sorts first.
// Unknown values rank after Low so malformed AI output never floats
// to the top of the list.
func (p Priority) Severity() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Task is an actionable item extracted from a single email.
type Task struct {
	ID          string   // UUID assigned at extraction time
	Title       string   // Non-empty short description
	Description string   // May be empty
	DueDate     string   // "YYYY-MM-DD", empty when no deadline was inferred
	Priority    Priority // High, Medium or Low
	From        string   // Sender of the originating email
	Completed   bool     // Toggled by the caller, never by the pipeline
}
