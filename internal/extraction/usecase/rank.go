package usecase

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"inbox-triage/internal/model"
)

// RankTasks orders tasks for display: priority severity first, then
// due date ascending with dated tasks before undated ones, then
// locale-aware title comparison. The input slice is not mutated; the
// sort is stable so equal tasks keep their relative order.
func RankTasks(tasks []model.Task) []model.Task {
	ranked := make([]model.Task, len(tasks))
	copy(ranked, tasks)

	// A collator is not safe for concurrent use, so build one per call.
	collator := collate.New(language.English)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		if a.Priority.Severity() != b.Priority.Severity() {
			return a.Priority.Severity() < b.Priority.Severity()
		}

		// ISO dates compare chronologically as strings.
		switch {
		case a.DueDate != "" && b.DueDate != "":
			if a.DueDate != b.DueDate {
				return a.DueDate < b.DueDate
			}
		case a.DueDate != "":
			return true
		case b.DueDate != "":
			return false
		}

		return collator.CompareString(a.Title, b.Title) < 0
	})

	return ranked
}
