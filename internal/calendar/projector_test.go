package calendar

import (
	"fmt"
	"testing"
	"time"

	"inbox-triage/internal/model"
)

func TestProjectGridShape(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantWeeks int
		firstWeek []int // day numbers of the first rendered week
	}{
		{
			// May 2024 starts on a Wednesday.
			name:      "mid-week month start",
			year:      2024,
			month:     time.May,
			wantWeeks: 5,
			firstWeek: []int{1, 2, 3},
		},
		{
			// September 2024 starts on a Sunday, so the first work week
			// begins on the 2nd.
			name:      "sunday month start",
			year:      2024,
			month:     time.September,
			wantWeeks: 5,
			firstWeek: []int{2, 3, 4, 5, 6},
		},
		{
			// June 2026 starts on a Monday.
			name:      "monday month start",
			year:      2026,
			month:     time.June,
			wantWeeks: 5,
			firstWeek: []int{1, 2, 3, 4, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			m := Project(nil, tt.year, tt.month, today)

			if len(m.Weeks) != tt.wantWeeks {
				t.Fatalf("weeks = %d, want %d", len(m.Weeks), tt.wantWeeks)
			}
			if len(m.Weeks[0]) != len(tt.firstWeek) {
				t.Fatalf("first week has %d days, want %d", len(m.Weeks[0]), len(tt.firstWeek))
			}
			for i, want := range tt.firstWeek {
				if m.Weeks[0][i].DayNum != want {
					t.Errorf("first week day %d = %d, want %d", i, m.Weeks[0][i].DayNum, want)
				}
			}
		})
	}
}

func TestProjectTitle(t *testing.T) {
	m := Project(nil, 2024, time.May, time.Now())
	if m.Title != "May 2024" {
		t.Errorf("title = %q, want %q", m.Title, "May 2024")
	}
}

func TestProjectBucketsByExactDate(t *testing.T) {
	tasks := []model.Task{
		{Title: "on the 3rd", DueDate: "2024-05-03", Priority: model.PriorityHigh},
		{Title: "on the 6th", DueDate: "2024-05-06", Priority: model.PriorityMedium},
		{Title: "undated", Priority: model.PriorityLow},
	}

	m := Project(tasks, 2024, time.May, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	var placed int
	for _, week := range m.Weeks {
		for _, day := range week {
			for _, task := range day.Tasks {
				placed++
				if task.DueDate != day.Date {
					t.Errorf("task %q placed on %s", task.Title, day.Date)
				}
			}
		}
	}
	if placed != 2 {
		t.Errorf("placed %d tasks, want 2 (undated tasks are never placed)", placed)
	}
}

func TestProjectMarksToday(t *testing.T) {
	today := time.Date(2024, 5, 15, 9, 30, 0, 0, time.UTC)
	m := Project(nil, 2024, time.May, today)

	var marked []string
	for _, week := range m.Weeks {
		for _, day := range week {
			if day.IsToday {
				marked = append(marked, day.Date)
			}
		}
	}
	if len(marked) != 1 || marked[0] != "2024-05-15" {
		t.Errorf("today marks = %v, want exactly [2024-05-15]", marked)
	}
}

func TestProjectCapsTasksPerDay(t *testing.T) {
	var tasks []model.Task
	for i := 0; i < 20; i++ {
		tasks = append(tasks, model.Task{
			Title:    fmt.Sprintf("task %d", i),
			DueDate:  "2024-05-03",
			Priority: model.PriorityMedium,
		})
	}

	m := Project(tasks, 2024, time.May, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	for _, week := range m.Weeks {
		for _, day := range week {
			if day.Date == "2024-05-03" {
				if len(day.Tasks) != maxTasksPerDay {
					t.Errorf("day tasks = %d, want cap of %d", len(day.Tasks), maxTasksPerDay)
				}
				return
			}
		}
	}
	t.Fatalf("2024-05-03 not found in grid")
}

func TestProjectWeekendTasksDropped(t *testing.T) {
	// 2024-05-04 is a Saturday, which never appears in the work-week grid.
	tasks := []model.Task{{Title: "weekend", DueDate: "2024-05-04", Priority: model.PriorityHigh}}

	m := Project(tasks, 2024, time.May, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	for _, week := range m.Weeks {
		for _, day := range week {
			if len(day.Tasks) != 0 {
				t.Errorf("unexpected tasks on %s", day.Date)
			}
		}
	}
}
