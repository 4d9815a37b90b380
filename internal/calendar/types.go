package calendar

import "inbox-triage/internal/model"

// Day is one work-week cell: the calendar date it covers and the tasks
// due on it.
type Day struct {
	Date    string       `json:"date"` // YYYY-MM-DD
	DayNum  int          `json:"day_num"`
	IsToday bool         `json:"is_today"`
	Tasks   []model.Task `json:"tasks"`
}

// Month is a projected work-week grid: Monday through Friday rows for
// a single month, days outside the month omitted.
type Month struct {
	Title string  `json:"title"` // e.g. "May 2024"
	Weeks [][]Day `json:"weeks"`
}
