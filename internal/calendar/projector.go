package calendar

import (
	"fmt"
	"time"

	"inbox-triage/internal/model"
)

// maxTasksPerDay caps how many tasks a single cell carries.
const maxTasksPerDay = 12

// weeksPerMonth is the most work weeks a month can span.
const weeksPerMonth = 6

// Project buckets tasks onto a Monday-to-Friday grid for the given
// month. Tasks match a day by exact due-date string equality, so
// undated tasks never appear. today marks the current cell.
func Project(tasks []model.Task, year int, month time.Month, today time.Time) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	todayStr := today.Format("2006-01-02")

	// Walk back from the 1st to the Monday of its week.
	startDay := 1
	switch wd := first.Weekday(); {
	case wd == time.Sunday:
		startDay = -5
	case wd > time.Monday:
		startDay = 2 - int(wd)
	}

	weeks := make([][]Day, 0, weeksPerMonth)
	for week := 0; week < weeksPerMonth; week++ {
		var days []Day

		for dayOfWeek := 1; dayOfWeek <= 5; dayOfWeek++ {
			dayNum := startDay + week*7 + (dayOfWeek - 1)
			if dayNum < 1 || dayNum > daysInMonth {
				continue
			}

			dateStr := fmt.Sprintf("%04d-%02d-%02d", year, int(month), dayNum)
			days = append(days, Day{
				Date:    dateStr,
				DayNum:  dayNum,
				IsToday: dateStr == todayStr,
				Tasks:   tasksDueOn(tasks, dateStr),
			})
		}

		if len(days) == 0 {
			if week > 0 {
				break
			}
			continue
		}
		weeks = append(weeks, days)
	}

	return Month{
		Title: fmt.Sprintf("%s %d", month, year),
		Weeks: weeks,
	}
}

func tasksDueOn(tasks []model.Task, dateStr string) []model.Task {
	var due []model.Task
	for _, task := range tasks {
		if task.DueDate == dateStr {
			due = append(due, task)
			if len(due) == maxTasksPerDay {
				break
			}
		}
	}
	return due
}
