package http

import (
	"fmt"

	"inbox-triage/internal/calendar"
	"inbox-triage/internal/extraction"
	"inbox-triage/internal/model"
)

// --- Request DTOs ---

type extractReq struct {
	Text   string `json:"text"`
	UseAI  bool   `json:"use_ai"`
	APIKey string `json:"api_key"`
}

func (r extractReq) validate() error { return nil }

func (r extractReq) toInput() extraction.ExtractInput {
	return extraction.ExtractInput{
		RawText: r.Text,
		UseAI:   r.UseAI,
		APIKey:  r.APIKey,
	}
}

// ---

type calendarReq struct {
	Tasks []taskPayload `json:"tasks"`
	Year  int           `json:"year"  binding:"omitempty,min=1"`
	Month int           `json:"month" binding:"omitempty,min=1,max=12"`
}

func (r calendarReq) validate() error { return nil }

func (r calendarReq) toTasks() []model.Task {
	tasks := make([]model.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = t.toModel()
	}
	return tasks
}

// --- Shared task DTO ---

type taskPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    string `json:"priority"`
	From        string `json:"from"`
	Completed   bool   `json:"completed"`
}

func newTaskPayload(task model.Task) taskPayload {
	return taskPayload{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    string(task.Priority),
		From:        task.From,
		Completed:   task.Completed,
	}
}

func (t taskPayload) toModel() model.Task {
	return model.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    model.Priority(t.Priority),
		From:        t.From,
		Completed:   t.Completed,
	}
}

// --- Response DTOs ---

type extractResp struct {
	Tasks   []taskPayload `json:"tasks"`
	Count   int           `json:"count"`
	Message string        `json:"message"`
	Mode    string        `json:"mode"`
}

func (h *handler) newExtractResp(out extraction.ExtractOutput) extractResp {
	tasks := make([]taskPayload, len(out.Tasks))
	for i, task := range out.Tasks {
		tasks[i] = newTaskPayload(task)
	}

	message := "No actionable tasks found"
	if len(tasks) > 0 {
		message = fmt.Sprintf("Found %d task(s)", len(tasks))
	}

	return extractResp{
		Tasks:   tasks,
		Count:   len(tasks),
		Message: message,
		Mode:    string(out.Mode),
	}
}

type dayResp struct {
	Date    string        `json:"date"`
	DayNum  int           `json:"day_num"`
	IsToday bool          `json:"is_today"`
	Tasks   []taskPayload `json:"tasks"`
}

type calendarResp struct {
	Title string      `json:"title"`
	Weeks [][]dayResp `json:"weeks"`
}

func newCalendarResp(m calendar.Month) calendarResp {
	weeks := make([][]dayResp, len(m.Weeks))
	for i, week := range m.Weeks {
		days := make([]dayResp, len(week))
		for j, day := range week {
			tasks := make([]taskPayload, len(day.Tasks))
			for k, task := range day.Tasks {
				tasks[k] = newTaskPayload(task)
			}
			days[j] = dayResp{
				Date:    day.Date,
				DayNum:  day.DayNum,
				IsToday: day.IsToday,
				Tasks:   tasks,
			}
		}
		weeks[i] = days
	}
	return calendarResp{Title: m.Title, Weeks: weeks}
}
