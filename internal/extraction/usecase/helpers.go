package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"inbox-triage/internal/model"
	"inbox-triage/pkg/datemath"
	"inbox-triage/pkg/openai"
)

// aiSystemInstruction is the system message sent with every AI
// extraction request.
const aiSystemInstruction = "You are an AI that extracts actionable tasks from emails. Return JSON only."

// aiPromptTemplate embeds one email and pins the exact JSON schema the
// model must return.
const aiPromptTemplate = `Analyze this email and determine if it requires action.

Subject: %s
From: %s
Body: %s

Return JSON:
{
  "hasAction": true/false,
  "title": "Short task title",
  "description": "Brief description",
  "dueDate": "YYYY-MM-DD or null",
  "priority": "High/Medium/Low"
}

hasAction=true if email contains requests, questions, or action items.
Priority: High=urgent/ASAP, Medium=normal, Low=optional/FYI`

const (
	aiTemperature = 0.3
	aiMaxTokens   = 300
)

// aiTaskResult is the strict JSON object the model is asked to return.
type aiTaskResult struct {
	HasAction   bool    `json:"hasAction"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"`
	Priority    string  `json:"priority"`
}

// extractWithAI sends one email through the chat completion service.
// An error means the caller should fall back to the heuristic
// extractor for this record; ok == false with a nil error means the
// model judged the email non-actionable.
func (uc *implUseCase) extractWithAI(ctx context.Context, llm openai.IOpenAI, email model.EmailRecord) (model.Task, bool, error) {
	body := email.BodyPreview
	if body == "" {
		body = email.Body
	}

	resp, err := llm.GenerateContent(ctx, &openai.Request{
		Messages: []openai.Message{
			{Role: "system", Content: aiSystemInstruction},
			{Role: "user", Content: fmt.Sprintf(aiPromptTemplate, email.Subject, email.From, body)},
		},
		Temperature: aiTemperature,
		MaxTokens:   aiMaxTokens,
	})
	if err != nil {
		return model.Task{}, false, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return model.Task{}, false, fmt.Errorf("empty response from model")
	}

	cleaned := sanitizeJSONResponse(resp.Choices[0].Message.Content)

	var result aiTaskResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return model.Task{}, false, fmt.Errorf("failed to parse model JSON response: %w", err)
	}

	if !result.HasAction {
		return model.Task{}, false, nil
	}

	return uc.buildAITask(result, email), true, nil
}

// buildAITask converts a model result into a Task, degrading malformed
// fields instead of failing: a bad priority becomes Medium, a bad due
// date becomes absent, an empty title becomes the default.
func (uc *implUseCase) buildAITask(result aiTaskResult, email model.EmailRecord) model.Task {
	title := strings.TrimSpace(result.Title)
	if title == "" {
		title = defaultTitle
	}

	priority := model.Priority(result.Priority)
	if !priority.Valid() {
		priority = model.PriorityMedium
	}

	dueDate := ""
	if result.DueDate != nil {
		candidate := strings.TrimSpace(*result.DueDate)
		if _, err := time.Parse(datemath.DateFormatISO, candidate); err == nil {
			dueDate = candidate
		}
	}

	return model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: result.Description,
		DueDate:     dueDate,
		Priority:    priority,
		From:        email.From,
	}
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading or
// trailing prose that models often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
