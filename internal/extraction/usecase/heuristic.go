package usecase

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"inbox-triage/internal/model"
	"inbox-triage/pkg/datemath"
)

var (
	replyPrefixRe = regexp.MustCompile(`(?i)^(re:|fw:|fwd:)\s*`)
	sentenceEndRe = regexp.MustCompile(`[.!?]+`)
)

// extractHeuristic is the rule-based extractor. It returns no task
// unless the email's text contains at least one action keyword.
func (uc *implUseCase) extractHeuristic(email model.EmailRecord) (model.Task, bool) {
	text := strings.ToLower(email.Subject + " " + email.Body)

	if !requiresAction(text) {
		return model.Task{}, false
	}

	task := model.Task{
		ID:          uuid.NewString(),
		Title:       extractTitle(email.Subject, text),
		Description: buildDescription(email),
		Priority:    inferPriority(text),
		From:        email.From,
	}

	if due, ok := uc.resolver.Resolve(text, uc.now()); ok {
		task.DueDate = datemath.FormatDate(due)
	}

	return task, true
}

// requiresAction reports whether text contains any action keyword.
func requiresAction(text string) bool {
	for _, keyword := range actionKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// extractTitle prefers the cleaned subject, then the first actionable
// sentence of the text, then a fixed default.
func extractTitle(subject, text string) string {
	title := strings.TrimSpace(replyPrefixRe.ReplaceAllString(subject, ""))
	if n := len([]rune(title)); n > 0 && n < maxSubjectTitleLen {
		return capitalize(title)
	}

	for _, sentence := range sentenceEndRe.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if requiresAction(sentence) && len([]rune(sentence)) < maxSentenceTitleLen {
			return capitalize(sentence)
		}
	}

	return defaultTitle
}

// buildDescription uses the preview when present, otherwise the first
// 200 characters of the body.
func buildDescription(email model.EmailRecord) string {
	if email.BodyPreview != "" {
		return email.BodyPreview
	}

	body := []rune(email.Body)
	if len(body) > descriptionLimit {
		body = body[:descriptionLimit]
	}
	return string(body)
}

// inferPriority checks high keywords before low keywords, so an email
// that is both "urgent" and "fyi" still comes out High.
func inferPriority(text string) model.Priority {
	for _, keyword := range highPriorityKeywords {
		if strings.Contains(text, keyword) {
			return model.PriorityHigh
		}
	}
	for _, keyword := range lowPriorityKeywords {
		if strings.Contains(text, keyword) {
			return model.PriorityLow
		}
	}
	return model.PriorityMedium
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
