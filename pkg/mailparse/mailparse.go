package mailparse

import (
	"regexp"
	"strings"
)

// Email is one segmented email block from pasted raw text.
type Email struct {
	Subject     string
	From        string
	Body        string
	BodyPreview string
}

const (
	// DefaultSubject is used when a block carries no Subject: header
	// and no usable first line.
	DefaultSubject = "Email"

	// DefaultFrom is used when a block carries no From: header.
	DefaultFrom = "Unknown"

	// minBlockLength is the trimmed length below which a block is
	// treated as separator noise and dropped.
	minBlockLength = 10

	// previewLines is how many body lines make up the preview.
	previewLines = 3
)

var (
	// A dash separator needs blank lines on both sides; an equals
	// separator only needs to sit on its own line.
	separatorRe = regexp.MustCompile(`\n\s*\n-{3,}\s*\n\s*\n|\n\s*={3,}\s*\n`)

	subjectRe = regexp.MustCompile(`(?i)^subject:\s*`)
	fromRe    = regexp.MustCompile(`(?i)^from:\s*`)
	skipRe    = regexp.MustCompile(`(?i)^(to|date):`)
)

// Segment splits raw pasted text into discrete email records.
// Blocks shorter than 10 trimmed characters are dropped as noise.
func Segment(rawText string) []Email {
	var emails []Email

	for _, block := range separatorRe.Split(rawText, -1) {
		if len(strings.TrimSpace(block)) < minBlockLength {
			continue
		}

		lines := strings.Split(block, "\n")
		var subject, from string
		var body []string

		for _, line := range lines {
			trimmed := strings.TrimSpace(line)

			switch {
			case subjectRe.MatchString(trimmed):
				subject = subjectRe.ReplaceAllString(trimmed, "")
			case fromRe.MatchString(trimmed):
				from = fromRe.ReplaceAllString(trimmed, "")
			case skipRe.MatchString(trimmed):
				continue
			case trimmed != "":
				body = append(body, trimmed)
			}
		}

		// No headers and no body: treat the whole block as body and
		// promote its first line to the subject.
		if subject == "" && from == "" && len(body) == 0 {
			for _, line := range lines {
				if trimmed := strings.TrimSpace(line); trimmed != "" {
					body = append(body, trimmed)
				}
			}
			if len(body) > 0 {
				subject = body[0]
			}
		}

		if subject == "" {
			subject = DefaultSubject
		}
		if from == "" {
			from = DefaultFrom
		}

		preview := body
		if len(preview) > previewLines {
			preview = preview[:previewLines]
		}

		emails = append(emails, Email{
			Subject:     subject,
			From:        from,
			Body:        strings.Join(body, " "),
			BodyPreview: strings.Join(preview, " "),
		})
	}

	return emails
}
