package model

// EmailRecord is one segmented email from the pasted input.
// Records are created fresh per extraction run and never mutated.
type EmailRecord struct {
	Subject     string // "Email" when the block had no Subject: header
	From        string // "Unknown" when the block had no From: header
	Body        string // All body lines joined by single spaces
	BodyPreview string // First 3 non-empty body lines joined by single spaces
}
