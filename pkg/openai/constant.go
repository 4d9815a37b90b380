package openai

import "time"

const (
	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "gpt-3.5-turbo"

	// DefaultTimeout bounds a single chat completion call
	DefaultTimeout = 60 * time.Second
)
