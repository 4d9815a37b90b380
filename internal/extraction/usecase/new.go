package usecase

import (
	"sync/atomic"
	"time"

	"inbox-triage/pkg/datemath"
	pkgLog "inbox-triage/pkg/log"
	"inbox-triage/pkg/openai"
)

type implUseCase struct {
	l         pkgLog.Logger
	llm       openai.IOpenAI // default AI client, nil when no key is configured
	openaiCfg openai.Config  // template for clients minted from per-request keys
	resolver  *datemath.Resolver
	now       func() time.Time

	running atomic.Bool // single-flight guard, one run at a time
}

// New creates a new extraction UseCase instance. llm may be nil when no
// API key is configured; the AI path then degrades to the heuristic
// extractor unless the request carries its own key. now is the clock
// used as "today" for due-date resolution (time.Now in production).
func New(
	l pkgLog.Logger,
	llm openai.IOpenAI,
	openaiCfg openai.Config,
	resolver *datemath.Resolver,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:         l,
		llm:       llm,
		openaiCfg: openaiCfg,
		resolver:  resolver,
		now:       now,
	}
}
