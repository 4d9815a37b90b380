package usecase

// actionKeywords mark an email as requesting action. Presence of any
// one of them (substring match on lower-cased subject+body) is the
// gate for producing a task at all.
var actionKeywords = []string{
	"please", "can you", "could you", "would you", "need you to",
	"request", "review", "send", "provide", "submit", "complete",
	"schedule", "confirm", "approve", "check", "update", "prepare",
	"respond", "reply", "let me know", "get back", "asap", "urgent",
	"action required", "to do", "task", "deadline",
}

// highPriorityKeywords outrank lowPriorityKeywords when both match.
var highPriorityKeywords = []string{
	"urgent", "asap", "immediately", "critical", "important",
	"high priority", "emergency", "deadline",
}

var lowPriorityKeywords = []string{
	"when you can", "no rush", "low priority", "fyi", "optional",
}

const (
	// defaultTitle is used when neither the subject nor any sentence
	// of the body yields a usable title.
	defaultTitle = "Review email"

	// maxSubjectTitleLen is the exclusive upper bound for using the
	// cleaned subject as the task title.
	maxSubjectTitleLen = 100

	// maxSentenceTitleLen is the exclusive upper bound for promoting
	// a body sentence to the task title.
	maxSentenceTitleLen = 150

	// descriptionLimit caps the body excerpt used as the description
	// when there is no preview.
	descriptionLimit = 200
)
