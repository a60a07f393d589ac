package llm

import "strings"

// Mode decides whether a turn produces conversational text or a
// schema-shaped object.
type Mode string

const (
	ModeConversational Mode = "conversational"
	ModeStructured     Mode = "structured"
)

// Classifier infers the intended output shape from free text. It exists as
// an interface so the keyword heuristic can later be swapped for a real
// intent classifier without touching the selector's contract.
type Classifier interface {
	Classify(message string) Mode
}

// KeywordClassifier flags a message as structured when it contains the
// keyword anywhere, case-insensitive. This is intentionally coarse: ordinary
// uses of the word also trigger it.
type KeywordClassifier struct {
	Keyword string
}

func NewKeywordClassifier() KeywordClassifier {
	return KeywordClassifier{Keyword: "template"}
}

func (c KeywordClassifier) Classify(message string) Mode {
	if strings.Contains(strings.ToLower(message), strings.ToLower(c.Keyword)) {
		return ModeStructured
	}
	return ModeConversational
}

// Selector picks the mode and matching system prompt for a turn. The
// explicit flag is the primary signal; the classifier is a fallback hint.
type Selector struct {
	classifier           Classifier
	conversationalPrompt string
	templatePrompt       string
}

func NewSelector(classifier Classifier, conversationalPrompt, templatePrompt string) *Selector {
	return &Selector{
		classifier:           classifier,
		conversationalPrompt: conversationalPrompt,
		templatePrompt:       templatePrompt,
	}
}

func (s *Selector) Select(forceStructured bool, message string) (Mode, string) {
	if forceStructured || s.classifier.Classify(message) == ModeStructured {
		return ModeStructured, s.templatePrompt
	}
	return ModeConversational, s.conversationalPrompt
}
