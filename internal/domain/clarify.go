package domain

// QuestionOption is one selectable answer to a clarification question.
// Key is the single keystroke the user types; MapsTo is the phrase merged
// into the enhanced request when this option is chosen.
type QuestionOption struct {
	Key    string
	Label  string
	MapsTo string
}

// ClarificationQuestion is a single structured question. Options holds 2-4
// entries unless the question is freeform-only.
type ClarificationQuestion struct {
	ID             string
	Prompt         string
	Options        []QuestionOption
	AllowsFreeform bool
	HintKind       string
}

// Option returns the option matching key, if any.
func (q ClarificationQuestion) Option(key string) (QuestionOption, bool) {
	for _, opt := range q.Options {
		if opt.Key == key {
			return opt, true
		}
	}
	return QuestionOption{}, false
}

// Answer is the user's response to one question: either a selected option
// key or freeform text.
type Answer struct {
	OptionKey string
	Freeform  string
}

// ClarificationRound captures one ask/answer cycle. Rounds are transient:
// the orchestrator discards them once it proceeds or hits the round cap.
type ClarificationRound struct {
	Original  string
	Questions []ClarificationQuestion
	Answers   map[string]Answer
	Number    int
}

// Resolve maps a question id to the phrase its answer contributes. Option
// answers resolve through MapsTo; freeform answers are used verbatim.
func (r ClarificationRound) Resolve(id string) (string, bool) {
	answer, ok := r.Answers[id]
	if !ok {
		return "", false
	}
	if answer.Freeform != "" {
		return answer.Freeform, true
	}
	for _, q := range r.Questions {
		if q.ID != id {
			continue
		}
		if opt, ok := q.Option(answer.OptionKey); ok {
			return opt.MapsTo, true
		}
	}
	return "", false
}

// EnhancedRequest is the original request augmented with resolved answers,
// ready for re-entry into assessment and generation.
type EnhancedRequest struct {
	Text        string
	SourceRound int
}
