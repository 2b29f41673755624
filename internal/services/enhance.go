package services

import (
	"strings"

	"github.com/doeshing/shellsense/internal/domain"
)

// Enhancer merges resolved clarification answers back into the request
// text. The result re-enters assessment as if the user had typed it.
type Enhancer struct{}

// Enhance resolves every answered question in the round and appends the
// resulting phrases to the original request. Questions are walked in
// order so the enhanced text is stable for a given round. An explicit
// answer always wins over whatever the analyzer inferred: the phrase is
// part of the request text from here on.
func (e *Enhancer) Enhance(round domain.ClarificationRound) domain.EnhancedRequest {
	var parts []string
	for _, q := range round.Questions {
		phrase, ok := round.Resolve(q.ID)
		if !ok || strings.TrimSpace(phrase) == "" {
			continue
		}
		parts = append(parts, strings.TrimSpace(phrase))
	}

	text := strings.TrimSpace(round.Original)
	if len(parts) > 0 {
		text = text + " (" + strings.Join(parts, "; ") + ")"
	}
	return domain.EnhancedRequest{Text: text, SourceRound: round.Number}
}
