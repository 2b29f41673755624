package services

import (
	"fmt"

	"github.com/doeshing/shellsense/internal/domain"
)

// QuestionGenerator turns an ambiguity assessment into at most
// MaxQuestionsPerRound structured questions. Option keys are single
// keystrokes; every option maps to a concrete phrase the enhancer can
// merge back into the request.
type QuestionGenerator struct{}

// Generate builds the questions for one clarification round. The category
// question always comes first; a platform question is appended when the
// analyzer saw no platform hint. At least one question is always returned.
func (g *QuestionGenerator) Generate(assessment domain.AmbiguityAssessment, request string) []domain.ClarificationQuestion {
	var questions []domain.ClarificationQuestion

	if q, ok := categoryQuestion(assessment.Category); ok {
		questions = append(questions, q)
	}

	if assessment.Category != domain.AmbiguityPlatform && assessment.Hints[domain.HintPlatform] == "" {
		questions = append(questions, platformQuestion())
	}

	if len(questions) == 0 {
		questions = append(questions, fallbackQuestion(request))
	}
	if len(questions) > domain.MaxQuestionsPerRound {
		questions = questions[:domain.MaxQuestionsPerRound]
	}
	for i := range questions {
		questions[i].ID = fmt.Sprintf("q%d", i+1)
	}
	return questions
}

func categoryQuestion(category domain.AmbiguityCategory) (domain.ClarificationQuestion, bool) {
	switch category {
	case domain.AmbiguityScope:
		return domain.ClarificationQuestion{
			Prompt: "What exactly should be affected?",
			Options: []domain.QuestionOption{
				{Key: "a", Label: "temporary and cache files", MapsTo: "only temporary and cache files"},
				{Key: "b", Label: "old log files", MapsTo: "only log files older than 30 days"},
				{Key: "c", Label: "package manager caches", MapsTo: "only package manager caches"},
			},
			AllowsFreeform: true,
			HintKind:       domain.HintTarget,
		}, true
	case domain.AmbiguityAction:
		return domain.ClarificationQuestion{
			Prompt: "What do you want to do with the target?",
			Options: []domain.QuestionOption{
				{Key: "a", Label: "list or inspect it", MapsTo: "list the matching items without changing anything"},
				{Key: "b", Label: "move it elsewhere", MapsTo: "move the items to another location"},
				{Key: "c", Label: "delete it", MapsTo: "delete the items"},
			},
			AllowsFreeform: true,
			HintKind:       domain.HintTool,
		}, true
	case domain.AmbiguityContext:
		return domain.ClarificationQuestion{
			Prompt:         "Which file, directory, or project do you mean?",
			AllowsFreeform: true,
			HintKind:       domain.HintTarget,
		}, true
	case domain.AmbiguitySafety:
		return domain.ClarificationQuestion{
			Prompt: "This sounds destructive. What exactly should be removed?",
			Options: []domain.QuestionOption{
				{Key: "a", Label: "only files inside the current directory", MapsTo: "only files inside the current directory"},
				{Key: "b", Label: "generated build output only", MapsTo: "only generated build output"},
				{Key: "c", Label: "nothing, show me what would match first", MapsTo: "only list what would be removed, do not delete"},
			},
			AllowsFreeform: true,
			HintKind:       domain.HintTarget,
		}, true
	case domain.AmbiguityPlatform:
		return platformQuestion(), true
	default:
		return domain.ClarificationQuestion{}, false
	}
}

func platformQuestion() domain.ClarificationQuestion {
	return domain.ClarificationQuestion{
		Prompt: "Which environment is this for?",
		Options: []domain.QuestionOption{
			{Key: "a", Label: "Linux (bash)", MapsTo: "on Linux using bash"},
			{Key: "b", Label: "macOS (zsh)", MapsTo: "on macOS using zsh"},
			{Key: "c", Label: "Windows (PowerShell)", MapsTo: "on Windows using PowerShell"},
		},
		HintKind: domain.HintPlatform,
	}
}

// fallbackQuestion is the template used when analysis gave no usable
// category, including when the heuristics were unavailable.
func fallbackQuestion(request string) domain.ClarificationQuestion {
	return domain.ClarificationQuestion{
		Prompt:         fmt.Sprintf("Can you say more precisely what %q should do?", request),
		AllowsFreeform: true,
		HintKind:       domain.HintTarget,
	}
}
