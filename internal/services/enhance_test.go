package services

import (
	"testing"

	"github.com/doeshing/shellsense/internal/domain"
)

func scopeRound(answers map[string]domain.Answer) domain.ClarificationRound {
	return domain.ClarificationRound{
		Original: "clean up disk space",
		Questions: []domain.ClarificationQuestion{
			{
				ID:     "q1",
				Prompt: "What exactly should be affected?",
				Options: []domain.QuestionOption{
					{Key: "a", Label: "temporary and cache files", MapsTo: "only temporary and cache files"},
					{Key: "b", Label: "old log files", MapsTo: "only log files older than 30 days"},
				},
				AllowsFreeform: true,
				HintKind:       domain.HintTarget,
			},
			{
				ID:     "q2",
				Prompt: "Which environment is this for?",
				Options: []domain.QuestionOption{
					{Key: "a", Label: "Linux (bash)", MapsTo: "on Linux using bash"},
				},
				HintKind: domain.HintPlatform,
			},
		},
		Answers: answers,
		Number:  1,
	}
}

func TestEnhanceMergesOptionAnswers(t *testing.T) {
	e := &Enhancer{}
	round := scopeRound(map[string]domain.Answer{
		"q1": {OptionKey: "b"},
		"q2": {OptionKey: "a"},
	})

	got := e.Enhance(round)

	want := "clean up disk space (only log files older than 30 days; on Linux using bash)"
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
	if got.SourceRound != 1 {
		t.Errorf("SourceRound = %d, want 1", got.SourceRound)
	}
}

func TestEnhanceFreeformWinsVerbatim(t *testing.T) {
	e := &Enhancer{}
	round := scopeRound(map[string]domain.Answer{
		"q1": {Freeform: "only node_modules directories under ~/projects"},
	})

	got := e.Enhance(round)

	want := "clean up disk space (only node_modules directories under ~/projects)"
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
}

func TestEnhanceUnansweredQuestionsSkipped(t *testing.T) {
	e := &Enhancer{}
	round := scopeRound(map[string]domain.Answer{})

	got := e.Enhance(round)

	if got.Text != "clean up disk space" {
		t.Errorf("Text = %q, want the original unchanged", got.Text)
	}
}

func TestEnhanceUnknownOptionKeyIgnored(t *testing.T) {
	e := &Enhancer{}
	round := scopeRound(map[string]domain.Answer{
		"q1": {OptionKey: "z"},
	})

	got := e.Enhance(round)

	if got.Text != "clean up disk space" {
		t.Errorf("Text = %q, unknown keys must contribute nothing", got.Text)
	}
}
