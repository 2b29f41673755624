package services

import (
	"testing"

	"github.com/doeshing/shellsense/internal/domain"
)

func TestGenerateScopeQuestions(t *testing.T) {
	g := &QuestionGenerator{}
	assessment := domain.AmbiguityAssessment{
		Score:    0.6,
		Category: domain.AmbiguityScope,
		Hints:    map[string]string{},
	}

	got := g.Generate(assessment, "clean up disk space")

	if len(got) < 1 || len(got) > domain.MaxQuestionsPerRound {
		t.Fatalf("got %d questions, want 1..%d", len(got), domain.MaxQuestionsPerRound)
	}
	first := got[0]
	if len(first.Options) < 2 || len(first.Options) > 4 {
		t.Errorf("first question has %d options, want 2..4", len(first.Options))
	}
	for _, opt := range first.Options {
		if opt.Key == "" || opt.MapsTo == "" {
			t.Errorf("option %+v missing key or mapping", opt)
		}
	}
	// No platform hint was present, so a platform question follows.
	if len(got) < 2 || got[1].HintKind != domain.HintPlatform {
		t.Error("expected a platform question after the scope question")
	}
}

func TestGenerateSkipsPlatformWhenHinted(t *testing.T) {
	g := &QuestionGenerator{}
	assessment := domain.AmbiguityAssessment{
		Category: domain.AmbiguityScope,
		Hints:    map[string]string{domain.HintPlatform: "bash"},
	}

	for _, q := range g.Generate(assessment, "clean up disk space") {
		if q.HintKind == domain.HintPlatform {
			t.Error("platform question generated despite an existing hint")
		}
	}
}

func TestGenerateContextIsFreeform(t *testing.T) {
	g := &QuestionGenerator{}
	assessment := domain.AmbiguityAssessment{
		Category: domain.AmbiguityContext,
		Hints:    map[string]string{domain.HintPlatform: "bash"},
	}

	got := g.Generate(assessment, "run it")

	if len(got) != 1 {
		t.Fatalf("got %d questions, want 1", len(got))
	}
	if !got[0].AllowsFreeform {
		t.Error("context question must allow freeform answers")
	}
}

func TestGenerateAlwaysAsksSomething(t *testing.T) {
	g := &QuestionGenerator{}
	assessment := domain.AmbiguityAssessment{
		Category: domain.AmbiguityNone,
		Hints:    map[string]string{domain.HintPlatform: "bash"},
	}

	got := g.Generate(assessment, "do the thing")

	if len(got) == 0 {
		t.Fatal("generator returned no questions")
	}
	if !got[0].AllowsFreeform {
		t.Error("fallback question must allow freeform answers")
	}
}

func TestGenerateAssignsSequentialIDs(t *testing.T) {
	g := &QuestionGenerator{}
	assessment := domain.AmbiguityAssessment{
		Category: domain.AmbiguityScope,
		Hints:    map[string]string{},
	}

	got := g.Generate(assessment, "clean up disk space")

	for i, q := range got {
		want := "q" + string(rune('1'+i))
		if q.ID != want {
			t.Errorf("question %d id = %q, want %q", i, q.ID, want)
		}
	}
}
