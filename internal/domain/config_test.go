package domain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHydrateDefaultsFillsZeroValues(t *testing.T) {
	cfg := Config{}.HydrateDefaults()

	want := ResolutionConfig{
		ConfidenceThreshold:    DefaultConfidenceThreshold,
		MaxClarificationRounds: DefaultMaxClarificationRounds,
		ShellPreference:        "bash",
	}
	if diff := cmp.Diff(want, cfg.Resolution); diff != "" {
		t.Errorf("HydrateDefaults() resolution mismatch (-want +got):\n%s", diff)
	}
}

func TestHydrateDefaultsPreservesExplicitValues(t *testing.T) {
	cfg := Config{
		Resolution: ResolutionConfig{
			ConfidenceThreshold:    0.9,
			MaxClarificationRounds: 1,
			ShellPreference:        "zsh",
		},
	}.HydrateDefaults()

	if cfg.Resolution.ConfidenceThreshold != 0.9 {
		t.Errorf("threshold overwritten: %v", cfg.Resolution.ConfidenceThreshold)
	}
	if cfg.Resolution.MaxClarificationRounds != 1 {
		t.Errorf("round cap overwritten: %d", cfg.Resolution.MaxClarificationRounds)
	}
	if cfg.Resolution.ShellPreference != "zsh" {
		t.Errorf("shell preference overwritten: %s", cfg.Resolution.ShellPreference)
	}
}

func TestValidateRejectsBadThreshold(t *testing.T) {
	for _, threshold := range []float64{-0.1, 1.5} {
		cfg := Config{}.HydrateDefaults()
		cfg.Resolution.ConfidenceThreshold = threshold
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("Validate() accepted threshold %v", threshold)
		}
		if !IsConfigurationError(err) {
			t.Errorf("expected ConfigurationError, got %T", err)
		}
	}
}

func TestValidateRejectsNonPositiveRounds(t *testing.T) {
	cfg := Config{}.HydrateDefaults()
	cfg.Resolution.MaxClarificationRounds = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() accepted negative round cap")
	}
}

func TestValidateRejectsUnknownShell(t *testing.T) {
	cfg := Config{}.HydrateDefaults()
	cfg.Resolution.ShellPreference = "tcsh"
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() accepted unknown shell")
	}
}

func TestValidateRejectsMalformedCustomPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern PatternSpec
		wantErr string
	}{
		{
			name:    "missing name",
			pattern: PatternSpec{Kind: DetectSubstring, Rule: "x", Tier: "high"},
			wantErr: "name required",
		},
		{
			name:    "unknown kind",
			pattern: PatternSpec{Name: "p", Kind: "script", Rule: "x", Tier: "high"},
			wantErr: "unknown detector kind",
		},
		{
			name:    "empty rule",
			pattern: PatternSpec{Name: "p", Kind: DetectRegex, Tier: "high"},
			wantErr: "rule required",
		},
		{
			name:    "unknown tier",
			pattern: PatternSpec{Name: "p", Kind: DetectRegex, Rule: "x", Tier: "severe"},
			wantErr: "unknown tier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{}.HydrateDefaults()
			cfg.Security.CustomDangerPatterns = []PatternSpec{tt.pattern}
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() accepted malformed pattern")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestPickModel(t *testing.T) {
	cfg := Config{
		Preferences: Preferences{DefaultModel: "primary"},
		Models: []ModelDefinition{
			{Name: "primary", ModelID: "model-a"},
			{Name: "secondary", ModelID: "model-b"},
		},
	}

	model, err := cfg.PickModel("")
	if err != nil {
		t.Fatalf("PickModel() error = %v", err)
	}
	if model.ModelID != "model-a" {
		t.Errorf("default pick = %s, want model-a", model.ModelID)
	}

	model, err = cfg.PickModel("secondary")
	if err != nil {
		t.Fatalf("PickModel(override) error = %v", err)
	}
	if model.ModelID != "model-b" {
		t.Errorf("override pick = %s, want model-b", model.ModelID)
	}

	if _, err := cfg.PickModel("missing"); err == nil {
		t.Error("PickModel() accepted unknown model name")
	}
}

func TestRiskTierOrdering(t *testing.T) {
	if !TierCritical.MoreSevere(TierHigh) {
		t.Error("critical should outrank high")
	}
	if TierSafe.MoreSevere(TierModerate) {
		t.Error("safe should not outrank moderate")
	}
	if got := TierModerate.Max(TierCritical); got != TierCritical {
		t.Errorf("Max = %s, want critical", got)
	}
}
