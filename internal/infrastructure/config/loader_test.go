package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/doeshing/shellsense/internal/domain"
)

func TestLoadSeedsDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Resolution.ConfidenceThreshold != domain.DefaultConfidenceThreshold {
		t.Errorf("threshold = %v, want %v", cfg.Resolution.ConfidenceThreshold, domain.DefaultConfidenceThreshold)
	}
	if cfg.Resolution.MaxClarificationRounds != domain.DefaultMaxClarificationRounds {
		t.Errorf("rounds = %d, want %d", cfg.Resolution.MaxClarificationRounds, domain.DefaultMaxClarificationRounds)
	}
	if cfg.Security.BlockHigh {
		t.Error("block_high should default to false")
	}
	if len(cfg.Models) == 0 {
		t.Fatal("default config carries no models")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config was not written: %v", err)
	}
}

func TestLoadRejectsInvalidThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "resolution:\n  confidence_threshold: 1.5\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileLoader(path).Load(context.Background())
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !domain.IsConfigurationError(err) {
		t.Errorf("err = %v, want ConfigurationError", err)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("models: [unbalanced"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileLoader(path).Load(context.Background())
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !domain.IsConfigurationError(err) {
		t.Errorf("err = %v, want ConfigurationError", err)
	}
}

func TestLoadRejectsMalformedCustomPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `security:
  custom_danger_patterns:
    - name: broken
      kind: laser
      rule: x
      tier: high
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileLoader(path).Load(context.Background())
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !domain.IsConfigurationError(err) {
		t.Errorf("err = %v, want ConfigurationError", err)
	}
}

func TestLoadPreservesExplicitValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `resolution:
  confidence_threshold: 0.9
  max_clarification_rounds: 1
  shell_preference: zsh
security:
  block_high: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Resolution.ConfidenceThreshold != 0.9 {
		t.Errorf("threshold = %v, want 0.9", cfg.Resolution.ConfidenceThreshold)
	}
	if cfg.PreferredShell() != domain.ShellZsh {
		t.Errorf("shell = %v, want zsh", cfg.PreferredShell())
	}
	if !cfg.Security.BlockHigh {
		t.Error("block_high = false, want true")
	}
}
