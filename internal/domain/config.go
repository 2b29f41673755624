// Package domain defines core entities and value objects for shellsense.
//
// The domain layer is independent of infrastructure concerns and holds the
// data shapes shared by the resolution pipeline: risk tiers and verdicts,
// ambiguity assessments, clarification rounds, and configuration.
package domain

import "fmt"

// Config mirrors ~/.shellsense/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Resolution          ResolutionConfig  `yaml:"resolution"`
	Security            SecuritySettings  `yaml:"security"`
	Models              []ModelDefinition `yaml:"models"`
	Preferences         Preferences       `yaml:"preferences"`
}

// ResolutionConfig tunes the clarification loop.
type ResolutionConfig struct {
	ConfidenceThreshold    float64 `yaml:"confidence_threshold"`
	MaxClarificationRounds int     `yaml:"max_clarification_rounds"`
	ShellPreference        string  `yaml:"shell_preference"`
}

// SecuritySettings defines safety validator behavior.
type SecuritySettings struct {
	BlockHigh            bool          `yaml:"block_high"`
	CustomDangerPatterns []PatternSpec `yaml:"custom_danger_patterns"`
	Allowlist            []string      `yaml:"allowlist"`
}

// Preferences captures user level toggles.
type Preferences struct {
	DefaultModel string `yaml:"default_model"`
	ShowPOSIX    bool   `yaml:"show_posix"`
}

// ModelDefinition describes a generation backend endpoint.
type ModelDefinition struct {
	Name       string `yaml:"name"`
	Endpoint   string `yaml:"endpoint"`
	AuthEnvVar string `yaml:"auth_env_var"`
	ModelID    string `yaml:"model_id"`
	MaxTokens  int    `yaml:"max_tokens"`
}

// HydrateDefaults fills zero values with the documented defaults. It never
// repairs invalid values; Validate rejects those outright.
func (c Config) HydrateDefaults() Config {
	if c.Resolution.ConfidenceThreshold == 0 {
		c.Resolution.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	if c.Resolution.MaxClarificationRounds == 0 {
		c.Resolution.MaxClarificationRounds = DefaultMaxClarificationRounds
	}
	if c.Resolution.ShellPreference == "" {
		c.Resolution.ShellPreference = string(ShellBash)
	}
	for i := range c.Models {
		if c.Models[i].MaxTokens == 0 {
			c.Models[i].MaxTokens = DefaultMaxTokens
		}
	}
	return c
}

// Validate rejects malformed configuration. Violations are fatal at
// startup; the core never weakens its posture to keep running.
func (c Config) Validate() error {
	if c.Resolution.ConfidenceThreshold <= 0 || c.Resolution.ConfidenceThreshold > 1 {
		return NewConfigurationError("resolution.confidence_threshold",
			"must be in (0, 1], got %v", c.Resolution.ConfidenceThreshold)
	}
	if c.Resolution.MaxClarificationRounds <= 0 {
		return NewConfigurationError("resolution.max_clarification_rounds",
			"must be positive, got %d", c.Resolution.MaxClarificationRounds)
	}
	if !ValidShell(c.Resolution.ShellPreference) {
		return NewConfigurationError("resolution.shell_preference",
			"unknown shell %q", c.Resolution.ShellPreference)
	}
	for i, p := range c.Security.CustomDangerPatterns {
		if err := p.Check(); err != nil {
			return NewConfigurationError(
				fmt.Sprintf("security.custom_danger_patterns[%d]", i), "%v", err)
		}
	}
	return nil
}

// Check validates the declarative fields of a pattern spec. Rule
// compilation is the pattern library's concern; this catches everything
// else a config loader can see.
func (p PatternSpec) Check() error {
	if p.Name == "" {
		return fmt.Errorf("pattern name required")
	}
	switch p.Kind {
	case DetectSubstring, DetectRegex, DetectPredicate:
	default:
		return fmt.Errorf("pattern %s: unknown detector kind %q", p.Name, p.Kind)
	}
	if p.Rule == "" {
		return fmt.Errorf("pattern %s: rule required", p.Name)
	}
	if _, ok := ParseRiskTier(p.Tier); !ok {
		return fmt.Errorf("pattern %s: unknown tier %q", p.Name, p.Tier)
	}
	if p.Shell != "" && !ValidShell(p.Shell) {
		return fmt.Errorf("pattern %s: unknown shell %q", p.Name, p.Shell)
	}
	return nil
}

// FindModelByName searches for a model by its name.
func (c *Config) FindModelByName(name string) (ModelDefinition, bool) {
	for _, model := range c.Models {
		if model.Name == name {
			return model, true
		}
	}
	return ModelDefinition{}, false
}

// PickModel resolves the model to use, honoring an override first, then the
// configured default, then the first configured model.
func (c *Config) PickModel(override string) (ModelDefinition, error) {
	name := override
	if name == "" {
		name = c.Preferences.DefaultModel
	}
	if name == "" {
		if len(c.Models) > 0 {
			return c.Models[0], nil
		}
		return ModelDefinition{}, fmt.Errorf("no models configured")
	}
	if model, ok := c.FindModelByName(name); ok {
		return model, nil
	}
	return ModelDefinition{}, fmt.Errorf("model %s not configured", name)
}

// PreferredShell returns the configured shell preference.
func (c *Config) PreferredShell() Shell {
	return Shell(c.Resolution.ShellPreference)
}
