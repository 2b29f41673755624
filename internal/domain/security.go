package domain

// RiskTier enumerates safety classification outcomes, ordered by severity.
type RiskTier string

const (
	TierSafe     RiskTier = "safe"
	TierModerate RiskTier = "moderate"
	TierHigh     RiskTier = "high"
	TierCritical RiskTier = "critical"
)

// tierOrder gives the escalation order used for max-tier aggregation.
var tierOrder = map[RiskTier]int{
	TierSafe:     0,
	TierModerate: 1,
	TierHigh:     2,
	TierCritical: 3,
}

// MoreSevere reports whether t outranks other.
func (t RiskTier) MoreSevere(other RiskTier) bool {
	return tierOrder[t] > tierOrder[other]
}

// Max returns the more severe of the two tiers.
func (t RiskTier) Max(other RiskTier) RiskTier {
	if other.MoreSevere(t) {
		return other
	}
	return t
}

// ParseRiskTier maps a config string to a tier. The boolean is false for
// unknown values; loaders must reject those rather than defaulting.
func ParseRiskTier(value string) (RiskTier, bool) {
	switch value {
	case "safe":
		return TierSafe, true
	case "moderate":
		return TierModerate, true
	case "high":
		return TierHigh, true
	case "critical":
		return TierCritical, true
	default:
		return TierSafe, false
	}
}

// Shell identifies the target shell for a command.
type Shell string

const (
	ShellAny        Shell = "all"
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellSh         Shell = "sh"
	ShellPowerShell Shell = "powershell"
	ShellCmd        Shell = "cmd"
)

// KnownShells lists every shell value accepted in configuration.
var KnownShells = []Shell{ShellAny, ShellBash, ShellZsh, ShellFish, ShellSh, ShellPowerShell, ShellCmd}

// ValidShell reports whether value names a supported shell.
func ValidShell(value string) bool {
	for _, s := range KnownShells {
		if string(s) == value {
			return true
		}
	}
	return false
}

// DetectorKind is the closed set of detector rule representations.
// Rules are data, never code, so they can be validated at load time.
type DetectorKind string

const (
	DetectSubstring DetectorKind = "substring"
	DetectRegex     DetectorKind = "regex"
	DetectPredicate DetectorKind = "predicate"
)

// PatternSpec declares a danger pattern. Built-in patterns and
// user-supplied custom_danger_patterns entries share this shape.
type PatternSpec struct {
	Name      string       `yaml:"name"`
	Kind      DetectorKind `yaml:"kind"`
	Rule      string       `yaml:"rule"`
	Tier      string       `yaml:"tier"`
	Shell     string       `yaml:"shell,omitempty"`
	Rationale string       `yaml:"rationale"`
}

// PatternMatch records one pattern that matched during validation.
type PatternMatch struct {
	Name      string
	Tier      RiskTier
	Rationale string
}

// SafetyVerdict is the immutable result of validating one command.
type SafetyVerdict struct {
	Allowed         bool
	Tier            RiskTier
	MatchedPatterns []PatternMatch
	ShouldConfirm   bool
	Alternatives    []string
}

// Blocked reports whether the verdict forbids handing the command over
// even with confirmation.
func (v SafetyVerdict) Blocked() bool {
	return !v.Allowed
}

// Rationales collects the human-readable reason for every matched pattern,
// in match order.
func (v SafetyVerdict) Rationales() []string {
	out := make([]string, 0, len(v.MatchedPatterns))
	for _, m := range v.MatchedPatterns {
		out = append(out, m.Rationale)
	}
	return out
}
