package security

import (
	"fmt"
	"strings"

	"github.com/doeshing/shellsense/internal/domain"
	"github.com/doeshing/shellsense/internal/ports"
)

// Library validates generated commands against the compiled pattern
// table. Validation is pure string analysis: nothing is ever executed,
// and the same command with the same shell always yields the same
// verdict.
type Library struct {
	patterns  []compiledPattern
	allow     []string
	blockHigh bool
}

// Options configures a Library beyond the built-in table.
type Options struct {
	// Custom patterns are appended after the builtins and evaluated in
	// declaration order.
	Custom []domain.PatternSpec
	// Allowlist prefixes short-circuit validation to Safe for plain
	// invocations of trusted commands.
	Allowlist []string
	// BlockHigh blocks High tier commands outright instead of requiring
	// typed confirmation.
	BlockHigh bool
}

// NewLibrary compiles the built-in table plus any custom patterns. A
// malformed custom pattern returns a ConfigurationError; the caller must
// treat that as fatal rather than proceeding with a reduced table.
func NewLibrary(opts Options) (*Library, error) {
	builtins := BuiltinPatterns()
	compiled := make([]compiledPattern, 0, len(builtins)+len(opts.Custom))
	for _, spec := range builtins {
		cp, err := compile(spec)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, cp)
	}
	for i, spec := range opts.Custom {
		cp, err := compile(spec)
		if err != nil {
			return nil, domain.NewConfigurationError(
				fmt.Sprintf("security.custom_danger_patterns[%d]", i), "%v", err)
		}
		compiled = append(compiled, cp)
	}

	allow := make([]string, 0, len(opts.Allowlist))
	for _, entry := range opts.Allowlist {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			allow = append(allow, entry)
		}
	}

	return &Library{patterns: compiled, allow: allow, blockHigh: opts.BlockHigh}, nil
}

// Specs returns the full pattern table in evaluation order.
func (l *Library) Specs() []domain.PatternSpec {
	specs := make([]domain.PatternSpec, len(l.patterns))
	for i, p := range l.patterns {
		specs[i] = p.spec
	}
	return specs
}

// Validate classifies command for the given shell. Quoted regions are
// masked before pattern matching so that a dangerous string inside
// balanced quotes is treated as data, not as a command. Aggregation is
// maximum severity across all matches.
func (l *Library) Validate(command string, shell domain.Shell) domain.SafetyVerdict {
	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		return domain.SafetyVerdict{Allowed: true, Tier: domain.TierSafe}
	}

	masked := maskQuoted(trimmed)

	if l.allowlisted(trimmed, masked) {
		return domain.SafetyVerdict{Allowed: true, Tier: domain.TierSafe}
	}

	tier := domain.TierSafe
	var matches []domain.PatternMatch
	for _, p := range l.patterns {
		if !p.appliesTo(shell) {
			continue
		}
		if !p.detect(masked) {
			continue
		}
		matches = append(matches, domain.PatternMatch{
			Name:      p.spec.Name,
			Tier:      p.tier,
			Rationale: p.spec.Rationale,
		})
		tier = tier.Max(p.tier)
	}

	blocked := tier == domain.TierCritical || (tier == domain.TierHigh && l.blockHigh)
	verdict := domain.SafetyVerdict{
		Allowed:         !blocked,
		Tier:            tier,
		MatchedPatterns: matches,
		ShouldConfirm:   tier == domain.TierHigh || tier == domain.TierCritical,
	}
	if tier != domain.TierSafe {
		verdict.Alternatives = suggestAlternatives(trimmed, matches)
	}
	return verdict
}

// allowlisted reports whether trimmed is a plain invocation of an
// allowlisted command. Prefix matches only count when the masked form
// carries no shell metacharacters, so "cat x | sh" never rides an
// allowlist entry for cat.
func (l *Library) allowlisted(trimmed, masked string) bool {
	for _, entry := range l.allow {
		if trimmed == entry {
			return true
		}
		if strings.HasPrefix(trimmed, entry+" ") && !strings.ContainsAny(masked, "|;&><`$\n") {
			return true
		}
	}
	return false
}

// suggestAlternatives proposes safer forms of a flagged command. Hints
// are keyed on the leading tool; pattern rationales already explain the
// risk, so suggestions stay short.
func suggestAlternatives(command string, matches []domain.PatternMatch) []string {
	var out []string
	switch {
	case strings.HasPrefix(command, "rm ") || strings.Contains(command, " rm "):
		out = append(out,
			"add -i to confirm each deletion interactively",
			"run ls on the target first to review what would be removed",
			"move files to a trash directory instead of deleting them")
	case strings.HasPrefix(command, "dd "):
		out = append(out,
			"run lsblk first to confirm the target device",
			"add status=progress to watch what dd writes")
	case strings.Contains(command, "chmod 777"):
		out = append(out, "use 755 for directories and 644 for files instead of world-writable")
	case strings.Contains(command, "| sh") || strings.Contains(command, "| bash"):
		out = append(out,
			"download the script to a file and review it before running",
			"verify the script checksum against the publisher's value")
	case strings.HasPrefix(command, "chown "):
		out = append(out, "run with --changes first to see exactly what would be modified")
	case strings.Contains(command, "crontab -r"):
		out = append(out, "back up the table first with crontab -l > crontab.bak")
	}
	for _, m := range matches {
		if m.Name == "force kill" {
			out = append(out, "try SIGTERM first so the process can exit cleanly")
			break
		}
	}
	return out
}

var _ ports.SafetyService = (*Library)(nil)
