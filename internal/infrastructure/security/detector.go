package security

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/doeshing/shellsense/internal/domain"
)

// compiledPattern binds a pattern spec to its ready-to-run detector.
// Compilation happens exactly once, at library construction.
type compiledPattern struct {
	spec      domain.PatternSpec
	tier      domain.RiskTier
	shell     domain.Shell
	substring string
	re        *regexp.Regexp
	predicate func(string) bool
}

// predicates is the closed registry of structured detectors available to
// pattern specs. Rules reference these by name; they are never loaded as
// executable code.
var predicates = map[string]func(string) bool{
	"pipe_to_shell":        pipeToShell,
	"pipe_to_root_shell":   pipeToRootShell,
	"redirect_to_device":   redirectToDevice,
	"netcat_shell_binding": netcatShellBinding,
}

var (
	downloaderRe  = regexp.MustCompile(`(^|\s|;|&&|\|\|)(curl|wget|fetch)\s`)
	shellSinkRe   = regexp.MustCompile(`\|\s*(sudo\s+)?(ba|z|fi)?sh\b`)
	rootSinkRe    = regexp.MustCompile(`\|\s*sudo\s+(ba|z|fi)?sh\b`)
	deviceWriteRe = regexp.MustCompile(`>\s*/dev/(sd[a-z]|hd[a-z]|nvme\d*n?\d*|disk\d*)`)
	ncListenRe    = regexp.MustCompile(`nc\b.*-(\w*e\w*)\s+/bin/(ba)?sh`)
)

func pipeToShell(command string) bool {
	return downloaderRe.MatchString(" "+command) && shellSinkRe.MatchString(command)
}

func pipeToRootShell(command string) bool {
	return downloaderRe.MatchString(" "+command) && rootSinkRe.MatchString(command)
}

func redirectToDevice(command string) bool {
	return deviceWriteRe.MatchString(command)
}

func netcatShellBinding(command string) bool {
	return ncListenRe.MatchString(command)
}

// compile validates and prepares one pattern spec. Malformed rules are
// load-time errors; the library refuses to start rather than skip them.
func compile(spec domain.PatternSpec) (compiledPattern, error) {
	if err := spec.Check(); err != nil {
		return compiledPattern{}, err
	}

	tier, _ := domain.ParseRiskTier(spec.Tier)
	shell := domain.ShellAny
	if spec.Shell != "" {
		shell = domain.Shell(spec.Shell)
	}

	cp := compiledPattern{spec: spec, tier: tier, shell: shell}
	switch spec.Kind {
	case domain.DetectSubstring:
		cp.substring = spec.Rule
	case domain.DetectRegex:
		re, err := regexp.Compile(spec.Rule)
		if err != nil {
			return compiledPattern{}, fmt.Errorf("pattern %s: invalid regex: %w", spec.Name, err)
		}
		cp.re = re
	case domain.DetectPredicate:
		fn, ok := predicates[spec.Rule]
		if !ok {
			return compiledPattern{}, fmt.Errorf("pattern %s: unknown predicate %q", spec.Name, spec.Rule)
		}
		cp.predicate = fn
	}
	return cp, nil
}

// appliesTo reports whether this pattern is in scope for the given shell.
// Unscoped patterns apply everywhere; scoped patterns also apply when the
// caller asks for the combined "all" view.
func (p compiledPattern) appliesTo(shell domain.Shell) bool {
	return p.shell == domain.ShellAny || shell == domain.ShellAny || p.shell == shell
}

// detect runs the pattern's detector over the quote-masked command. A
// detector fault counts as a match at the pattern's declared tier: the
// validator fails toward blocking, never toward permitting.
func (p compiledPattern) detect(masked string) (matched bool) {
	defer func() {
		if r := recover(); r != nil {
			matched = true
		}
	}()
	switch {
	case p.substring != "":
		return strings.Contains(masked, p.substring)
	case p.re != nil:
		return p.re.MatchString(masked)
	case p.predicate != nil:
		return p.predicate(masked)
	}
	return false
}
