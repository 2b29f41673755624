// Package posix classifies shell commands as portable POSIX or
// shell-specific. The checks are a fixed, stateless set of syntax
// detectors; they do not parse full shell grammar.
package posix

import (
	"regexp"
	"strings"
)

type violation struct {
	re      *regexp.Regexp
	message string
}

// Detectors are compiled once at package init.
var violations = []violation{
	{regexp.MustCompile(`\[\[|\]\]`), "Bash-specific [[ test operator (use [ instead)"},
	{regexp.MustCompile(`(^|\s)function\s+\w+`), "the 'function' keyword is not POSIX (use name() {...})"},
	{regexp.MustCompile(`\{\d+\.\.\d+\}`), "brace range expansion {N..M} is not POSIX"},
	{regexp.MustCompile(`<\(`), "process substitution <() is not POSIX"},
	{regexp.MustCompile(`>\(`), "process substitution >() is not POSIX"},
	{regexp.MustCompile(`\$\[`), "arithmetic shorthand $[...] is not POSIX (use $((...)))"},
	{regexp.MustCompile(`(^|[^*])\*\*(/|$|\s)`), "recursive globstar ** is not POSIX"},
	{regexp.MustCompile(`<<<`), "here-strings (<<<) are not POSIX"},
	{regexp.MustCompile(`&>>?`), "Bash-specific redirection operator &>"},
	{regexp.MustCompile(`\|&`), "Bash-specific |& pipe operator"},
}

// GNU extension checks for common utilities: flags absent from POSIX.
var gnuViolations = []violation{
	{regexp.MustCompile(`find\b.*-mtime\s+-\d+`), "find -mtime -N is a GNU extension (use -mtime N)"},
	{regexp.MustCompile(`find\b.*-regex\b`), "find -regex is a GNU extension (use -name with wildcards)"},
	{regexp.MustCompile(`find\b.*-printf\b`), "find -printf is a GNU extension (use -print or -exec)"},
	{regexp.MustCompile(`stat\s+-c\b`), "stat -c is GNU-specific (BSD stat uses -f)"},
	{regexp.MustCompile(`date\b.*\s-d\s`), "date -d is a GNU extension"},
}

// IsPortable reports whether the command avoids shell-specific syntax.
func IsPortable(command string) bool {
	return len(Violations(command)) == 0
}

// Violations returns a human-readable message for every portability
// problem found. An empty slice means no violations were detected.
func Violations(command string) []string {
	var found []string
	for _, v := range violations {
		if v.re.MatchString(command) {
			found = append(found, v.message)
		}
	}
	for _, v := range gnuViolations {
		if v.re.MatchString(command) {
			found = append(found, v.message)
		}
	}
	if strings.Contains(command, "--") && !strings.Contains(command, " -- ") {
		found = append(found, "GNU-style long options (--flag) may not be POSIX")
	}
	return found
}
