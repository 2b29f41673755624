// Package cmdtext canonicalizes shell command strings for equivalence
// comparison. It is dependency-free and usable standalone.
package cmdtext

import (
	"sort"
	"strings"
)

// Normalize collapses repeated whitespace to single spaces and sorts the
// letters inside short-form flag clusters, so "ls -la" and "ls  -al"
// normalize identically. Long-form flags (--all) are left untouched.
func Normalize(command string) string {
	tokens := strings.Fields(command)
	for i, token := range tokens {
		tokens[i] = normalizeToken(token)
	}
	return strings.Join(tokens, " ")
}

// Equivalent reports whether two commands normalize to the same string.
func Equivalent(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

func normalizeToken(token string) string {
	if !isShortFlagCluster(token) {
		return token
	}
	letters := strings.Split(token[1:], "")
	sort.Strings(letters)
	return "-" + strings.Join(letters, "")
}

// isShortFlagCluster matches tokens like -la but not --all, -n5, or a bare
// dash. Only letter clusters are reordered; anything carrying a value must
// keep its order.
func isShortFlagCluster(token string) bool {
	if len(token) < 3 || token[0] != '-' || token[1] == '-' {
		return false
	}
	for _, r := range token[1:] {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
