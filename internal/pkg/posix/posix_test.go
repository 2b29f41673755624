package posix

import (
	"strings"
	"testing"
)

func TestIsPortable(t *testing.T) {
	tests := []struct {
		command string
		want    bool
	}{
		{"[ -f x ]", true},
		{"[[ -f x ]]", false},
		{"find . -type f -name '*.txt'", true},
		{"function greet { echo hi; }", false},
		{"echo {1..10}", false},
		{"diff <(ls a) <(ls b)", false},
		{"echo $[1+2]", false},
		{"ls **/*.go", false},
		{"grep pattern <<< \"$input\"", false},
		{"cmd &> out.log", false},
		{"make 2>&1 | tee log", true},
		{"ls -la", true},
	}

	for _, tt := range tests {
		if got := IsPortable(tt.command); got != tt.want {
			t.Errorf("IsPortable(%q) = %v, want %v", tt.command, got, tt.want)
		}
	}
}

func TestViolationsGNUExtensions(t *testing.T) {
	tests := []struct {
		command string
		wantHit string
	}{
		{"find . -mtime -1", "-mtime -N"},
		{"find . -regex '.*\\.py'", "-regex"},
		{"find . -printf '%p\\n'", "-printf"},
		{"stat -c %s file", "stat -c"},
		{"date -d yesterday", "date -d"},
		{"ls --all", "long options"},
	}

	for _, tt := range tests {
		violations := Violations(tt.command)
		if len(violations) == 0 {
			t.Errorf("Violations(%q) empty, want mention of %q", tt.command, tt.wantHit)
			continue
		}
		found := false
		for _, v := range violations {
			if strings.Contains(v, tt.wantHit) {
				found = true
			}
		}
		if !found {
			t.Errorf("Violations(%q) = %v, want mention of %q", tt.command, violations, tt.wantHit)
		}
	}
}

func TestViolationsCleanCommand(t *testing.T) {
	if v := Violations("find . -mtime 0"); len(v) != 0 {
		t.Errorf("Violations(find . -mtime 0) = %v, want none", v)
	}
}
