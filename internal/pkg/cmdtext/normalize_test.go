package cmdtext

import "testing"

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	if got := Normalize("ls   -l\t-a"); got != "ls -l -a" {
		t.Errorf("Normalize() = %q", got)
	}
}

func TestNormalizeSortsFlagClusters(t *testing.T) {
	if Normalize("ls -la") != Normalize("ls -al") {
		t.Error("flag clusters should normalize identically")
	}
	if got := Normalize("ls -la"); got != "ls -al" {
		t.Errorf("Normalize(\"ls -la\") = %q, want \"ls -al\"", got)
	}
}

func TestNormalizeLeavesLongFlagsAlone(t *testing.T) {
	if got := Normalize("ls --all"); got != "ls --all" {
		t.Errorf("Normalize() = %q, want unchanged long flag", got)
	}
}

func TestNormalizeLeavesValueFlagsAlone(t *testing.T) {
	// -n5 carries a value, so its order is significant.
	if got := Normalize("head -n5 file"); got != "head -n5 file" {
		t.Errorf("Normalize() = %q", got)
	}
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"ls  -la", "ls -al", true},
		{"ls -l -a", "ls -a -l", false}, // separate flags are not merged
		{"ls -la", "ls -lh", false},
		{"find . -type f", "find .  -type f", true},
		{"ls", "find", false},
	}
	for _, tt := range tests {
		if got := Equivalent(tt.a, tt.b); got != tt.want {
			t.Errorf("Equivalent(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
