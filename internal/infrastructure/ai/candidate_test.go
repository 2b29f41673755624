package ai

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/shellsense/internal/ports"
)

func TestParseCandidateJSON(t *testing.T) {
	content := `{"command": "df -h", "explanation": "shows disk usage per filesystem", "risk": "Safe"}`

	got := parseCandidate(content, "openai")

	want := ports.ProviderResponse{
		Command:             "df -h",
		Reasoning:           "shows disk usage per filesystem",
		BackendReportedRisk: "safe",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseCandidate (-want +got):\n%s", diff)
	}
}

func TestParseCandidateFencedJSON(t *testing.T) {
	content := "```json\n{\"command\": \"ls -la\", \"explanation\": \"lists files\", \"risk\": \"safe\"}\n```"

	got := parseCandidate(content, "anthropic")

	if got.Command != "ls -la" {
		t.Errorf("command = %q, want ls -la", got.Command)
	}
}

func TestParseCandidateCodeBlock(t *testing.T) {
	content := "Here you go:\n```sh\ndu -sh *\n```\nThat sums each entry."

	got := parseCandidate(content, "ollama")

	if got.Command != "du -sh *" {
		t.Errorf("command = %q, want du -sh *", got.Command)
	}
	if got.BackendReportedRisk != "" {
		t.Errorf("risk = %q, want empty for non-JSON content", got.BackendReportedRisk)
	}
}

func TestParseCandidateCommandLine(t *testing.T) {
	content := "Sure.\nCommand: find . -name '*.log'\nAnything else?"

	got := parseCandidate(content, "ollama")

	if got.Command != "find . -name '*.log'" {
		t.Errorf("command = %q", got.Command)
	}
}

func TestParseCandidatePlainText(t *testing.T) {
	got := parseCandidate("\n  uptime  \n", "ollama")

	if got.Command != "uptime" {
		t.Errorf("command = %q, want uptime", got.Command)
	}
}

func TestParseCandidateEmptyCommandJSON(t *testing.T) {
	content := `{"command": "", "explanation": "this needs a program, not a command", "risk": "safe"}`

	got := parseCandidate(content, "openai")

	if got.Command != "" {
		t.Errorf("command = %q, want empty", got.Command)
	}
	if got.Reasoning == "" {
		t.Error("explanation should survive an empty command")
	}
}
