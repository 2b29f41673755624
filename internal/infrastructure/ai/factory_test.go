package ai

import (
	"context"
	"testing"

	"github.com/doeshing/shellsense/internal/domain"
	"github.com/doeshing/shellsense/internal/ports"
)

func TestInferProviderKind(t *testing.T) {
	tests := []struct {
		endpoint string
		name     string
		want     providerKind
	}{
		{"https://api.anthropic.com/v1/messages", "claude", kindAnthropic},
		{"https://api.openai.com/v1/chat/completions", "gpt", kindOpenAI},
		{"http://localhost:11434/v1/chat/completions", "llama", kindOllama},
		{"http://127.0.0.1:11434/api/chat", "local", kindOllama},
		{"", "ollama-lab", kindOllama},
		{"https://inference.example.com/v1", "custom", kindUnknown},
	}
	for _, tt := range tests {
		if got := inferProviderKind(tt.endpoint, tt.name); got != tt.want {
			t.Errorf("inferProviderKind(%q, %q) = %v, want %v", tt.endpoint, tt.name, got, tt.want)
		}
	}
}

func TestFactoryFallsBackToHeuristic(t *testing.T) {
	f := NewFactory()

	provider, err := f.ForModel(domain.ModelDefinition{Name: "custom", Endpoint: "https://inference.example.com"})
	if err != nil {
		t.Fatalf("ForModel: %v", err)
	}
	if provider.Name() != "heuristic" {
		t.Errorf("provider = %q, want heuristic for unknown endpoints", provider.Name())
	}
}

func TestHeuristicGuesses(t *testing.T) {
	p := newHeuristicProvider(domain.ModelDefinition{})

	tests := []struct {
		text  string
		shell domain.Shell
		want  string
	}{
		{"show disk space usage", domain.ShellBash, "df -h"},
		{"show disk space usage", domain.ShellPowerShell, "Get-PSDrive -PSProvider FileSystem"},
		{"list files here", domain.ShellBash, "ls -la"},
		{"what is my ip address", domain.ShellBash, "ip addr show"},
		{"write me a poem", domain.ShellBash, ""},
	}
	for _, tt := range tests {
		resp, err := p.Generate(context.Background(), ports.ProviderRequest{Text: tt.text, ShellHint: tt.shell})
		if err != nil {
			t.Fatalf("Generate(%q): %v", tt.text, err)
		}
		if resp.Command != tt.want {
			t.Errorf("Generate(%q) = %q, want %q", tt.text, resp.Command, tt.want)
		}
	}
}
