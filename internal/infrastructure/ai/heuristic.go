package ai

import (
	"context"
	"strings"

	"github.com/doeshing/shellsense/internal/domain"
	"github.com/doeshing/shellsense/internal/ports"
)

// heuristicProvider is the offline fallback used when no backend can be
// inferred from the model definition. It covers a handful of everyday
// requests so the tool still answers without credentials.
type heuristicProvider struct {
	model domain.ModelDefinition
}

func newHeuristicProvider(model domain.ModelDefinition) ports.Provider {
	return &heuristicProvider{model: model}
}

func (p *heuristicProvider) Name() string {
	return "heuristic"
}

func (p *heuristicProvider) Generate(_ context.Context, req ports.ProviderRequest) (ports.ProviderResponse, error) {
	return ports.ProviderResponse{
		Command:   guessCommand(req.Text, req.ShellHint),
		Reasoning: "Generated locally without a configured backend",
	}, nil
}

func guessCommand(text string, shell domain.Shell) string {
	text = strings.ToLower(text)
	windows := shell == domain.ShellPowerShell || shell == domain.ShellCmd

	switch {
	case strings.Contains(text, "docker"):
		return "docker ps"
	case strings.Contains(text, "git status"):
		return "git status"
	case strings.Contains(text, "disk") && (strings.Contains(text, "space") || strings.Contains(text, "usage")):
		if windows {
			return "Get-PSDrive -PSProvider FileSystem"
		}
		return "df -h"
	case strings.Contains(text, "list") && strings.Contains(text, "file"):
		if windows {
			return "Get-ChildItem"
		}
		return "ls -la"
	case strings.Contains(text, "ip address"):
		if windows {
			return "ipconfig"
		}
		return "ip addr show"
	case strings.Contains(text, "process"):
		if windows {
			return "Get-Process"
		}
		return "ps aux"
	default:
		return ""
	}
}
