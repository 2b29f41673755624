package ai

import (
	"net/http"
	"strings"

	"github.com/doeshing/shellsense/internal/domain"
	"github.com/doeshing/shellsense/internal/ports"
)

type providerKind string

const (
	kindAnthropic providerKind = "anthropic"
	kindOpenAI    providerKind = "openai"
	kindOllama    providerKind = "ollama"
	kindUnknown   providerKind = "unknown"
)

// Factory builds generation backends from model definitions. Backends are
// opaque to the rest of the system: text in, candidate command out.
type Factory struct {
	httpClient *http.Client
}

func NewFactory() *Factory {
	return &Factory{
		httpClient: &http.Client{Timeout: domain.DefaultHTTPClientTimeout},
	}
}

func (f *Factory) ForModel(model domain.ModelDefinition) (ports.Provider, error) {
	switch inferProviderKind(model.Endpoint, model.Name) {
	case kindAnthropic:
		return newHTTPProvider("anthropic", model, f.httpClient, anthropicAdapter()), nil
	case kindOpenAI:
		return newHTTPProvider("openai", model, f.httpClient, openaiAdapter()), nil
	case kindOllama:
		return newHTTPProvider("ollama", model, f.httpClient, ollamaAdapter()), nil
	default:
		// No reachable backend; the offline heuristic keeps the tool usable.
		return newHeuristicProvider(model), nil
	}
}

func inferProviderKind(endpoint string, name string) providerKind {
	nameLower := strings.ToLower(name)

	switch {
	case strings.Contains(endpoint, "anthropic.com"):
		return kindAnthropic
	case strings.Contains(endpoint, "openai.com"):
		return kindOpenAI
	case strings.Contains(nameLower, "ollama"), strings.Contains(endpoint, "11434"), strings.Contains(endpoint, "localhost"):
		return kindOllama
	default:
		return kindUnknown
	}
}

var _ ports.ProviderFactory = (*Factory)(nil)
