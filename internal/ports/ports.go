// Package ports defines the interfaces between the resolution core and its
// adapters.
//
// Following the Ports and Adapters (Hexagonal) pattern, these interfaces
// keep the decision core independent of concrete backends, storage, and
// terminal surfaces. The generation backend in particular is an opaque
// collaborator: the core sends it text and receives a candidate command,
// and never inspects or trusts its internal behavior.
package ports

import (
	"context"

	"github.com/doeshing/shellsense/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.shellsense/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ProviderFactory builds generation backend instances for model definitions.
type ProviderFactory interface {
	ForModel(domain.ModelDefinition) (Provider, error)
}

// Provider is the opaque generation backend: resolved request text in,
// candidate command out. BackendReportedRisk in the response is
// informational only and must never drive safety decisions.
type Provider interface {
	Name() string
	Generate(context.Context, ProviderRequest) (ProviderResponse, error)
}

// ProviderRequest carries the resolved or enhanced request text and the
// target shell hint to the backend.
type ProviderRequest struct {
	Text      string
	ShellHint domain.Shell
	Model     domain.ModelDefinition
	Debug     bool
}

// ProviderResponse is the backend's candidate. BackendReportedRisk is the
// backend's own safety opinion; the core records it for display but the
// safety validator alone decides what is dangerous.
type ProviderResponse struct {
	Command             string
	Reasoning           string
	BackendReportedRisk string
}

// SafetyService classifies a candidate command against the pattern library.
type SafetyService interface {
	Validate(command string, shell domain.Shell) domain.SafetyVerdict
}

// ClarificationPrompter is the interactive surface for ambiguous requests.
// Both waits block until the user answers or the context is canceled; a
// canceled wait aborts the whole resolution with no side effects.
type ClarificationPrompter interface {
	Ask(ctx context.Context, questions []domain.ClarificationQuestion) (map[string]domain.Answer, error)
	ConfirmTyped(ctx context.Context, verdict domain.SafetyVerdict, command string) (bool, error)
	Enabled() bool
}

// HistoryRepository receives the final verdict and enhanced request as an
// immutable audit record. The core owns no persistent state itself.
type HistoryRepository interface {
	Save(domain.ResolutionRecord) error
	Recent(limit int) ([]domain.ResolutionRecord, error)
	Search(term string, limit int) ([]domain.ResolutionRecord, error)
	Close() error
}

// Logger provides structured logging for the resolution pipeline.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
