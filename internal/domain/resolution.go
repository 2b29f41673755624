package domain

import (
	"context"
	"time"
)

// ResolutionState names the orchestrator states.
type ResolutionState string

const (
	StateReceived   ResolutionState = "received"
	StateAssessing  ResolutionState = "assessing"
	StateClarifying ResolutionState = "clarifying"
	StateProceeding ResolutionState = "proceeding"
)

// ResolutionOutcome is the terminal state of a resolution.
type ResolutionOutcome string

const (
	OutcomeProceed  ResolutionOutcome = "proceed"
	OutcomeDecline  ResolutionOutcome = "decline"
	OutcomeFallback ResolutionOutcome = "fallback"
	OutcomeBlocked  ResolutionOutcome = "blocked"
)

// ResolutionRequest carries one natural-language request into the core.
// Timeout bounds the backend generation call only; clarification and
// confirmation waits are open-ended and end via context cancellation.
type ResolutionRequest struct {
	Context       context.Context
	Request       string
	ShellHint     Shell
	ModelOverride string
	Debug         bool
	Timeout       time.Duration
}

// ResolutionResult is the final answer handed to the presentation layer.
type ResolutionResult struct {
	Outcome         ResolutionOutcome
	Command         string
	Reasoning       string
	Verdict         SafetyVerdict
	Assessment      AmbiguityAssessment
	EnhancedRequest string
	RoundsUsed      int
	LowConfidence   bool
	Portable        bool
	SeenBefore      bool
	Explanation     string
	Alternatives    []string
	ModelUsed       string
}

// ResolutionRecord is the immutable audit entry persisted for every
// terminal resolution.
type ResolutionRecord struct {
	Timestamp       time.Time `json:"timestamp"`
	Request         string    `json:"request"`
	EnhancedRequest string    `json:"enhanced_request"`
	Command         string    `json:"command"`
	Model           string    `json:"model"`
	Outcome         string    `json:"outcome"`
	Tier            RiskTier  `json:"tier"`
	Allowed         bool      `json:"allowed"`
	MatchedPatterns []string  `json:"matched_patterns"`
	RoundsUsed      int       `json:"rounds_used"`
	LowConfidence   bool      `json:"low_confidence"`
}
