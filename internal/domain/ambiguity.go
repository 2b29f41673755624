package domain

// AmbiguityCategory classifies why a request cannot be confidently acted on.
type AmbiguityCategory string

const (
	AmbiguityNone     AmbiguityCategory = "none"
	AmbiguityPlatform AmbiguityCategory = "platform"
	AmbiguityScope    AmbiguityCategory = "scope"
	AmbiguityAction   AmbiguityCategory = "action"
	AmbiguityContext  AmbiguityCategory = "context"
	AmbiguityDomain   AmbiguityCategory = "domain"
	AmbiguitySafety   AmbiguityCategory = "safety"
)

// Hint kinds populated by the analyzer and overridable by answers.
const (
	HintPlatform = "platform"
	HintScope    = "scope"
	HintTool     = "tool"
	HintTarget   = "target"
)

// AmbiguityAssessment is the result of one analysis round. A fresh value is
// computed per round; assessments are never mutated in place.
type AmbiguityAssessment struct {
	Score     float64
	Category  AmbiguityCategory
	Hints     map[string]string
	Rationale string
}

// Confident reports whether the score clears the configured threshold,
// meaning the orchestrator may proceed without clarification.
func (a AmbiguityAssessment) Confident(threshold float64) bool {
	return a.Score >= threshold
}
