package domain

import "time"

// File permission constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Resolution defaults
const (
	// DefaultConfidenceThreshold gates the proceed-directly decision.
	DefaultConfidenceThreshold = 0.7
	// DefaultMaxClarificationRounds bounds ask/answer cycles per request.
	DefaultMaxClarificationRounds = 2
	// MaxQuestionsPerRound caps how many questions one round may carry.
	MaxQuestionsPerRound = 3
)

// Backend defaults
const (
	// DefaultHTTPClientTimeout is the timeout for backend HTTP requests.
	DefaultHTTPClientTimeout = 60 * time.Second
	// DefaultMaxTokens is the default generation token budget.
	DefaultMaxTokens = 1024
)

// History constants
const (
	// DefaultHistoryLimit is the default number of audit records to display.
	DefaultHistoryLimit = 20
	// DefaultHistorySearchLimit is the default number of search results.
	DefaultHistorySearchLimit = 50
)
