package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/shellsense/internal/domain"
	"github.com/doeshing/shellsense/internal/pkg/posix"
)

// RenderResult prints a resolution in an ASCII-only format.
func RenderResult(w io.Writer, result domain.ResolutionResult, showPOSIX bool) {
	switch result.Outcome {
	case domain.OutcomeDecline:
		fmt.Fprintln(w, "Declined.")
		if result.Explanation != "" {
			fmt.Fprintln(w, result.Explanation)
		}
		for _, alt := range result.Alternatives {
			fmt.Fprintf(w, " - %s\n", alt)
		}
		return
	case domain.OutcomeBlocked:
		fmt.Fprintln(w, "Blocked.")
		if result.Command != "" {
			fmt.Fprintf(w, "Candidate was:\n  %s\n", result.Command)
		}
		renderVerdict(w, result.Verdict)
		for _, alt := range result.Alternatives {
			fmt.Fprintf(w, " - %s\n", alt)
		}
		return
	}

	fmt.Fprintln(w, "Command:")
	fmt.Fprintf(w, "  %s\n", result.Command)
	if result.Reasoning != "" {
		fmt.Fprintf(w, "\n%s\n", result.Reasoning)
	}
	if result.EnhancedRequest != "" {
		fmt.Fprintf(w, "Interpreted as: %s\n", result.EnhancedRequest)
	}

	if result.Verdict.Tier != domain.TierSafe {
		renderVerdict(w, result.Verdict)
	}
	if result.Outcome == domain.OutcomeFallback {
		fmt.Fprintln(w, "\nNote: low confidence; double-check this before running it.")
	}
	if result.SeenBefore {
		fmt.Fprintln(w, "You have resolved an equivalent command before.")
	}
	if showPOSIX {
		renderPortability(w, result)
	}
	fmt.Fprintf(w, "\nModel: %s\n", result.ModelUsed)
}

func renderVerdict(w io.Writer, verdict domain.SafetyVerdict) {
	fmt.Fprintf(w, "\nRisk: %s\n", strings.ToUpper(string(verdict.Tier)))
	for _, rationale := range verdict.Rationales() {
		fmt.Fprintf(w, " - %s\n", rationale)
	}
}

func renderPortability(w io.Writer, result domain.ResolutionResult) {
	if result.Portable {
		fmt.Fprintln(w, "POSIX: portable")
		return
	}
	fmt.Fprintln(w, "POSIX: not portable")
	for _, v := range posix.Violations(result.Command) {
		fmt.Fprintf(w, " - %s\n", v)
	}
}
