package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doeshing/shellsense/internal/domain"
	"github.com/doeshing/shellsense/internal/pkg/cmdtext"
	"github.com/doeshing/shellsense/internal/pkg/posix"
	"github.com/doeshing/shellsense/internal/ports"
)

// ResolutionService drives one request from assessment through
// clarification to a terminal outcome. It holds no state between calls;
// clarification rounds live only on the stack of Run.
type ResolutionService struct {
	ConfigProvider  ports.ConfigProvider
	ProviderFactory ports.ProviderFactory
	Safety          ports.SafetyService
	Prompter        ports.ClarificationPrompter
	History         ports.HistoryRepository
	Logger          ports.Logger

	Analyzer  *Analyzer
	Questions *QuestionGenerator
	Enhancer  *Enhancer
}

// Run resolves a single natural-language request.
func (s *ResolutionService) Run(req domain.ResolutionRequest) (domain.ResolutionResult, error) {
	if s.ConfigProvider == nil || s.ProviderFactory == nil || s.Safety == nil ||
		s.Logger == nil || s.Analyzer == nil || s.Questions == nil || s.Enhancer == nil {
		return domain.ResolutionResult{}, errors.New("services.ResolutionService dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.ResolutionResult{}, fmt.Errorf("load config: %w", err)
	}

	model, err := cfg.PickModel(req.ModelOverride)
	if err != nil {
		return domain.ResolutionResult{}, err
	}

	shell := req.ShellHint
	if shell == "" {
		shell = cfg.PreferredShell()
	}

	text := req.Request
	rounds := 0
	lowConfidence := false
	var assessment domain.AmbiguityAssessment

	for {
		assessment = s.Analyzer.Assess(text, shell)
		s.Logger.Debug("assessed request", map[string]interface{}{
			"score":    assessment.Score,
			"category": string(assessment.Category),
			"round":    rounds,
		})

		if assessment.Category == domain.AmbiguityDomain {
			result := domain.ResolutionResult{
				Outcome:     domain.OutcomeDecline,
				Verdict:     domain.SafetyVerdict{Allowed: true, Tier: domain.TierSafe},
				Assessment:  assessment,
				RoundsUsed:  rounds,
				Explanation: "This looks like a request for code or prose rather than a shell command.",
				Alternatives: []string{
					"describe the command-line task you want to perform",
					"use an editor or a code assistant for programming tasks",
				},
			}
			s.record(req.Request, text, result, model.Name)
			return result, nil
		}

		if assessment.Confident(cfg.Resolution.ConfidenceThreshold) {
			break
		}
		if rounds >= cfg.Resolution.MaxClarificationRounds {
			lowConfidence = true
			break
		}
		if s.Prompter == nil || !s.Prompter.Enabled() {
			lowConfidence = true
			break
		}

		questions := s.Questions.Generate(assessment, text)
		answers, err := s.Prompter.Ask(ctx, questions)
		if err != nil {
			return domain.ResolutionResult{}, fmt.Errorf("%w: %v", domain.ErrResolutionAborted, err)
		}
		if len(answers) == 0 {
			lowConfidence = true
			break
		}

		rounds++
		round := domain.ClarificationRound{
			Original:  text,
			Questions: questions,
			Answers:   answers,
			Number:    rounds,
		}
		text = s.Enhancer.Enhance(round).Text
	}

	provider, err := s.ProviderFactory.ForModel(model)
	if err != nil {
		return domain.ResolutionResult{}, fmt.Errorf("provider for %s: %w", model.Name, err)
	}
	genCtx := ctx
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}
	resp, err := provider.Generate(genCtx, ports.ProviderRequest{
		Text:      text,
		ShellHint: shell,
		Model:     model,
		Debug:     req.Debug,
	})
	if err != nil {
		return domain.ResolutionResult{}, fmt.Errorf("generate command: %w", err)
	}
	if resp.BackendReportedRisk != "" {
		// Informational only. The verdict below is the sole authority.
		s.Logger.Debug("backend reported risk", map[string]interface{}{
			"risk": resp.BackendReportedRisk,
		})
	}

	if strings.TrimSpace(resp.Command) == "" {
		result := domain.ResolutionResult{
			Outcome:     domain.OutcomeDecline,
			Reasoning:   resp.Reasoning,
			Verdict:     domain.SafetyVerdict{Allowed: true, Tier: domain.TierSafe},
			Assessment:  assessment,
			RoundsUsed:  rounds,
			Explanation: "The backend produced no command for this request.",
			ModelUsed:   provider.Name(),
		}
		s.record(req.Request, text, result, provider.Name())
		return result, nil
	}

	verdict := s.Safety.Validate(resp.Command, shell)

	result := domain.ResolutionResult{
		Command:       resp.Command,
		Reasoning:     resp.Reasoning,
		Verdict:       verdict,
		Assessment:    assessment,
		RoundsUsed:    rounds,
		LowConfidence: lowConfidence,
		Portable:      posix.IsPortable(resp.Command),
		Alternatives:  verdict.Alternatives,
		ModelUsed:     provider.Name(),
	}
	if rounds > 0 {
		result.EnhancedRequest = text
	}
	result.SeenBefore = s.seenBefore(resp.Command)

	switch {
	case verdict.Blocked():
		result.Outcome = domain.OutcomeBlocked
		result.Explanation = "Command blocked by safety validation."
	case verdict.ShouldConfirm:
		confirmed, err := s.confirm(ctx, verdict, resp.Command)
		if err != nil {
			return domain.ResolutionResult{}, err
		}
		if !confirmed {
			result.Outcome = domain.OutcomeDecline
			result.Explanation = "Confirmation declined; command not handed over."
		} else if lowConfidence {
			result.Outcome = domain.OutcomeFallback
		} else {
			result.Outcome = domain.OutcomeProceed
		}
	case lowConfidence:
		result.Outcome = domain.OutcomeFallback
		result.Explanation = "Best-effort interpretation; confidence stayed below the threshold."
	default:
		result.Outcome = domain.OutcomeProceed
	}

	s.record(req.Request, text, result, provider.Name())
	return result, nil
}

// confirm gates High and Critical tier commands behind the typed
// confirmation surface. Without an interactive prompter the answer is no.
func (s *ResolutionService) confirm(ctx context.Context, verdict domain.SafetyVerdict, command string) (bool, error) {
	if s.Prompter == nil || !s.Prompter.Enabled() {
		return false, nil
	}
	confirmed, err := s.Prompter.ConfirmTyped(ctx, verdict, command)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrResolutionAborted, err)
	}
	return confirmed, nil
}

// seenBefore reports whether an equivalent command already sits in the
// recent audit trail. Equivalence is normalized comparison, so "ls -la"
// matches an earlier "ls -al".
func (s *ResolutionService) seenBefore(command string) bool {
	if s.History == nil {
		return false
	}
	recent, err := s.History.Recent(domain.DefaultHistoryLimit)
	if err != nil {
		return false
	}
	for _, rec := range recent {
		if rec.Command != "" && cmdtext.Equivalent(rec.Command, command) {
			return true
		}
	}
	return false
}

func (s *ResolutionService) record(original, enhanced string, result domain.ResolutionResult, model string) {
	if s.History == nil {
		return
	}
	names := make([]string, 0, len(result.Verdict.MatchedPatterns))
	for _, m := range result.Verdict.MatchedPatterns {
		names = append(names, m.Name)
	}
	rec := domain.ResolutionRecord{
		Timestamp:       time.Now().UTC(),
		Request:         original,
		EnhancedRequest: enhanced,
		Command:         result.Command,
		Model:           model,
		Outcome:         string(result.Outcome),
		Tier:            result.Verdict.Tier,
		Allowed:         result.Verdict.Allowed,
		MatchedPatterns: names,
		RoundsUsed:      result.RoundsUsed,
		LowConfidence:   result.LowConfidence,
	}
	if err := s.History.Save(rec); err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}
