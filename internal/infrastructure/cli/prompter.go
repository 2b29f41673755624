package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/doeshing/shellsense/internal/domain"
	"github.com/doeshing/shellsense/internal/ports"
)

// Prompter is the stdio clarification surface. Questions are printed as
// a numbered list with lettered options and answered on one line, for
// example "1a 2c". A token like "1=only node logs" answers freeform.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewPrompter constructs a prompter over stdio. Passing explicit streams
// (tests, scripted sessions) marks the prompter interactive regardless
// of terminal state.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	interactive := true
	if in == nil {
		in = os.Stdin
		fd := os.Stdin.Fd()
		interactive = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Enabled reports whether the prompter can actually collect input.
func (p *Prompter) Enabled() bool {
	return p.interactive
}

// Ask presents one clarification round and blocks for a single answer
// line. A canceled context aborts the wait; an empty line means the user
// chose to answer nothing.
func (p *Prompter) Ask(ctx context.Context, questions []domain.ClarificationQuestion) (map[string]domain.Answer, error) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "I need a bit more detail:")
	for i, q := range questions {
		fmt.Fprintf(p.out, "%d) %s\n", i+1, q.Prompt)
		for _, opt := range q.Options {
			fmt.Fprintf(p.out, "   %s) %s\n", opt.Key, opt.Label)
		}
		if q.AllowsFreeform {
			fmt.Fprintf(p.out, "   (or %d=your own answer)\n", i+1)
		}
	}
	fmt.Fprint(p.out, "Answer (e.g. \"1a 2b\", empty to skip): ")

	line, err := p.readLine(ctx)
	if err != nil {
		return nil, err
	}
	return parseAnswers(line, questions), nil
}

// ConfirmTyped requires the word "yes" before a high or critical command
// is handed over. Anything else declines; a canceled context aborts.
func (p *Prompter) ConfirmTyped(ctx context.Context, verdict domain.SafetyVerdict, command string) (bool, error) {
	fmt.Fprintf(p.out, "\n%s risk detected\n", strings.ToUpper(string(verdict.Tier)))
	for _, rationale := range verdict.Rationales() {
		fmt.Fprintf(p.out, " - %s\n", rationale)
	}
	fmt.Fprintf(p.out, "Command:\n  %s\n", command)
	if len(verdict.Alternatives) > 0 {
		fmt.Fprintln(p.out, "Safer alternatives:")
		for _, alt := range verdict.Alternatives {
			fmt.Fprintf(p.out, " - %s\n", alt)
		}
	}
	fmt.Fprint(p.out, "Type 'yes' to proceed (anything else cancels): ")

	line, err := p.readLine(ctx)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(line) == "yes", nil
}

// readLine blocks on stdin but honors context cancellation. The pending
// read goroutine is abandoned on cancel; the process is about to unwind
// anyway.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	type readResult struct {
		line string
		err  error
	}
	ch := make(chan readResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.err != nil && res.line == "" {
			return "", res.err
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}

// parseAnswers decodes an answer line against the presented questions.
// Unknown tokens are ignored rather than failing the round.
func parseAnswers(line string, questions []domain.ClarificationQuestion) map[string]domain.Answer {
	answers := map[string]domain.Answer{}
	for _, token := range strings.Fields(strings.TrimSpace(line)) {
		if eq := strings.IndexByte(token, '='); eq > 0 {
			idx, err := strconv.Atoi(token[:eq])
			if err != nil || idx < 1 || idx > len(questions) {
				continue
			}
			q := questions[idx-1]
			if !q.AllowsFreeform {
				continue
			}
			// The freeform text is the rest of the original line after
			// "N=", so spaces survive.
			rest := token[eq+1:]
			if tail := freeformTail(line, token); tail != "" {
				rest = tail
			}
			if rest != "" {
				answers[q.ID] = domain.Answer{Freeform: rest}
			}
			// Freeform consumes the rest of the line.
			break
		}

		if len(token) < 2 {
			continue
		}
		idx, err := strconv.Atoi(token[:len(token)-1])
		if err != nil || idx < 1 || idx > len(questions) {
			continue
		}
		q := questions[idx-1]
		key := strings.ToLower(token[len(token)-1:])
		if _, ok := q.Option(key); ok {
			answers[q.ID] = domain.Answer{OptionKey: key}
		}
	}
	return answers
}

// freeformTail returns everything after the "N=" marker of token within
// the full line, preserving spaces in the freeform answer.
func freeformTail(line, token string) string {
	eq := strings.IndexByte(token, '=')
	marker := token[:eq+1]
	pos := strings.Index(line, marker)
	if pos < 0 {
		return ""
	}
	return strings.TrimSpace(line[pos+len(marker):])
}

var _ ports.ClarificationPrompter = (*Prompter)(nil)
