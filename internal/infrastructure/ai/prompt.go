package ai

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/doeshing/shellsense/internal/ports"
)

type promptMessage struct {
	Role    string
	Content string
}

const systemTemplate = `You translate natural-language requests into a single shell command.
Target shell: {{.Shell}}.
Respond with JSON only, in this exact shape:
{"command": "<the command>", "explanation": "<one sentence>", "risk": "safe|moderate|high|critical"}
Rules:
- Output exactly one command line, no markdown fences, no commentary outside the JSON.
- Prefer portable POSIX constructs when the target shell allows it.
- If the request cannot be done with a command, set "command" to an empty string and explain why.`

var systemTmpl = template.Must(template.New("system").Parse(systemTemplate))

// buildMessages renders the conversation sent to a backend. The resolved
// request text arrives fully enhanced; no further context is attached
// here.
func buildMessages(req ports.ProviderRequest) ([]promptMessage, error) {
	shell := string(req.ShellHint)
	if shell == "" || shell == "all" {
		shell = "any POSIX shell"
	}

	var system bytes.Buffer
	if err := systemTmpl.Execute(&system, struct{ Shell string }{Shell: shell}); err != nil {
		return nil, err
	}

	return []promptMessage{
		{Role: "system", Content: strings.TrimSpace(system.String())},
		{Role: "user", Content: strings.TrimSpace(req.Text)},
	}, nil
}
