package ai

import (
	"encoding/json"
	"strings"

	"github.com/doeshing/shellsense/internal/ports"
)

type candidatePayload struct {
	Command     string `json:"command"`
	Explanation string `json:"explanation"`
	Risk        string `json:"risk"`
}

// parseCandidate turns raw backend content into a provider response.
// Backends are asked for JSON but are not trusted to comply: a fenced
// code block or a "command:" line is accepted, and as a last resort the
// first non-empty line is taken verbatim. The reported risk rides along
// untouched; it never feeds the safety decision.
func parseCandidate(content, providerName string) ports.ProviderResponse {
	content = strings.TrimSpace(content)

	if payload, ok := decodeCandidateJSON(content); ok {
		return ports.ProviderResponse{
			Command:             strings.TrimSpace(payload.Command),
			Reasoning:           strings.TrimSpace(payload.Explanation),
			BackendReportedRisk: strings.ToLower(strings.TrimSpace(payload.Risk)),
		}
	}

	if code := extractCodeBlock(content); code != "" {
		return ports.ProviderResponse{Command: code, Reasoning: "Generated via " + providerName}
	}
	if cmd := extractCommandLine(content); cmd != "" {
		return ports.ProviderResponse{Command: cmd, Reasoning: "Generated via " + providerName}
	}

	return ports.ProviderResponse{
		Command:   firstLine(content),
		Reasoning: "Generated via " + providerName,
	}
}

// decodeCandidateJSON accepts a bare JSON object or one wrapped in a
// code fence.
func decodeCandidateJSON(content string) (candidatePayload, bool) {
	body := content
	if fenced := extractCodeBlock(content); strings.HasPrefix(fenced, "{") {
		body = fenced
	}
	start := strings.IndexByte(body, '{')
	end := strings.LastIndexByte(body, '}')
	if start < 0 || end <= start {
		return candidatePayload{}, false
	}

	var payload candidatePayload
	if err := json.Unmarshal([]byte(body[start:end+1]), &payload); err != nil {
		return candidatePayload{}, false
	}
	if payload.Command == "" && payload.Explanation == "" {
		return candidatePayload{}, false
	}
	return payload, true
}

func extractCodeBlock(content string) string {
	if !strings.Contains(content, "```") {
		return ""
	}

	start := strings.Index(content, "```")
	suffix := content[start+3:]
	end := strings.Index(suffix, "```")
	if end == -1 {
		return ""
	}

	block := suffix[:end]
	lines := strings.Split(block, "\n")
	if len(lines) > 0 {
		switch strings.TrimSpace(lines[0]) {
		case "sh", "bash", "shell", "zsh", "powershell", "json":
			lines = lines[1:]
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func extractCommandLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "command:") {
			return strings.TrimSpace(line[len("command:"):])
		}
	}
	return ""
}

func firstLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
