package services

import (
	"strconv"
	"strings"

	"github.com/doeshing/shellsense/internal/domain"
)

// Analyzer scores how confidently a natural-language request can be turned
// into a command. Scoring is pure: the same request and shell always
// produce the same assessment.
type Analyzer struct{}

// signal is one detected ambiguity source. The heaviest signal names the
// assessment category; weights accumulate as confidence deductions.
type signal struct {
	category domain.AmbiguityCategory
	weight   float64
	note     string
}

var actionVerbs = map[string]bool{
	"list": true, "show": true, "display": true, "find": true, "search": true,
	"delete": true, "remove": true, "copy": true, "move": true, "rename": true,
	"create": true, "make": true, "install": true, "update": true, "upgrade": true,
	"compress": true, "extract": true, "archive": true, "count": true,
	"kill": true, "stop": true, "start": true, "restart": true, "run": true,
	"build": true, "compile": true, "download": true, "upload": true,
	"print": true, "check": true, "sort": true, "convert": true, "mount": true,
}

var vagueTerms = []string{
	"clean", "cleanup", "tidy", "fix", "stuff", "things", "somehow",
	"better", "faster", "optimize", "improve", "sort out",
}

var destructiveVerbs = []string{"delete", "remove", "wipe", "erase", "destroy", "purge"}

// deploymentVerbs name multi-step intents that no single command covers.
// Without a named tool or target there is nothing concrete to generate.
var deploymentVerbs = []string{"deploy", "publish", "ship", "release", "launch"}

// scopeQualifiers mark a request whose scope was made concrete, typically
// by a clarification answer merged back into the text.
var scopeQualifiers = []string{"only", "specifically", "exactly", "older than"}

var universalScope = []string{"everything", "all of it", "the whole", "entire"}

var buildTools = []string{
	"make", "cmake", "npm", "yarn", "pnpm", "cargo", "go", "mvn", "maven",
	"gradle", "pip", "docker", "gcc", "clang", "javac", "dotnet", "bazel",
}

// platformSensitive lists task words whose command differs per platform.
var platformSensitive = []string{
	"ip address", "memory usage", "cpu usage", "open ports", "services",
	"startup", "clipboard", "battery", "installed programs",
}

// platformMentions maps platform words to shells. The hint resolves to
// the mention appearing last in the text, so a phrase merged in from a
// clarification answer beats anything the original request mentioned.
var platformMentions = []struct {
	mention string
	shell   string
}{
	{"windows", "powershell"},
	{"powershell", "powershell"},
	{"cmd.exe", "cmd"},
	{"linux", "bash"},
	{"ubuntu", "bash"},
	{"debian", "bash"},
	{"macos", "zsh"},
	{"darwin", "zsh"},
	{"mac", "zsh"},
}

// Assess analyzes one request for the given target shell. A Domain
// category means the request is not a shell-command task at all; the
// orchestrator declines those regardless of score.
func (a *Analyzer) Assess(request string, shell domain.Shell) domain.AmbiguityAssessment {
	text := strings.ToLower(strings.TrimSpace(request))
	words := strings.Fields(text)

	hints := map[string]string{}
	lastMention := -1
	for _, pm := range platformMentions {
		if idx := lastWordIndex(text, pm.mention); idx > lastMention {
			lastMention = idx
			hints[domain.HintPlatform] = pm.shell
		}
	}
	for _, tool := range buildTools {
		if containsWord(text, tool) {
			hints[domain.HintTool] = tool
			break
		}
	}
	if target := pathToken(words); target != "" {
		hints[domain.HintTarget] = target
	}

	if isProgrammingTask(text) {
		return domain.AmbiguityAssessment{
			Score:     0,
			Category:  domain.AmbiguityDomain,
			Hints:     hints,
			Rationale: "request asks for code or prose, not a shell command",
		}
	}

	var signals []signal

	if isDestructiveWithoutTarget(text, words) {
		signals = append(signals, signal{domain.AmbiguitySafety, 0.4,
			"destructive intent with no concrete target"})
	}
	if len(words) > 0 && len(words) < 3 {
		signals = append(signals, signal{domain.AmbiguityContext, 0.3,
			"very short request"})
	}
	if term := firstContained(text, vagueTerms); term != "" &&
		firstContained(text, scopeQualifiers) == "" {
		signals = append(signals, signal{domain.AmbiguityScope, 0.2,
			"vague term " + strconv.Quote(term)})
	}
	if !hasActionVerb(words) {
		signals = append(signals, signal{domain.AmbiguityAction, 0.2,
			"no recognizable action verb"})
	}
	if wantsBuildOrRun(text) && hints[domain.HintTool] == "" {
		signals = append(signals, signal{domain.AmbiguityContext, 0.3,
			"build or run intent without a named tool"})
	}
	if term := firstContained(text, deploymentVerbs); term != "" &&
		hints[domain.HintTool] == "" && hints[domain.HintTarget] == "" {
		signals = append(signals, signal{domain.AmbiguityContext, 0.3,
			"intent " + strconv.Quote(term) + " without a named tool or target"})
	}
	if hasUnresolvedReference(words) && hints[domain.HintTarget] == "" {
		signals = append(signals, signal{domain.AmbiguityContext, 0.2,
			"pronoun reference with no antecedent"})
	}
	if shell == domain.ShellAny && hints[domain.HintPlatform] == "" &&
		firstContained(text, platformSensitive) != "" {
		signals = append(signals, signal{domain.AmbiguityPlatform, 0.35,
			"platform-dependent task with no platform stated"})
	}

	score := 1.0
	category := domain.AmbiguityNone
	heaviest := 0.0
	var notes []string
	for _, s := range signals {
		score -= s.weight
		notes = append(notes, s.note)
		// Safety outranks everything; otherwise the heaviest signal wins.
		if s.category == domain.AmbiguitySafety ||
			(category != domain.AmbiguitySafety && s.weight > heaviest) {
			category = s.category
			heaviest = s.weight
		}
	}
	if score < 0 {
		score = 0
	}

	return domain.AmbiguityAssessment{
		Score:     score,
		Category:  category,
		Hints:     hints,
		Rationale: strings.Join(notes, "; "),
	}
}

func containsWord(text, word string) bool {
	idx := strings.Index(text, word)
	for idx >= 0 {
		beforeOK := idx == 0 || !isWordRune(text[idx-1])
		end := idx + len(word)
		afterOK := end == len(text) || !isWordRune(text[end])
		if beforeOK && afterOK {
			return true
		}
		next := strings.Index(text[idx+1:], word)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

// lastWordIndex returns the index of the last boundary-delimited
// occurrence of word in text, or -1.
func lastWordIndex(text, word string) int {
	idx := strings.LastIndex(text, word)
	for idx >= 0 {
		beforeOK := idx == 0 || !isWordRune(text[idx-1])
		end := idx + len(word)
		afterOK := end == len(text) || !isWordRune(text[end])
		if beforeOK && afterOK {
			return idx
		}
		if idx == 0 {
			break
		}
		idx = strings.LastIndex(text[:idx], word)
	}
	return -1
}

func isWordRune(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_' || b == '-'
}

func firstContained(text string, terms []string) string {
	for _, term := range terms {
		if containsWord(text, term) {
			return term
		}
	}
	return ""
}

func hasActionVerb(words []string) bool {
	for _, w := range words {
		if actionVerbs[strings.Trim(w, ",.!?")] {
			return true
		}
	}
	return false
}

func wantsBuildOrRun(text string) bool {
	return containsWord(text, "build") || containsWord(text, "compile") ||
		containsWord(text, "run") || containsWord(text, "execute")
}

func hasUnresolvedReference(words []string) bool {
	for _, w := range words {
		switch strings.Trim(w, ",.!?") {
		case "it", "that", "them", "those", "these":
			return true
		}
	}
	return false
}

func isDestructiveWithoutTarget(text string, words []string) bool {
	if firstContained(text, destructiveVerbs) == "" {
		return false
	}
	if firstContained(text, universalScope) == "" {
		return false
	}
	if firstContained(text, scopeQualifiers) != "" {
		return false
	}
	return pathToken(words) == ""
}

func isProgrammingTask(text string) bool {
	if strings.HasPrefix(text, "explain") || strings.HasPrefix(text, "what is") ||
		strings.HasPrefix(text, "how does") {
		return true
	}
	if !strings.Contains(text, "write") && !strings.Contains(text, "implement") {
		return false
	}
	for _, noun := range []string{"script", "program", "function", "class", "code", "essay", "email"} {
		if containsWord(text, noun) {
			return true
		}
	}
	return false
}

// pathToken returns the first token that looks like a concrete filesystem
// target: a path separator, a dot extension, or a tilde prefix.
func pathToken(words []string) string {
	for _, w := range words {
		trimmed := strings.Trim(w, ",.!?")
		if strings.ContainsRune(trimmed, '/') || strings.HasPrefix(trimmed, "~") {
			return trimmed
		}
		if dot := strings.LastIndexByte(trimmed, '.'); dot > 0 && dot < len(trimmed)-1 {
			return trimmed
		}
	}
	return ""
}
