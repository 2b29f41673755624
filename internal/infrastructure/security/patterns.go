package security

import "github.com/doeshing/shellsense/internal/domain"

// BuiltinPatterns returns the built-in danger pattern table. Every entry
// carries a rationale for audit output. The table is data, compiled once
// at process start by NewLibrary.
func BuiltinPatterns() []domain.PatternSpec {
	return []domain.PatternSpec{
		// Critical: filesystem destruction
		{
			Name:      "recursive root deletion",
			Kind:      domain.DetectRegex,
			Rule:      `rm\s+(-[a-zA-Z]*[rR][a-zA-Z]*|--recursive)\s+(--no-preserve-root\s+)?(/|/\*)(\s|$)`,
			Tier:      "critical",
			Rationale: "Recursive deletion from the filesystem root destroys the operating system.",
		},
		{
			Name:      "home directory deletion",
			Kind:      domain.DetectRegex,
			Rule:      `rm\s+(-[a-zA-Z]*[rR][a-zA-Z]*|--recursive)\s+(\$HOME|~)(/\*)?(\s|$)`,
			Tier:      "critical",
			Rationale: "Recursive deletion of the home directory destroys all user data.",
		},
		{
			Name:      "disk overwrite",
			Kind:      domain.DetectRegex,
			Rule:      `dd\s+.*of=/dev/(sd[a-z]|hd[a-z]|nvme|disk)`,
			Tier:      "critical",
			Rationale: "dd writing to a block device overwrites the disk contents irrecoverably.",
		},
		{
			Name:      "filesystem format",
			Kind:      domain.DetectRegex,
			Rule:      `mkfs(\.\w+)?\s+`,
			Tier:      "critical",
			Rationale: "Creating a new filesystem destroys all data on the target device.",
		},
		{
			Name:      "block device overwrite",
			Kind:      domain.DetectPredicate,
			Rule:      "redirect_to_device",
			Tier:      "critical",
			Rationale: "Redirecting output to a raw block device corrupts the disk.",
		},
		{
			Name:      "secure disk erase",
			Kind:      domain.DetectRegex,
			Rule:      `shred\s+(-\S+\s+)*/dev/`,
			Tier:      "critical",
			Rationale: "shred on a device node irrecoverably destroys its contents.",
		},
		// Critical: system crash
		{
			Name:      "fork bomb",
			Kind:      domain.DetectRegex,
			Rule:      `:\(\)\s*\{\s*:\s*\|\s*:\s*&\s*\}\s*;\s*:`,
			Tier:      "critical",
			Shell:     "bash",
			Rationale: "Fork bomb: exponential process creation will freeze the system.",
		},
		// Critical: remote code execution
		{
			Name:      "download and execute as root",
			Kind:      domain.DetectPredicate,
			Rule:      "pipe_to_root_shell",
			Tier:      "critical",
			Rationale: "Piping a remote script into a root shell executes unreviewed code with full privileges.",
		},
		{
			Name:      "netcat shell binding",
			Kind:      domain.DetectPredicate,
			Rule:      "netcat_shell_binding",
			Tier:      "critical",
			Rationale: "Binding a shell to a network socket opens a remote backdoor.",
		},
		// Critical: Windows drive destruction
		{
			Name:      "windows drive deletion",
			Kind:      domain.DetectRegex,
			Rule:      `Remove-Item\s+(-\S+\s+)*[A-Za-z]:\\`,
			Tier:      "critical",
			Shell:     "powershell",
			Rationale: "Recursive removal at a drive root destroys the volume contents.",
		},
		{
			Name:      "drive format",
			Kind:      domain.DetectRegex,
			Rule:      `(^|\s)format\s+[A-Za-z]:`,
			Tier:      "critical",
			Shell:     "cmd",
			Rationale: "Formatting a drive destroys all data on it.",
		},
		// High: privilege escalation and remote code
		{
			Name:      "privilege escalation shell",
			Kind:      domain.DetectRegex,
			Rule:      `sudo\s+(su\b|-i\b|(ba|z)?sh\b)`,
			Tier:      "high",
			Rationale: "Opening an unrestricted root shell removes every safety boundary.",
		},
		{
			Name:      "download and execute",
			Kind:      domain.DetectPredicate,
			Rule:      "pipe_to_shell",
			Tier:      "high",
			Rationale: "Piping a downloaded script straight into a shell executes unreviewed remote code.",
		},
		{
			Name:      "setuid bit grant",
			Kind:      domain.DetectRegex,
			Rule:      `chmod\s+\S*u\+s`,
			Tier:      "high",
			Rationale: "Adding the setuid bit lets any user run the file with its owner's privileges.",
		},
		// High: system-wide modification
		{
			Name:      "system-wide permission change",
			Kind:      domain.DetectRegex,
			Rule:      `chmod\s+(-R\s+)?777\b`,
			Tier:      "high",
			Rationale: "World-writable permissions let any process modify the files.",
		},
		{
			Name:      "system config overwrite",
			Kind:      domain.DetectRegex,
			Rule:      `>\s*/etc/`,
			Tier:      "high",
			Rationale: "Redirecting output into /etc overwrites system configuration.",
		},
		{
			Name:      "cron table removal",
			Kind:      domain.DetectRegex,
			Rule:      `crontab\s+-r`,
			Tier:      "high",
			Rationale: "crontab -r deletes every scheduled job without confirmation.",
		},
		{
			Name:      "privileged recursive deletion",
			Kind:      domain.DetectRegex,
			Rule:      `sudo\s+rm\s+(-[a-zA-Z]*[rR][a-zA-Z]*|--recursive)\b`,
			Tier:      "high",
			Rationale: "Recursive deletion with root privileges bypasses filesystem protections.",
		},
		{
			Name:      "execution policy bypass",
			Kind:      domain.DetectRegex,
			Rule:      `Set-ExecutionPolicy\s+(Unrestricted|Bypass)`,
			Tier:      "high",
			Shell:     "powershell",
			Rationale: "Disabling the execution policy removes script-signing protection.",
		},
		// Moderate: broad but recoverable changes
		{
			Name:      "recursive ownership change",
			Kind:      domain.DetectRegex,
			Rule:      `chown\s+-R\s+`,
			Tier:      "moderate",
			Rationale: "Recursive ownership changes are hard to undo across a tree.",
		},
		{
			Name:      "force kill",
			Kind:      domain.DetectRegex,
			Rule:      `(kill|killall|pkill)\s+-9\b`,
			Tier:      "moderate",
			Rationale: "SIGKILL gives processes no chance to clean up.",
		},
		{
			Name:      "firewall flush",
			Kind:      domain.DetectRegex,
			Rule:      `iptables\s+-F\b`,
			Tier:      "moderate",
			Rationale: "Flushing firewall rules leaves the host unprotected.",
		},
		{
			Name:      "find with delete",
			Kind:      domain.DetectRegex,
			Rule:      `find\s+.*-delete\b`,
			Tier:      "moderate",
			Rationale: "find -delete removes every match with no per-file confirmation.",
		},
	}
}

// DefaultAllowlist lists command prefixes that short-circuit to Safe.
func DefaultAllowlist() []string {
	return []string{"ls", "pwd", "echo", "cat", "grep", "git status", "whoami", "date"}
}
