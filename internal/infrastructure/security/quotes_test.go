package security

import "testing"

func TestMaskQuoted(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
	}{
		{
			name:    "no quotes untouched",
			command: "ls -la /tmp",
			want:    "ls -la /tmp",
		},
		{
			name:    "single quoted interior blanked",
			command: "echo 'rm -rf /' > notes.md",
			want:    "echo '        ' > notes.md",
		},
		{
			name:    "double quoted interior blanked",
			command: `grep "dd if=" log.txt`,
			want:    `grep "      " log.txt`,
		},
		{
			name:    "nested other quote stays masked",
			command: `echo "it's fine"`,
			want:    `echo "         "`,
		},
		{
			name:    "unterminated quote left unmasked",
			command: "echo 'rm -rf /",
			want:    "echo 'rm -rf /",
		},
		{
			name:    "escaped quote does not open a region",
			command: `echo \' rm -rf /tmp/x`,
			want:    `echo \' rm -rf /tmp/x`,
		},
		{
			name:    "escaped closing quote inside double quotes",
			command: `echo "a \" b" tail`,
			want:    `echo "      " tail`,
		},
		{
			name:    "two balanced regions",
			command: `echo 'one' "two" end`,
			want:    `echo '   ' "   " end`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskQuoted(tt.command); got != tt.want {
				t.Errorf("maskQuoted(%q) = %q, want %q", tt.command, got, tt.want)
			}
		})
	}
}
