package filesystem

import "os"

// UserHomeDir returns the user home directory, falling back to the current
// directory when it cannot be resolved.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
