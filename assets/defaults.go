package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration. It is
// written verbatim to ~/.shellsense/config.yaml on first run so users
// edit a commented file instead of a bare marshal dump.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte
