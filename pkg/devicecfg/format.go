package devicecfg

import (
	"path/filepath"
	"strings"
)

// Format identifies a configuration file syntax.
type Format string

const (
	FormatINI  Format = "ini"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the parser from the file extension. Anything unknown is
// read as INI, the historical default.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatINI
	}
}

// Extension returns the canonical file extension, dot included.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatTOML:
		return ".toml"
	default:
		return ".ini"
	}
}
