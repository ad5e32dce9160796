// Package ui renders command output in different formats: rich terminal
// output (lipgloss, pterm, glamour), plain text and JSON.
package ui

import (
	"io"
	"os"

	"github.com/netscript/gencisco/pkg/errors"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult reports a finished generation run
	RenderResult(result ResultView) error

	// RenderProfiles lists device profiles
	RenderProfiles(list []ProfileView) error

	// RenderProfile describes one device profile
	RenderProfile(profile ProfileView) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto inspects output when it is a file and otherwise renders for a
// terminal.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatTerminal, output)
	case FormatTerminal:
		return newTerminalRenderer(output), nil
	case FormatText:
		return &textRenderer{output: output}, nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
