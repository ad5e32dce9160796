package ui_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/netscript/gencisco/pkg/errors"
	"github.com/netscript/gencisco/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStyles(t *testing.T) {
	styles := ui.DefaultStyles(lipgloss.NewRenderer(&bytes.Buffer{}))

	for _, name := range []string{"Error", "ErrorDetail", "Success", "Info", "Muted", "Path"} {
		assert.Contains(t, styles, name)
	}
	assert.True(t, styles.Get("Error").GetBold())
	assert.Equal(t, "text", styles.Get("Missing").Render("text"))
}

func TestLoadStyles(t *testing.T) {
	data := []byte(`
colors:
  accent:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  Heading:
    italic: true
    foreground: accent
`)
	styles, err := ui.LoadStyles(data, lipgloss.NewRenderer(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.True(t, styles.Get("Heading").GetItalic())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}, styles.Get("Heading").GetForeground())

	_, err = ui.LoadStyles([]byte("styles: [broken"), lipgloss.NewRenderer(&bytes.Buffer{}))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
