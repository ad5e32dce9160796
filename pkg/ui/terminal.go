package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/netscript/gencisco/pkg/logging"
	"github.com/pterm/pterm"
)

// terminalRenderer writes styled output for interactive terminals
type terminalRenderer struct {
	output io.Writer
	styles Styles
	// Markdown style for glamour: "auto", "dark", "light", "notty" or a path
	markdownStyle string
	width         int
}

func newTerminalRenderer(w io.Writer) *terminalRenderer {
	return &terminalRenderer{
		output:        w,
		styles:        DefaultStyles(lipgloss.NewRenderer(w)),
		markdownStyle: "auto",
		width:         100,
	}
}

func (r *terminalRenderer) RenderResult(result ResultView) error {
	line := fmt.Sprintf("%s %s %s",
		r.styles.Get("Success").Render("✓ Wrote"),
		r.styles.Get("Path").Render(result.Destination),
		r.styles.Get("Muted").Render(fmt.Sprintf("(%s, %d templates)", result.Device, result.Templates)),
	)
	_, err := fmt.Fprintln(r.output, line)
	return err
}

func (r *terminalRenderer) RenderProfiles(list []ProfileView) error {
	data := pterm.TableData{{"Device", "Sections", "Detected from", "Description"}}
	for _, p := range list {
		sections := make([]string, len(p.Sections))
		for i, s := range p.Sections {
			sections[i] = s.Name
		}
		data = append(data, []string{p.Name, strings.Join(sections, ", "), strings.Join(p.Match, ", "), p.Description})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, table)
	return err
}

func (r *terminalRenderer) RenderProfile(profile ProfileView) error {
	_, err := io.WriteString(r.output, r.renderMarkdown(profile.Markdown()))
	return err
}

// renderMarkdown falls back to the raw markdown when glamour fails.
func (r *terminalRenderer) renderMarkdown(content string) string {
	logger := logging.GetLogger("ui.terminal")

	var options []glamour.TermRendererOption
	if r.markdownStyle != "" && r.markdownStyle != "auto" {
		options = append(options, glamour.WithStylePath(r.markdownStyle))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.width > 0 {
		options = append(options, glamour.WithWordWrap(r.width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		logger.Debug().Err(err).Msg("Markdown renderer unavailable")
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		logger.Debug().Err(err).Msg("Markdown rendering failed")
		return content
	}
	return rendered
}

func (r *terminalRenderer) RenderError(err error) error {
	line := r.styles.Get("Error").Render("Error:") + " " + r.styles.Get("ErrorDetail").Render(errorLine(err))
	if _, werr := fmt.Fprintln(r.output, line); werr != nil {
		return werr
	}
	for _, detail := range detailLines(err) {
		if _, werr := fmt.Fprintln(r.output, "  "+r.styles.Get("Muted").Render(detail)); werr != nil {
			return werr
		}
	}
	return nil
}

func (r *terminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.styles.Get("Info").Render(msg))
	return err
}
