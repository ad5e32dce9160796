package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/netscript/gencisco/pkg/errors"
)

// textRenderer writes plain text without colors or styling
type textRenderer struct {
	output io.Writer
}

func (r *textRenderer) RenderResult(result ResultView) error {
	_, err := fmt.Fprintf(r.output, "Wrote %s (%s, %d templates)\n", result.Destination, result.Device, result.Templates)
	return err
}

func (r *textRenderer) RenderProfiles(list []ProfileView) error {
	for _, p := range list {
		sections := make([]string, len(p.Sections))
		for i, s := range p.Sections {
			sections[i] = s.Name
		}
		if _, err := fmt.Fprintf(r.output, "%s\t%s\t%s\n", p.Name, strings.Join(sections, ","), p.Description); err != nil {
			return err
		}
	}
	return nil
}

func (r *textRenderer) RenderProfile(profile ProfileView) error {
	_, err := io.WriteString(r.output, profile.Markdown())
	return err
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %s\n", errorLine(err))
	if werr != nil {
		return werr
	}
	for _, line := range detailLines(err) {
		if _, werr := fmt.Fprintf(r.output, "  %s\n", line); werr != nil {
			return werr
		}
	}
	return nil
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// errorLine is the user facing message of err, without the code prefix.
func errorLine(err error) string {
	var genErr *errors.GenError
	if errors.As(err, &genErr) {
		if genErr.Wrapped != nil {
			return fmt.Sprintf("%s: %v", genErr.Message, genErr.Wrapped)
		}
		return genErr.Message
	}
	return err.Error()
}

// detailLines lists the error details as sorted key: value lines.
func detailLines(err error) []string {
	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%s: %v", k, details[k])
	}
	return lines
}
