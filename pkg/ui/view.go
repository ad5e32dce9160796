package ui

import (
	"strings"

	"github.com/netscript/gencisco/pkg/generator"
	"github.com/netscript/gencisco/pkg/profiles"
	"github.com/netscript/gencisco/pkg/templates"
)

// ResultView is what a renderer shows about a finished run.
type ResultView struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Device      string `json:"device"`
	Templates   int    `json:"templates"`
}

// NewResultView summarizes a generator result.
func NewResultView(r *generator.Result) ResultView {
	return ResultView{
		Source:      r.Source,
		Destination: r.Destination,
		Device:      r.Device,
		Templates:   r.Templates,
	}
}

// SectionView describes one section of a profile.
type SectionView struct {
	Name    string   `json:"name"`
	Special bool     `json:"special"`
	Options []string `json:"options"`
}

// MergeView describes one merge pair.
type MergeView struct {
	Section  string   `json:"section"`
	Options  []string `json:"options"`
	Template string   `json:"template"`
}

// ProfileView is the display form of a device profile.
type ProfileView struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Match       []string      `json:"match"`
	Sections    []SectionView `json:"sections"`
	BoolKeys    []string      `json:"bool_keys"`
	MergePairs  []MergeView   `json:"merge_pairs"`
}

// NewProfileView describes p. When store is not nil each section lists the
// option templates found for it.
func NewProfileView(p *profiles.Profile, store *templates.Store) ProfileView {
	view := ProfileView{
		Name:        p.Name,
		Description: p.Description,
		Match:       p.Match,
		BoolKeys:    p.BoolKeys,
	}
	for _, section := range p.Sections {
		sv := SectionView{Name: section, Special: p.IsSpecial(section)}
		if store != nil {
			// A section without a template directory has no options to list
			sv.Options, _ = store.Options(p.TemplateRoot, profiles.OptionName(section))
		}
		view.Sections = append(view.Sections, sv)
	}
	for _, pair := range p.MergePairs {
		view.MergePairs = append(view.MergePairs, MergeView{
			Section:  pair.Section,
			Options:  []string{pair.First, pair.Second},
			Template: templates.CommonPath(pair.Template),
		})
	}
	return view
}

// Markdown renders the view as a markdown document.
func (v ProfileView) Markdown() string {
	var b strings.Builder

	b.WriteString("# " + v.Name + "\n\n")
	if v.Description != "" {
		b.WriteString(v.Description + "\n\n")
	}
	if len(v.Match) > 0 {
		b.WriteString("Detected from configuration files whose name contains " + codeList(v.Match, " or ") + ".\n\n")
	}

	b.WriteString("## Sections\n\n")
	b.WriteString("| Section | Mode | Options |\n|---|---|---|\n")
	for _, s := range v.Sections {
		mode := "configure terminal"
		if s.Special {
			mode = "enable"
		}
		options := "-"
		if len(s.Options) > 0 {
			options = strings.Join(s.Options, ", ")
		}
		b.WriteString("| " + s.Name + " | " + mode + " | " + options + " |\n")
	}

	if len(v.BoolKeys) > 0 {
		b.WriteString("\n## Switches\n\n")
		b.WriteString("Included only when set to `true`: " + codeList(v.BoolKeys, ", ") + ".\n")
	}

	if len(v.MergePairs) > 0 {
		b.WriteString("\n## Combined options\n\n")
		b.WriteString("| Section | Options | Template |\n|---|---|---|\n")
		for _, m := range v.MergePairs {
			b.WriteString("| " + m.Section + " | " + strings.Join(m.Options, " + ") + " | `" + m.Template + "` |\n")
		}
	}

	return b.String()
}

func codeList(items []string, sep string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "`" + item + "`"
	}
	return strings.Join(quoted, sep)
}
