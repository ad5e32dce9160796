// Package profiles describes the device types gencisco can script.
//
// A Profile is plain data: the sections a device knows, which of them run
// without entering configuration mode, which options are boolean switches
// and which option pairs collapse into one composite command. Profiles are
// loaded from configuration (see pkg/config) and never change afterwards.
package profiles

import (
	"path"
	"strings"

	"github.com/netscript/gencisco/pkg/errors"
)

// MergePair names two options of a section that are rendered by a single
// composite template when both are selected next to each other.
type MergePair struct {
	Section  string `koanf:"section"`
	First    string `koanf:"first"`
	Second   string `koanf:"second"`
	Template string `koanf:"template"`
}

// Matches reports whether a and b are the two halves of the pair, in any order.
func (m MergePair) Matches(section, a, b string) bool {
	if OptionName(section) != OptionName(m.Section) {
		return false
	}
	a, b = OptionName(a), OptionName(b)
	first, second := OptionName(m.First), OptionName(m.Second)
	return (a == first && b == second) || (a == second && b == first)
}

// Profile is the static description of one device type.
type Profile struct {
	Name         string      `koanf:"name"`
	Description  string      `koanf:"description"`
	TemplateRoot string      `koanf:"template_root"`
	Match        []string    `koanf:"match"`
	Sections     []string    `koanf:"sections"`
	Special      []string    `koanf:"special"`
	BoolKeys     []string    `koanf:"bool_keys"`
	MergePairs   []MergePair `koanf:"merge_pairs"`
}

// Knows reports whether section is one of the profile's sections.
func (p *Profile) Knows(section string) bool {
	return contains(p.Sections, section)
}

// IsSpecial reports whether section is assembled without configuration mode.
func (p *Profile) IsSpecial(section string) bool {
	return contains(p.Special, section)
}

// IsBool reports whether option is gated by a literal "true".
func (p *Profile) IsBool(option string) bool {
	return contains(p.BoolKeys, option)
}

// MergePair returns the pair covering a and b in section, if any.
func (p *Profile) MergePair(section, a, b string) (MergePair, bool) {
	for _, pair := range p.MergePairs {
		if pair.Matches(section, a, b) {
			return pair, true
		}
	}
	return MergePair{}, false
}

// TemplatePath is the store path of the template for section.option.
func (p *Profile) TemplatePath(section, option string) string {
	return path.Join(p.TemplateRoot, OptionName(section), OptionName(option)+".txt")
}

// Validate checks the tables for internal consistency.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New(errors.ErrProfileInvalid, "profile has no name")
	}
	if p.TemplateRoot == "" {
		return errors.Newf(errors.ErrProfileInvalid, "profile %s has no template root", p.Name)
	}
	if len(p.Sections) == 0 {
		return errors.Newf(errors.ErrProfileInvalid, "profile %s has no sections", p.Name)
	}
	for _, s := range p.Special {
		if !p.Knows(s) {
			return errors.Newf(errors.ErrProfileInvalid,
				"profile %s: special section %q is not a known section", p.Name, s)
		}
	}
	for _, pair := range p.MergePairs {
		if !p.Knows(pair.Section) {
			return errors.Newf(errors.ErrProfileInvalid,
				"profile %s: merge pair section %q is not a known section", p.Name, pair.Section)
		}
		if pair.First == "" || pair.Second == "" || pair.Template == "" {
			return errors.Newf(errors.ErrProfileInvalid,
				"profile %s: incomplete merge pair in section %q", p.Name, pair.Section)
		}
		if OptionName(pair.First) == OptionName(pair.Second) {
			return errors.Newf(errors.ErrProfileInvalid,
				"profile %s: merge pair %q pairs an option with itself", p.Name, pair.Template)
		}
	}
	return nil
}

// OptionName is the canonical spelling of a section or option: lower case,
// hyphens instead of underscores.
func OptionName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

func contains(list []string, name string) bool {
	name = OptionName(name)
	for _, item := range list {
		if OptionName(item) == name {
			return true
		}
	}
	return false
}
