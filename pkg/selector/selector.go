// Package selector decides which templates a configuration needs, and in
// which order.
package selector

import (
	"github.com/netscript/gencisco/pkg/devicecfg"
	"github.com/netscript/gencisco/pkg/errors"
	"github.com/netscript/gencisco/pkg/logging"
	"github.com/netscript/gencisco/pkg/profiles"
	"github.com/netscript/gencisco/pkg/templates"
)

// PasswordSection is the configuration section feeding the trailing
// enable password step.
const PasswordSection = "password"

// Select returns the ordered template references for doc.
//
// Sections are taken in document order, skipping the ones the profile does
// not know. Within a section, options follow document order: boolean
// options need the literal value "true", all others a non-empty value.
// Adjacent halves of a merge pair collapse into their composite template.
// The shared password template (when the document has a password) and the
// save template close the sequence.
func Select(p *profiles.Profile, doc *devicecfg.Document) ([]templates.Ref, error) {
	logger := logging.GetLogger("selector")

	var refs []templates.Ref
	for _, section := range doc.Sections {
		if !p.Knows(section.Name) {
			logger.Debug().Str("section", section.Name).Str("device", p.Name).Msg("Skipping unknown section")
			continue
		}

		selected := selectOptions(p, section)
		refs = append(refs, mergePairs(p, section.Name, selected)...)
	}

	if len(refs) == 0 {
		return nil, errors.Newf(errors.ErrNoSections, "no sections in configuration file (%s)", doc.Source).
			WithDetail("device", p.Name).
			WithDetail("known", p.Sections)
	}

	if value, ok := doc.Get(PasswordSection, "password"); ok && value != "" {
		refs = append(refs, templates.CommonRef(templates.Password, PasswordSection))
	}
	refs = append(refs, templates.CommonRef(templates.Save, ""))

	logger.Info().
		Str("device", p.Name).
		Int("templates", len(refs)).
		Msg("Selected templates")

	return refs, nil
}

// Included reports whether an option produces a template.
func Included(p *profiles.Profile, key, value string) bool {
	if p.IsBool(key) {
		return value == "true"
	}
	return value != ""
}

func selectOptions(p *profiles.Profile, section *devicecfg.Section) []templates.Ref {
	var refs []templates.Ref
	for _, opt := range section.Options {
		if !Included(p, opt.Key, opt.Value) {
			continue
		}
		// Section and option keep the document spelling for token lookups;
		// the path uses the canonical hyphenated file names.
		ref := templates.OptionRef(p.Name, p.TemplateRoot, section.Name, opt.Key)
		ref.Path = p.TemplatePath(section.Name, opt.Key)
		refs = append(refs, ref)
	}
	return refs
}

func mergePairs(p *profiles.Profile, section string, refs []templates.Ref) []templates.Ref {
	merged := make([]templates.Ref, 0, len(refs))
	for i := 0; i < len(refs); i++ {
		if i+1 < len(refs) {
			first, second := refs[i].Option, refs[i+1].Option
			if pair, ok := p.MergePair(section, first, second); ok {
				merged = append(merged, templates.CompositeRef(p.Name, section, pair.Template, first, second))
				i++
				continue
			}
		}
		merged = append(merged, refs[i])
	}
	return merged
}
