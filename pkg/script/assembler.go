package script

import (
	"strings"

	"github.com/netscript/gencisco/pkg/logging"
	"github.com/netscript/gencisco/pkg/profiles"
	"github.com/netscript/gencisco/pkg/templates"
	"github.com/rs/zerolog"
)

// Span is the byte range one template occupies in the assembled text.
type Span struct {
	// Ref is nil for headers and mode boilerplate, which carry no tokens.
	Ref   *templates.Ref
	Start int
	End   int
}

// Script is assembled text plus the arena of spans that produced it.
type Script struct {
	text  []byte
	spans []Span
}

// Text returns the assembled, unsubstituted text.
func (s *Script) Text() string {
	return string(s.text)
}

// Spans returns the recorded spans in write order.
func (s *Script) Spans() []Span {
	return s.spans
}

// Content returns the text covered by span.
func (s *Script) Content(span Span) string {
	return string(s.text[span.Start:span.End])
}

// Options control the generated boilerplate.
type Options struct {
	Delimiter string
	Width     int
	Separator string
}

// DefaultOptions matches the classic IOS script layout.
func DefaultOptions() Options {
	return Options{
		Delimiter: DefaultDelimiter,
		Width:     DefaultWidth,
		Separator: "!",
	}
}

// Assembler writes templates into a Script, inserting section headers and
// the mode transitions each section needs.
type Assembler struct {
	store   *templates.Store
	profile *profiles.Profile
	opts    Options
	logger  zerolog.Logger

	mode    Mode
	section string
	script  *Script
}

// NewAssembler returns an assembler for one device profile.
func NewAssembler(store *templates.Store, profile *profiles.Profile, opts Options) *Assembler {
	return &Assembler{
		store:   store,
		profile: profile,
		opts:    opts,
		logger:  logging.GetLogger("script.assembler"),
	}
}

// Mode returns the mode the script written so far leaves the device in.
func (a *Assembler) Mode() Mode {
	return a.mode
}

// Assemble writes refs in order. A section boundary closes the previous
// section back to user mode and opens the next one with a header, enable
// and, unless the section is special, configure terminal. The shared
// password template is written in configuration mode; the save template
// is written after returning to user mode.
func (a *Assembler) Assemble(refs []templates.Ref) (*Script, error) {
	a.mode = ModeUser
	a.section = ""
	a.script = &Script{}

	for i := range refs {
		ref := refs[i]

		switch {
		case ref.Kind == templates.KindCommon && ref.Option == templates.Save:
			if err := a.moveTo(ModeUser); err != nil {
				return nil, err
			}
		case ref.Kind == templates.KindCommon:
			if err := a.moveTo(ModeConfigured); err != nil {
				return nil, err
			}
		case ref.Section != a.section:
			if err := a.openSection(ref.Section); err != nil {
				return nil, err
			}
		}

		if err := a.writeTemplate(&ref); err != nil {
			return nil, err
		}
	}

	if err := a.moveTo(ModeUser); err != nil {
		return nil, err
	}

	a.logger.Debug().
		Int("templates", len(refs)).
		Int("spans", len(a.script.spans)).
		Int("bytes", len(a.script.text)).
		Msg("Assembled script")

	return a.script, nil
}

func (a *Assembler) openSection(section string) error {
	if a.section != "" {
		if err := a.moveTo(ModeUser); err != nil {
			return err
		}
	}
	a.section = section

	a.writeLine(Header(SectionTitle(section), a.opts.Delimiter, a.opts.Width))
	a.writeSeparator()

	target := ModeConfigured
	if a.profile.IsSpecial(section) {
		target = ModeEnabled
	}
	return a.moveTo(target)
}

// moveTo writes the boilerplate of every transition between the current
// mode and target.
func (a *Assembler) moveTo(target Mode) error {
	for _, t := range a.mode.PathTo(target) {
		next, err := a.mode.Apply(t)
		if err != nil {
			return err
		}
		content, err := a.store.ReadPath(templates.CommonPath(t.Template()))
		if err != nil {
			return err
		}
		a.append(nil, content)
		a.mode = next
	}
	return nil
}

func (a *Assembler) writeTemplate(ref *templates.Ref) error {
	content, err := a.store.Read(*ref)
	if err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		a.logger.Debug().Str("template", ref.Path).Msg("Skipping blank template")
		return nil
	}
	a.logger.Trace().Str("template", ref.Path).Str("mode", a.mode.String()).Msg("Writing template")
	a.append(ref, content)
	return nil
}

// append writes content as a span, then the separator line.
func (a *Assembler) append(ref *templates.Ref, content string) {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	start := len(a.script.text)
	a.script.text = append(a.script.text, content...)
	a.script.spans = append(a.script.spans, Span{Ref: ref, Start: start, End: len(a.script.text)})
	a.writeSeparator()
}

func (a *Assembler) writeLine(line string) {
	a.script.text = append(a.script.text, line...)
	a.script.text = append(a.script.text, '\n')
}

func (a *Assembler) writeSeparator() {
	if a.opts.Separator != "" {
		a.writeLine(a.opts.Separator)
	}
}
