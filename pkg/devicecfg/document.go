package devicecfg

import "strings"

// Option is a single key/value pair of a section.
type Option struct {
	Key   string
	Value string
}

// Section is a named, ordered group of options.
type Section struct {
	Name    string
	Options []Option
}

// Get returns the value stored under key.
func (s *Section) Get(key string) (string, bool) {
	key = NormalizeKey(key)
	for _, opt := range s.Options {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return "", false
}

// Keys returns the option keys in file order.
func (s *Section) Keys() []string {
	keys := make([]string, len(s.Options))
	for i, opt := range s.Options {
		keys[i] = opt.Key
	}
	return keys
}

// set overwrites an existing key in place, keeping its original position.
func (s *Section) set(key, value string) {
	for i := range s.Options {
		if s.Options[i].Key == key {
			s.Options[i].Value = value
			return
		}
	}
	s.Options = append(s.Options, Option{Key: key, Value: value})
}

// Document is a parsed device configuration.
type Document struct {
	// Source is the path the document was loaded from, if any.
	Source   string
	Sections []*Section
}

// NewDocument returns an empty document.
func NewDocument(source string) *Document {
	return &Document{Source: source}
}

// Section returns the named section.
func (d *Document) Section(name string) (*Section, bool) {
	name = NormalizeKey(name)
	for _, s := range d.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Has reports whether the document contains the named section.
func (d *Document) Has(name string) bool {
	_, ok := d.Section(name)
	return ok
}

// Get looks up section.key.
func (d *Document) Get(section, key string) (string, bool) {
	s, ok := d.Section(section)
	if !ok {
		return "", false
	}
	return s.Get(key)
}

// SectionNames returns section names in file order.
func (d *Document) SectionNames() []string {
	names := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		names[i] = s.Name
	}
	return names
}

// AddSection appends an empty section, or returns the existing one.
func (d *Document) AddSection(name string) *Section {
	name = NormalizeKey(name)
	if s, ok := d.Section(name); ok {
		return s
	}
	s := &Section{Name: name}
	d.Sections = append(d.Sections, s)
	return s
}

// Set stores section.key = value, creating the section if needed.
func (d *Document) Set(section, key, value string) {
	d.AddSection(section).set(NormalizeKey(key), value)
}

// NormalizeKey lower-cases and trims a section or option name.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
