package profiles

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/netscript/gencisco/pkg/errors"
)

// Set is an immutable collection of profiles keyed by name.
type Set struct {
	profiles map[string]*Profile
	names    []string
}

// NewSet validates the given profiles. Map keys become profile names when
// the profile does not carry one.
func NewSet(defs map[string]Profile) (*Set, error) {
	s := &Set{profiles: make(map[string]*Profile, len(defs))}

	for key, def := range defs {
		p := def
		if p.Name == "" {
			p.Name = key
		}
		p.Name = OptionName(p.Name)
		if len(p.Match) == 0 {
			p.Match = []string{p.Name}
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := s.profiles[p.Name]; exists {
			return nil, errors.Newf(errors.ErrProfileInvalid, "profile %q is defined twice", p.Name)
		}
		s.profiles[p.Name] = &p
		s.names = append(s.names, p.Name)
	}

	sort.Strings(s.names)
	return s, nil
}

// Names returns the profile names in sorted order.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Get returns the named profile.
func (s *Set) Get(name string) (*Profile, error) {
	p, ok := s.profiles[OptionName(name)]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownDevice, "unknown device type %q", name).
			WithDetail("known", s.Names())
	}
	return p, nil
}

// Detect picks the profile whose match strings occur in the base name of
// source, mirroring how configuration files are conventionally named
// (router.ini, core-switch.yaml).
func (s *Set) Detect(source string) (*Profile, error) {
	base := strings.ToLower(filepath.Base(source))

	var found *Profile
	for _, name := range s.names {
		p := s.profiles[name]
		for _, m := range p.Match {
			if m != "" && strings.Contains(base, strings.ToLower(m)) {
				if found != nil && found != p {
					return nil, errors.Newf(errors.ErrUnknownDevice,
						"ambiguous configuration file name %s (matches %s and %s)", source, found.Name, p.Name)
				}
				found = p
				break
			}
		}
	}

	if found == nil {
		return nil, errors.Newf(errors.ErrUnknownDevice, "invalid configuration file (%s)", source).
			WithDetail("known", s.Names())
	}
	return found, nil
}

// Resolve returns the named profile, or detects one from source when name is empty.
func (s *Set) Resolve(name, source string) (*Profile, error) {
	if name != "" {
		return s.Get(name)
	}
	return s.Detect(source)
}
