package devicecfg

import (
	"strings"

	"github.com/netscript/gencisco/pkg/errors"
	"gopkg.in/ini.v1"
)

// parseINI reads "[section]" / "key = value" text.
func parseINI(data []byte, doc *Document) error {
	file, err := ini.LoadSources(ini.LoadOptions{
		Insensitive:         true,
		IgnoreInlineComment: true,
		AllowShadows:        false,
	}, data)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid INI document")
	}

	for _, sec := range file.Sections() {
		if strings.EqualFold(sec.Name(), ini.DefaultSection) {
			// Keys outside any section have nowhere to go
			if len(sec.Keys()) > 0 {
				return errors.Newf(errors.ErrConfigParse,
					"option %q appears before any section header", sec.Keys()[0].Name())
			}
			continue
		}

		section := doc.AddSection(sec.Name())
		for _, key := range sec.Keys() {
			section.set(NormalizeKey(key.Name()), strings.TrimSpace(key.String()))
		}
	}

	return nil
}
