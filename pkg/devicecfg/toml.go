package devicecfg

import (
	"strings"

	"github.com/netscript/gencisco/pkg/errors"
	"github.com/pelletier/go-toml/v2/unstable"
)

// parseTOML reads "[section]" tables of scalar keys. The expression-level
// parser is used because decoding into a map loses key order.
func parseTOML(data []byte, doc *Document) error {
	var p unstable.Parser
	p.Reset(data)

	var current *Section
	for p.NextExpression() {
		expr := p.Expression()

		switch expr.Kind {
		case unstable.Table:
			name, err := singleKey(expr)
			if err != nil {
				return err
			}
			current = doc.AddSection(name)

		case unstable.KeyValue:
			key, err := singleKey(expr)
			if err != nil {
				return err
			}
			if current == nil {
				return errors.Newf(errors.ErrConfigParse,
					"option %q appears before any section header", key)
			}
			value, err := tomlScalar(expr.Value())
			if err != nil {
				return errors.Wrapf(err, errors.ErrConfigParse, "option %s.%s", current.Name, key)
			}
			current.set(NormalizeKey(key), value)

		case unstable.ArrayTable:
			return errors.New(errors.ErrConfigParse, "arrays of tables are not supported")
		}
	}

	if err := p.Error(); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid TOML document")
	}
	return nil
}

// singleKey rejects dotted keys: documents are two levels deep.
func singleKey(expr *unstable.Node) (string, error) {
	var parts []string
	it := expr.Key()
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	if len(parts) != 1 {
		return "", errors.Newf(errors.ErrConfigParse,
			"dotted key %q is not supported", strings.Join(parts, "."))
	}
	return parts[0], nil
}

func tomlScalar(node *unstable.Node) (string, error) {
	switch node.Kind {
	case unstable.Array, unstable.InlineTable:
		return "", errors.New(errors.ErrConfigParse, "nested values are not supported")
	default:
		// String nodes carry the unescaped text, every other scalar its literal
		return string(node.Data), nil
	}
}
