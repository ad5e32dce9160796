package devicecfg

import (
	"strings"

	"github.com/netscript/gencisco/pkg/errors"
	"gopkg.in/yaml.v3"
)

// parseYAML reads a mapping of section -> mapping of key -> scalar.
// The node API is used instead of map decoding so file order survives.
func parseYAML(data []byte, doc *Document) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid YAML document")
	}

	// Empty file
	if len(root.Content) == 0 {
		return nil
	}

	top := resolveAlias(root.Content[0])
	if isNull(top) {
		return nil
	}
	if top.Kind != yaml.MappingNode {
		return errors.Newf(errors.ErrConfigParse,
			"line %d: top level must be a mapping of sections", top.Line)
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		nameNode, body := top.Content[i], resolveAlias(top.Content[i+1])
		section := doc.AddSection(nameNode.Value)

		if isNull(body) {
			continue
		}
		if body.Kind != yaml.MappingNode {
			return errors.Newf(errors.ErrConfigParse,
				"line %d: section %q must be a mapping", body.Line, nameNode.Value)
		}

		for j := 0; j+1 < len(body.Content); j += 2 {
			keyNode, valueNode := body.Content[j], resolveAlias(body.Content[j+1])
			value, err := yamlScalar(valueNode)
			if err != nil {
				return errors.Wrapf(err, errors.ErrConfigParse,
					"line %d: option %s.%s", valueNode.Line, section.Name, keyNode.Value)
			}
			section.set(NormalizeKey(keyNode.Value), value)
		}
	}

	return nil
}

func yamlScalar(node *yaml.Node) (string, error) {
	switch {
	case isNull(node):
		return "", nil
	case node.Kind != yaml.ScalarNode:
		return "", errors.New(errors.ErrConfigParse, "nested values are not supported")
	case node.ShortTag() == "!!bool":
		// True/TRUE read the same as true
		return strings.ToLower(node.Value), nil
	default:
		return node.Value, nil
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}
