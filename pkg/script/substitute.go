package script

import (
	"regexp"
	"strings"

	"github.com/netscript/gencisco/pkg/devicecfg"
	"github.com/netscript/gencisco/pkg/errors"
)

var tokenPattern = regexp.MustCompile(`<[^<>]+?>`)

// Tokens returns the placeholder tokens of text in order of appearance.
func Tokens(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// TokenKeys returns the option keys a token may be stored under: the
// lower-cased name, then its hyphenated spelling when it has underscores.
func TokenKeys(token string) []string {
	key := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(token, "<"), ">"))
	keys := []string{key}
	if strings.Contains(key, "_") {
		keys = append(keys, strings.ReplaceAll(key, "_", "-"))
	}
	return keys
}

// Lookup resolves token against section of doc.
func Lookup(doc *devicecfg.Document, section, token string) (string, error) {
	keys := TokenKeys(token)
	for _, key := range keys {
		if value, ok := doc.Get(section, key); ok {
			return value, nil
		}
	}
	return "", errors.Newf(errors.ErrMissingOption, "missing option %q in section [%s] for token %s",
		keys[len(keys)-1], section, token).
		WithDetail("section", section).
		WithDetail("token", token)
}

// Substitute replaces every token of text with its value from section.
// All tokens are replaced in a single pass, so values are never expanded
// again even when they contain angle brackets.
func Substitute(text string, doc *devicecfg.Document, section string) (string, error) {
	tokens := Tokens(text)
	if len(tokens) == 0 {
		return text, nil
	}

	seen := make(map[string]bool, len(tokens))
	pairs := make([]string, 0, 2*len(tokens))
	for _, tok := range tokens {
		if seen[tok] {
			continue
		}
		seen[tok] = true

		value, err := Lookup(doc, section, tok)
		if err != nil {
			return "", err
		}
		pairs = append(pairs, tok, value)
	}

	return strings.NewReplacer(pairs...).Replace(text), nil
}

// Render substitutes the tokens of every template span with values from
// the span's own section. Text outside template spans is copied unchanged.
func (s *Script) Render(doc *devicecfg.Document) (string, error) {
	var b strings.Builder
	b.Grow(len(s.text))

	pos := 0
	for _, span := range s.spans {
		b.Write(s.text[pos:span.Start])
		chunk := string(s.text[span.Start:span.End])

		if span.Ref != nil {
			rendered, err := Substitute(chunk, doc, span.Ref.Section)
			if err != nil {
				if genErr, ok := err.(*errors.GenError); ok {
					genErr.WithDetail("template", span.Ref.Path)
				}
				return "", err
			}
			chunk = rendered
		}

		b.WriteString(chunk)
		pos = span.End
	}
	b.Write(s.text[pos:])

	return b.String(), nil
}

// Clean trims the indentation template concatenation leaves behind. Lines
// containing "copy" are kept verbatim.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "copy") {
			lines[i] = strings.TrimSpace(line)
		}
	}
	return strings.Join(lines, "\n")
}
