// pkg/script/substitute_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: in-memory and embedded template stores
// PURPOSE: Test token lookup, span-scoped rendering and cleanup

package script

import (
	"strings"
	"testing"

	"github.com/netscript/gencisco/pkg/devicecfg"
	"github.com/netscript/gencisco/pkg/errors"
	"github.com/netscript/gencisco/pkg/profiles"
	"github.com/netscript/gencisco/pkg/templates"
	"github.com/netscript/gencisco/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(values map[string]map[string]string, order ...string) *devicecfg.Document {
	doc := devicecfg.NewDocument("test.ini")
	for _, section := range order {
		for key, value := range values[section] {
			doc.Set(section, key, value)
		}
	}
	return doc
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"none", "no ip domain-lookup", nil},
		{"single", "hostname <HOSTNAME>", []string{"<HOSTNAME>"}},
		{"ordered", "network <IP> <WILD_CARD> area <AREA>", []string{"<IP>", "<WILD_CARD>", "<AREA>"}},
		{"non greedy", "<A><B>", []string{"<A>", "<B>"}},
		{"nested opener", "<<X>", []string{"<X>"}},
		{"empty brackets", "<>", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokens(tt.text))
		})
	}
}

func TestTokenKeys(t *testing.T) {
	assert.Equal(t, []string{"hostname"}, TokenKeys("<HOSTNAME>"))
	assert.Equal(t, []string{"wild_card", "wild-card"}, TokenKeys("<WILD_CARD>"))
}

func TestLookup(t *testing.T) {
	doc := devicecfg.NewDocument("")
	doc.Set("eigrp", "wild-card", "0.0.0.255")
	doc.Set("eigrp", "as_number", "10")

	value, err := Lookup(doc, "eigrp", "<WILD_CARD>")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.255", value)

	value, err = Lookup(doc, "EIGRP", "<AS_NUMBER>")
	require.NoError(t, err)
	assert.Equal(t, "10", value, "underscore spelling is tried first")

	_, err = Lookup(doc, "eigrp", "<IP>")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingOption))
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "eigrp", details["section"])
	assert.Equal(t, "<IP>", details["token"])
}

func TestSubstituteSinglePass(t *testing.T) {
	doc := devicecfg.NewDocument("")
	doc.Set("basic", "banner", "<HOSTNAME> only")
	doc.Set("basic", "hostname", "R1")

	out, err := Substitute("banner motd #<BANNER>#\nhostname <HOSTNAME>\n", doc, "basic")
	require.NoError(t, err)
	assert.Equal(t, "banner motd #<HOSTNAME> only#\nhostname R1\n", out)
}

func TestSubstituteRepeatedToken(t *testing.T) {
	doc := devicecfg.NewDocument("")
	doc.Set("basic", "hostname", "R1")

	out, err := Substitute("<HOSTNAME> <HOSTNAME>", doc, "basic")
	require.NoError(t, err)
	assert.Equal(t, "R1 R1", out)
}

func TestRenderIsSpanScoped(t *testing.T) {
	store := templates.New(testutil.TemplateFS(testutil.Boilerplate(), map[string]string{
		"router/basic/hostname.txt": "hostname <HOSTNAME>\n",
		"router/ssh/hostname.txt":   "ip ssh source <HOSTNAME>\n",
	}))
	profile := &profiles.Profile{Name: "router", TemplateRoot: "router", Sections: []string{"basic", "ssh"}}

	s, err := NewAssembler(store, profile, DefaultOptions()).Assemble([]templates.Ref{
		templates.OptionRef("router", "router", "basic", "hostname"),
		templates.OptionRef("router", "router", "ssh", "hostname"),
	})
	require.NoError(t, err)

	doc := devicecfg.NewDocument("")
	doc.Set("basic", "hostname", "R1")
	doc.Set("ssh", "hostname", "R2")

	out, err := s.Render(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "hostname R1\n")
	assert.Contains(t, out, "ip ssh source R2\n")
	assert.Empty(t, Tokens(out))
}

func TestRenderMissingOption(t *testing.T) {
	store := templates.New(testutil.TemplateFS(testutil.Boilerplate(), map[string]string{
		"common/eigrp-network.txt":   "network <IP> <WILD_CARD>\n",
		"router/eigrp/as-number.txt": "router eigrp <AS_NUMBER>\n",
	}))
	profile := &profiles.Profile{Name: "router", TemplateRoot: "router", Sections: []string{"eigrp"}}

	s, err := NewAssembler(store, profile, DefaultOptions()).Assemble([]templates.Ref{
		templates.OptionRef("router", "router", "eigrp", "as-number"),
		templates.CompositeRef("router", "eigrp", "eigrp-network", "ip", "wild-card"),
	})
	require.NoError(t, err)

	doc := devicecfg.NewDocument("")
	doc.Set("eigrp", "as-number", "10")
	doc.Set("eigrp", "ip", "10.0.0.0")

	_, err = s.Render(doc)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingOption))
	assert.Equal(t, "common/eigrp-network.txt", errors.GetErrorDetails(err)["template"])
	assert.Contains(t, err.Error(), "wild-card")
}

func TestClean(t *testing.T) {
	in := "  hostname R1  \n\tline vty 0 4\n  copy running-config startup-config  \n"
	expected := "hostname R1\nline vty 0 4\n  copy running-config startup-config  \n"

	once := Clean(in)
	assert.Equal(t, expected, once)
	assert.Equal(t, once, Clean(once))
}

func TestRouterEndToEnd(t *testing.T) {
	profile := &profiles.Profile{
		Name:         "router",
		TemplateRoot: "router",
		Sections:     []string{"basic", "eigrp", "hsrp", "ospf", "ssh", "special"},
		Special:      []string{"special"},
	}
	refs := []templates.Ref{
		templates.OptionRef("router", "router", "basic", "hostname"),
		templates.CommonRef(templates.Password, "password"),
		templates.CommonRef(templates.Save, ""),
	}

	s, err := NewAssembler(templates.Default(), profile, DefaultOptions()).Assemble(refs)
	require.NoError(t, err)

	doc := newDoc(map[string]map[string]string{
		"basic":    {"hostname": "R1"},
		"password": {"password": "cisco"},
	}, "basic", "password")

	rendered, err := s.Render(doc)
	require.NoError(t, err)

	run := strings.Repeat("!", 26)
	expected := run + " BASIC CONFIGURATION " + run + "\n!\n" +
		"enable\n!\n" +
		"configure terminal\n!\n" +
		"hostname R1\n!\n" +
		"enable secret cisco\n!\n" +
		"end\n!\n" +
		"disable\n!\n" +
		"enable\ncopy running-config startup-config\n\n!\n"
	assert.Equal(t, expected, Clean(rendered))
}
