package ui_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/netscript/gencisco/pkg/errors"
	"github.com/netscript/gencisco/pkg/profiles"
	"github.com/netscript/gencisco/pkg/templates"
	"github.com/netscript/gencisco/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routerProfile() *profiles.Profile {
	return &profiles.Profile{
		Name:         "router",
		Description:  "Cisco IOS router",
		TemplateRoot: "router",
		Match:        []string{"router"},
		Sections:     []string{"basic", "ssh", "special"},
		Special:      []string{"special"},
		BoolKeys:     []string{"no-domain-lookup"},
		MergePairs: []profiles.MergePair{
			{Section: "ssh", First: "username", Second: "password", Template: "ssh-user"},
		},
	}
}

func newRenderer(t *testing.T, format ui.Format) (ui.Renderer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	r, err := ui.NewRenderer(format, &buf)
	require.NoError(t, err)
	return r, &buf
}

func TestNewRendererUnknownFormat(t *testing.T) {
	_, err := ui.NewRenderer(ui.Format(42), &bytes.Buffer{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestNewRendererAutoOnBuffer(t *testing.T) {
	r, buf := newRenderer(t, ui.FormatAuto)
	require.NoError(t, r.RenderMessage("hello"))
	assert.Contains(t, buf.String(), "hello")
}

func TestProfileView(t *testing.T) {
	view := ui.NewProfileView(routerProfile(), templates.Default())

	require.Len(t, view.Sections, 3)
	assert.Equal(t, "basic", view.Sections[0].Name)
	assert.Contains(t, view.Sections[0].Options, "hostname")
	assert.False(t, view.Sections[0].Special)
	assert.True(t, view.Sections[2].Special)
	assert.Equal(t, []ui.MergeView{
		{Section: "ssh", Options: []string{"username", "password"}, Template: "common/ssh-user.txt"},
	}, view.MergePairs)
}

func TestProfileViewWithoutStore(t *testing.T) {
	view := ui.NewProfileView(routerProfile(), nil)
	for _, s := range view.Sections {
		assert.Empty(t, s.Options)
	}
}

func TestProfileMarkdown(t *testing.T) {
	md := ui.NewProfileView(routerProfile(), nil).Markdown()

	assert.True(t, strings.HasPrefix(md, "# router\n\nCisco IOS router\n"))
	assert.Contains(t, md, "| basic | configure terminal | - |")
	assert.Contains(t, md, "| special | enable | - |")
	assert.Contains(t, md, "`no-domain-lookup`")
	assert.Contains(t, md, "| ssh | username + password | `common/ssh-user.txt` |")
}

func TestTextRenderer(t *testing.T) {
	r, buf := newRenderer(t, ui.FormatText)

	require.NoError(t, r.RenderResult(ui.ResultView{Destination: "router.txt", Device: "router", Templates: 4}))
	assert.Equal(t, "Wrote router.txt (router, 4 templates)\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderProfiles([]ui.ProfileView{ui.NewProfileView(routerProfile(), nil)}))
	assert.Equal(t, "router\tbasic,ssh,special\tCisco IOS router\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderProfile(ui.NewProfileView(routerProfile(), nil)))
	assert.Contains(t, buf.String(), "## Sections")
}

func TestTextRendererError(t *testing.T) {
	r, buf := newRenderer(t, ui.FormatText)

	err := errors.New(errors.ErrMissingOption, "missing option \"ip\" in section [eigrp]").
		WithDetail("template", "common/eigrp-network.txt").
		WithDetail("section", "eigrp")
	require.NoError(t, r.RenderError(err))

	assert.Equal(t, "Error: missing option \"ip\" in section [eigrp]\n"+
		"  section: eigrp\n"+
		"  template: common/eigrp-network.txt\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderError(stderrors.New("plain failure")))
	assert.Equal(t, "Error: plain failure\n", buf.String())
}

func TestJSONRenderer(t *testing.T) {
	r, buf := newRenderer(t, ui.FormatJSON)

	require.NoError(t, r.RenderResult(ui.ResultView{Source: "router.ini", Destination: "router.txt", Device: "router", Templates: 4}))
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "router.txt", result["destination"])
	assert.Equal(t, float64(4), result["templates"])

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrNoSections, "no sections").WithDetail("device", "router")))
	var errObj map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &errObj))
	assert.Equal(t, "NO_SECTIONS", errObj["code"])
	assert.Equal(t, "no sections", errObj["error"])
	assert.Equal(t, map[string]interface{}{"device": "router"}, errObj["details"])

	buf.Reset()
	require.NoError(t, r.RenderProfiles([]ui.ProfileView{ui.NewProfileView(routerProfile(), nil)}))
	var list []ui.ProfileView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "router", list[0].Name)
}

func TestTerminalRenderer(t *testing.T) {
	r, buf := newRenderer(t, ui.FormatTerminal)

	require.NoError(t, r.RenderResult(ui.ResultView{Destination: "router.txt", Device: "router", Templates: 4}))
	assert.Contains(t, buf.String(), "router.txt")

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrDestinationExists, "destination file already exists")))
	assert.Contains(t, buf.String(), "Error:")
	assert.Contains(t, buf.String(), "destination file already exists")

	buf.Reset()
	require.NoError(t, r.RenderProfiles([]ui.ProfileView{ui.NewProfileView(routerProfile(), nil)}))
	assert.Contains(t, buf.String(), "router")
	assert.Contains(t, buf.String(), "Device")

	buf.Reset()
	require.NoError(t, r.RenderProfile(ui.NewProfileView(routerProfile(), nil)))
	assert.Contains(t, buf.String(), "router")
	assert.Contains(t, buf.String(), "Sections")
}
