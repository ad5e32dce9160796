package templates

import (
	"fmt"
	"path"
)

// Kind tells where a template comes from.
type Kind int

const (
	// KindOption is a device template for one option of a section.
	KindOption Kind = iota
	// KindComposite replaces the two options of a merge pair.
	KindComposite
	// KindCommon is a shared template (password, save, boilerplate).
	KindCommon
)

func (k Kind) String() string {
	switch k {
	case KindOption:
		return "option"
	case KindComposite:
		return "composite"
	case KindCommon:
		return "common"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// CommonDir holds templates shared by every device.
const CommonDir = "common"

// Names of the shared templates.
const (
	Enable     = "enable"
	Configure  = "conft"
	ExitConfig = "exit-conft"
	ExitEnable = "exit-enable"
	Password   = "password"
	Save       = "save"
)

// Ref identifies one template and the configuration section its tokens
// resolve in.
type Ref struct {
	Kind    Kind
	Device  string
	Section string
	// Option is the option name for KindOption, the merge pair template
	// name for KindComposite and the shared template name for KindCommon.
	Option string
	// Options lists the configuration options the template stands for.
	Options []string
	Path    string
}

func (r Ref) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.Path)
}

// OptionRef points at <root>/<section>/<option>.txt.
func OptionRef(device, root, section, option string) Ref {
	return Ref{
		Kind:    KindOption,
		Device:  device,
		Section: section,
		Option:  option,
		Options: []string{option},
		Path:    path.Join(root, section, option+".txt"),
	}
}

// CompositeRef points at common/<name>.txt; its tokens resolve in section.
func CompositeRef(device, section, name string, options ...string) Ref {
	return Ref{
		Kind:    KindComposite,
		Device:  device,
		Section: section,
		Option:  name,
		Options: options,
		Path:    CommonPath(name),
	}
}

// CommonRef points at common/<name>.txt; its tokens resolve in section.
func CommonRef(name, section string) Ref {
	return Ref{
		Kind:    KindCommon,
		Section: section,
		Option:  name,
		Path:    CommonPath(name),
	}
}

// CommonPath is the store path of a shared template.
func CommonPath(name string) string {
	return path.Join(CommonDir, name+".txt")
}
