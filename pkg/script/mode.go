package script

import (
	"fmt"

	"github.com/netscript/gencisco/pkg/errors"
	"github.com/netscript/gencisco/pkg/templates"
)

// Mode is the CLI mode the script leaves the device in.
type Mode int

const (
	ModeUser Mode = iota
	ModeEnabled
	ModeConfigured
)

func (m Mode) String() string {
	switch m {
	case ModeUser:
		return "user"
	case ModeEnabled:
		return "enabled"
	case ModeConfigured:
		return "configured"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Transition moves between modes.
type Transition int

const (
	EnterEnable Transition = iota
	EnterConfigure
	ExitConfigure
	ExitEnable
)

func (t Transition) String() string {
	switch t {
	case EnterEnable:
		return "enter-enable"
	case EnterConfigure:
		return "enter-configure"
	case ExitConfigure:
		return "exit-configure"
	case ExitEnable:
		return "exit-enable"
	default:
		return fmt.Sprintf("Transition(%d)", int(t))
	}
}

// Template is the shared boilerplate written for the transition.
func (t Transition) Template() string {
	switch t {
	case EnterEnable:
		return templates.Enable
	case EnterConfigure:
		return templates.Configure
	case ExitConfigure:
		return templates.ExitConfig
	default:
		return templates.ExitEnable
	}
}

type edge struct {
	from Mode
	via  Transition
}

var transitions = map[edge]Mode{
	{ModeUser, EnterEnable}:         ModeEnabled,
	{ModeEnabled, EnterConfigure}:   ModeConfigured,
	{ModeConfigured, ExitConfigure}: ModeEnabled,
	{ModeEnabled, ExitEnable}:       ModeUser,
}

// Apply returns the mode reached by taking t from m.
func (m Mode) Apply(t Transition) (Mode, error) {
	next, ok := transitions[edge{m, t}]
	if !ok {
		return m, errors.Newf(errors.ErrInvalidMode, "cannot %s from %s mode", t, m)
	}
	return next, nil
}

// PathTo lists the transitions leading from m to target.
func (m Mode) PathTo(target Mode) []Transition {
	var path []Transition
	for m != target {
		if m < target {
			if m == ModeUser {
				path = append(path, EnterEnable)
			} else {
				path = append(path, EnterConfigure)
			}
			m++
		} else {
			if m == ModeConfigured {
				path = append(path, ExitConfigure)
			} else {
				path = append(path, ExitEnable)
			}
			m--
		}
	}
	return path
}
