package gencisco

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort         = "Generate Cisco IOS command scripts from configuration files"
	MsgInitShort         = "Write an example device configuration"
	MsgProfilesShort     = "List supported device types"
	MsgProfilesShowShort = "Describe one device type"
	MsgVersionShort      = "Print version information"
	MsgCompletionShort   = "Generate shell completion script"
	MsgManShort          = "Generate man pages"

	// Status messages
	MsgConfigCreated = "Created %s (%s defaults)"
	MsgManWritten    = "Man pages written to %s"
	MsgVersionFormat = "gencisco version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagConfig    = "Settings file (default: $XDG_CONFIG_HOME/gencisco/config.toml)"
	MsgFlagInput     = "Device configuration file to convert"
	MsgFlagOutput    = "Script file to write (default: source name with .txt)"
	MsgFlagOverride  = "Replace the output file if it exists"
	MsgFlagLog       = "Also print the generated script"
	MsgFlagDevice    = "Device type, instead of detecting it from the source name"
	MsgFlagTemplates = "Read templates from this directory instead of the built-in set"
	MsgFlagInitType  = "Device type of the example configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/profiles-long.txt
	msgProfilesLongRaw string
	MsgProfilesLong    = strings.TrimSpace(msgProfilesLongRaw)
)
