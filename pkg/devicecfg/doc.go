// Package devicecfg loads device configuration files into an ordered,
// two-level Document (section -> option -> string value).
//
// INI, YAML and TOML sources are supported. Section and option names are
// lower-cased on load and the order of both is preserved exactly as written
// in the file, since the generated script follows it.
package devicecfg
