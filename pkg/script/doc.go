// Package script assembles Cisco CLI scripts from templates.
//
// Assembly writes every template into an in-memory buffer and records the
// byte range each one occupies. Token substitution then works span by
// span, so a token is only ever replaced inside the template that declared
// it. Mode boilerplate (enable, configure terminal and their exits) is
// driven by an explicit Mode state machine.
package script
