package gui

import "strings"

var tclEscaper = strings.NewReplacer(`\`, `\\`, `{`, `\{`, `}`, `\}`)

// tclBrace quotes a value for interpolation into a Tcl command.
func tclBrace(s string) string {
	return "{" + tclEscaper.Replace(s) + "}"
}
