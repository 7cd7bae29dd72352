package component

import "regexp"

// Terminal naming convention: a bare "n", a letter followed by digits, or one
// of the semantic aliases traditional device models use. Anything else on a
// generic component is a model parameter, not an electrical terminal.
var termIndexed = regexp.MustCompile(`^[a-z][0-9]+$`)

var termAliases = map[string]bool{
	"n":         true,
	"nplus":     true,
	"nminus":    true,
	"anode":     true,
	"cathode":   true,
	"gate":      true,
	"drain":     true,
	"source":    true,
	"base":      true,
	"collector": true,
	"emitter":   true,
	"ref":       true,
}

// IsTerminalName reports whether name looks like a connection terminal.
func IsTerminalName(name string) bool {
	return termAliases[name] || termIndexed.MatchString(name)
}
