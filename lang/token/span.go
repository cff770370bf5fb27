package token

import "fmt"

// Loc is a half-open source range expressed as a pair of Pos values.
type Loc struct {
	Start Pos
	End   Pos
}

// Span identifies a Loc within a named source file. Every token and every
// AST node that participates in diagnostics or identifier identity carries
// a Span.
type Span struct {
	Filename string
	Loc      Loc
}

func (s Span) String() string {
	l, c := s.Loc.Start.LineCol()
	if s.Filename == "" {
		return fmt.Sprintf("%d:%d", l, c)
	}
	return fmt.Sprintf("%s:%d:%d", s.Filename, l, c)
}

// Key returns the stable identifier-identity key used by the resolver and
// interpreter to key an occurrence of a name at a specific source position:
// "name@ln:col". Two occurrences of the same textual name at different
// positions are distinct keys, which is essential because resolver
// distances are per-reference, not per-name.
func (s Span) Key(name string) string {
	l, c := s.Loc.Start.LineCol()
	return fmt.Sprintf("%s@%d:%d", name, l, c)
}
