// Package diag provides the shared diagnostic formatting and error-list
// accumulation used across the parser, resolver and interpreter error
// taxonomies. Every diagnostic carries a Span (see the token package) and
// renders as "Kind: message, at: FILENAME:LINE:COL", per the CLI's
// diagnostic contract.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mna/nenuphar-lox/lang/token"
)

// Entry is a single diagnostic: a named error kind, a human-readable
// message and the source span it refers to.
type Entry struct {
	Kind string
	Msg  string
	Span token.Span
}

func (e *Entry) Error() string {
	return fmt.Sprintf("%s: %s, at: %s", e.Kind, e.Msg, e.Span)
}

// List accumulates diagnostics produced over a single pass (e.g. a
// resolver walk, which does not abort on the first violation so that all
// static scope errors in a program can be reported together).
type List struct {
	entries []*Entry
}

// Add appends a new diagnostic to the list.
func (l *List) Add(kind, msg string, span token.Span) {
	l.entries = append(l.entries, &Entry{Kind: kind, Msg: msg, Span: span})
}

// Len reports the number of accumulated diagnostics.
func (l *List) Len() int { return len(l.entries) }

// Sort orders the diagnostics by source position, for stable, readable
// output.
func (l *List) Sort() {
	sort.Slice(l.entries, func(i, j int) bool {
		a, b := l.entries[i].Span, l.entries[j].Span
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		aLine, aCol := a.Loc.Start.LineCol()
		bLine, bCol := b.Loc.Start.LineCol()
		if aLine != bLine {
			return aLine < bLine
		}
		return aCol < bCol
	})
}

// Err returns nil if the list is empty, otherwise it returns the list
// itself as an error (its Error method joins every entry on its own line).
func (l *List) Err() error {
	if len(l.entries) == 0 {
		return nil
	}
	return l
}

// Entries returns the accumulated diagnostics, in their current order.
func (l *List) Entries() []*Entry { return l.entries }

func (l *List) Error() string {
	var sb strings.Builder
	for i, e := range l.entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}
