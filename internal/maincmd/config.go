package maincmd

import (
	"github.com/mna/mainer"

	"github.com/mna/nenuphar-lox/internal/runconfig"
	"github.com/mna/nenuphar-lox/lang/interp"
	"github.com/mna/nenuphar-lox/lang/parser"
	"github.com/mna/nenuphar-lox/lang/resolver"
)

// applyConfig wires the runconfig environment overrides into the packages
// that read them as package-level state: the argument/parameter cap and
// the resolver's opt-in debug trace.
func applyConfig(cfg runconfig.Config, stdio mainer.Stdio) {
	if cfg.MaxArgs > 0 {
		parser.MaxArgs = cfg.MaxArgs
		interp.MaxArgs = cfg.MaxArgs
	}
	if cfg.TraceResolver {
		resolver.Trace = stdio.Stderr
	}
}
