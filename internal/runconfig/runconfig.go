// Package runconfig reads the small set of environment-variable overrides
// the CLI honors, using the struct-tag driven env.Parse already present in
// go.mod's dependency graph (transitively, through mainer) but never given
// a direct caller.
package runconfig

import "github.com/caarlos0/env/v6"

// Config holds the NENUPHAR_LOX_-prefixed environment overrides.
type Config struct {
	// MaxArgs overrides the 255-argument/parameter cap of parser.MaxArgs and
	// interp.MaxArgs. Zero means "leave the built-in default".
	MaxArgs int `env:"NENUPHAR_LOX_MAX_ARGS" envDefault:"0"`

	// TraceResolver turns on the resolver's debug trace, printed to stderr by
	// the `resolve` and `run` subcommands.
	TraceResolver bool `env:"NENUPHAR_LOX_TRACE_RESOLVER" envDefault:"false"`
}

// Load reads Config from the current process environment.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
