package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Dialect selects which revision of the VHDL standard an analysis run
// targets. The only observable effect on the core analyzer is whether
// resolve.DefaultImplicits.VHDL2008 synthesizes the VHDL-2008 condition
// operator ("??", LRM 9.2.9) for enumeration types; everything else in
// the core (declarative/expression/sequential analysis, instantiation) is
// dialect-invariant.
type Dialect string

const (
	VHDL93   Dialect = "vhdl93"
	VHDL2008 Dialect = "vhdl2008"
)

// Options is the decoded shape of an analyzer's TOML manifest (conventionally
// named vhdlsem.toml), grounded on vovakirdan-surge's surge.toml
// decode-then-validate pattern (cmd/surge/project_manifest.go).
type Options struct {
	Dialect     DialectConfig     `toml:"dialect"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

type DialectConfig struct {
	// Name selects the target dialect (see Dialect); defaults to "vhdl93"
	// when the [dialect] table or its name key is absent.
	Name string `toml:"name"`
}

type DiagnosticsConfig struct {
	// Limit caps the number of issues a diag.Collector retains before it
	// starts dropping further ones and marks the result limit-reached (see
	// diag.NewCollector). Zero or absent means unlimited
	// (diag.NewCollectorUnlimited).
	Limit int `toml:"limit"`

	// FinalAliasPlaceholder controls whether aliasing an unsupported
	// "Final" resolved-name class (§9 open question) is a hard error or a
	// warning a caller can choose to tolerate; see declare.Dependencies.
	FinalAliasPlaceholder bool `toml:"final_alias_placeholder"`
}

// Default returns the options an analysis run gets without a manifest:
// VHDL-93, unlimited diagnostics, Final-class aliasing as a hard error.
func Default() Options {
	return Options{Dialect: DialectConfig{Name: string(VHDL93)}}
}

// Load decodes and validates a TOML manifest at path. Unset tables take
// their Default() value rather than erroring, since every field in
// Options is optional; an invalid dialect name is the only hard error.
func Load(path string) (Options, error) {
	opts := Default()
	meta, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("dialect", "name") || strings.TrimSpace(opts.Dialect.Name) == "" {
		opts.Dialect.Name = string(VHDL93)
	}
	if err := opts.Dialect.validate(); err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

func (d DialectConfig) validate() error {
	switch Dialect(d.Name) {
	case VHDL93, VHDL2008:
		return nil
	default:
		return fmt.Errorf("[dialect].name: unrecognized dialect %q (want %q or %q)", d.Name, VHDL93, VHDL2008)
	}
}

// IsVHDL2008 reports whether opts selects the VHDL-2008 dialect, the form
// resolve.DefaultImplicits.VHDL2008 expects.
func (o Options) IsVHDL2008() bool {
	return Dialect(o.Dialect.Name) == VHDL2008
}

// CollectorLimit reports the diag.NewCollector limit opts selects, or 0
// for diag.NewCollectorUnlimited when no limit was configured.
func (o Options) CollectorLimit() int {
	return o.Diagnostics.Limit
}
