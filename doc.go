// Package vhdlsem provides the core semantic analyzer for a VHDL-like
// hardware description language: an entity arena and scope/region model,
// a type model, a declarative analyzer, an expression typer, a sequential
// statement analyzer, and a generic package instantiator.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering
// (enforced by internal/hygiene's import tests):
//
//	Foundation tier (no internal dependencies beyond the stdlib and
//	golang.org/x/text):
//	  - location: source positions, spans, and canonical source IDs
//	  - diag: structured diagnostics with stable error codes
//	  - internal/trace: ambient operation logging (stdlib only)
//
//	Core tier:
//	  - sem: entity arena, scopes/regions, the type model
//	  - ast: the declarative/expression/statement syntax the analyzer
//	    consumes, expressed in terms of sem's entity references
//
//	Upper tier:
//	  - resolve: predefined-type bootstrapping and implicit-operation
//	    factories (the "=" / "/=" / relational operators, arithmetic,
//	    and the VHDL-2008 condition operator a type gets for free)
//
//	Analyzer tier (each depends on ast, sem, diag, location, resolve, and
//	internal/trace, but never on one another's concrete packages):
//	  - declare: declarative-part analysis (types, objects, subprograms,
//	    aliases, subtypes)
//	  - exprtype: expression typing against VHDL's overload-resolution
//	    rules
//	  - seqstmt: sequential-statement legality (wait/return/exit context,
//	    signal assignment targets)
//	  - instantiate: generic package instantiation (arena-copy + generic
//	    substitution)
//
//	Ambient tier:
//	  - config: TOML-backed analyzer options (dialect selection,
//	    diagnostic limits, placeholder-diagnostic severity)
//	  - snapshot: a per-design-unit analysis cache (entity summaries and
//	    diagnostic counts), keyed by a source digest
//
// # Entry Points
//
// This module has no cmd/ host binary; each package is a library a caller
// wires together. A typical analysis run:
//
//	import (
//	    "vhdlsem/config"
//	    "vhdlsem/declare"
//	    "vhdlsem/diag"
//	    "vhdlsem/resolve"
//	    "vhdlsem/sem"
//	)
//
//	opts, err := config.Load("vhdlsem.toml")
//	if err != nil {
//	    // manifest error
//	}
//
//	arena := sem.NewArena()
//	predef := resolve.NewDefaultPredefinedTypes(arena, pos)
//	implicits := resolve.DefaultImplicits{Predefined: predef, VHDL2008: opts.IsVHDL2008()}
//
//	var c *diag.Collector
//	if limit := opts.CollectorLimit(); limit > 0 {
//	    c = diag.NewCollector(limit)
//	} else {
//	    c = diag.NewCollectorUnlimited()
//	}
//
//	deps := declare.Dependencies{FinalAliasPlaceholder: opts.Diagnostics.FinalAliasPlaceholder /* ... */}
//	res := declare.AnalyzeDeclarativePart(scope, decls, deps, c)
//	if !res.IsOk() {
//	    // fatal analyzer error, distinct from collected diagnostics
//	}
//	// c.Result() now holds whatever diagnostics the declarative part raised
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [vhdlsem/location]: source location tracking
//   - [vhdlsem/diag]: structured diagnostics
//   - [vhdlsem/sem]: entity arena, scopes, and the type model
//   - [vhdlsem/ast]: declarative/expression/statement syntax
//   - [vhdlsem/resolve]: predefined types and implicit declarations
//   - [vhdlsem/declare]: declarative-part analysis
//   - [vhdlsem/exprtype]: expression typing
//   - [vhdlsem/seqstmt]: sequential-statement analysis
//   - [vhdlsem/instantiate]: generic package instantiation
//   - [vhdlsem/config]: analyzer configuration
//   - [vhdlsem/snapshot]: per-design-unit analysis cache
package vhdlsem
