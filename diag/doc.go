// Package diag provides structured diagnostics for the vhdlsem declarative
// region analyzer (component H of the analyzer's design).
//
// This package sits at the foundation tier alongside [location], providing the
// single diagnostic infrastructure used across the entity arena, the
// declarative analyzer, the expression typer, the sequential analyzer, and
// the package instantiator. It deliberately knows nothing about entities,
// scopes, or types — it only knows how to carry a code, a message, a span,
// and related locations.
//
// # Design Principles
//
// The diag package follows several key design principles:
//
//   - Structured data, string-last presentation: Location is stored as data
//     ([location.Span], instance path strings), never embedded in message strings.
//   - Immutable results: [Result] stores issues in unexported fields and exposes
//     accessor methods that return defensive copies.
//   - Stable error codes: [Code] values are stable identifiers that tools can
//     match on, even when message text changes. The Code type uses an unexported
//     struct to enforce a closed set of valid codes.
//   - Deterministic ordering: [Collector.Result] sorts issues by source, position,
//     and code to ensure stable output across runs.
//   - Builder pattern: [IssueBuilder] is the only valid construction path for
//     [Issue] values, eliminating common construction mistakes.
//   - Precomputed counts: [Collector] maintains O(1) severity queries via
//     precomputed counts updated during collection.
//
// # Entry Point Pattern
//
// All vhdlsem public entry points follow a consistent pattern:
//
//   - err != nil: catastrophic failure (I/O, internal corruption, runtime failures)
//   - err == nil and !result.OK(): semantic failure represented as structured issues
//   - err == nil and result.OK(): success (may still include warnings/info/hints)
//
// # Severity Semantics
//
// [Severity] is an ordered enumeration where lower values are more severe:
//
//   - [Fatal]: Unrecoverable condition or collection limit reached sentinel
//   - [Error]: Validation failure but collection can continue
//   - [Warning], [Info], [Hint]: Non-blocking diagnostics
//
// The [Severity.IsFailure] method returns true for Fatal and Error severities,
// matching the !result.OK() check.
//
// # Issue Construction
//
// Issues must be constructed using [NewIssue] and [IssueBuilder]:
//
//	issue := diag.NewIssue(diag.Error, diag.E_DUPLICATE_DECL, `entity "clk" already declared`).
//	    WithSpan(span).
//	    WithHint("rename one of the declarations").
//	    WithRelated(location.RelatedInfo{Span: previousSpan, Message: "previous declaration here"}).
//	    Build()
//
// Direct struct literal construction bypasses validity checks and will cause
// panics when the issue is collected.
//
// # Collection and Results
//
// Use [Collector] to aggregate issues during validation:
//
//	collector := diag.NewCollector(100) // limit of 100 issues
//	collector.Collect(issue)
//	result := collector.Result()
//
//	if !result.OK() {
//	    // handle semantic failures
//	}
//
// [Collector] is thread-safe and provides O(1) severity queries via [Collector.OK],
// [Collector.HasErrors], and [Collector.HasFatal].
//
// # Wire Format
//
// [MarshalResultJSON] and [MarshalIssueJSON] produce a stable JSON wire format for
// consumers that want structured diagnostics without linking against this
// package (e.g. a snapshot cache, or an out-of-process host compiler).
// Diagnostic *formatting* for human display — source excerpts, terminal
// colors, a language-server transport — is an explicit external collaborator
// per the analyzer's specification and is not part of this package.
//
// # Package Dependencies
//
// Per the Foundation Rule, diag imports only stdlib and [location]. It must
// not import any of the analyzer's higher-level packages (sem, declare,
// exprtype, seqstmt, instantiate).
package diag
