package sem

import "vhdlsem/diag"

// ResolvedName is what the external name resolver reports for a simple or
// compound name: which ResolvedNameClass it belongs to, and, when known,
// the entity it denotes. A name that resolves to an overload set has
// Single zero and Overloaded populated instead.
type ResolvedName struct {
	Class      ResolvedNameClass
	Single     Ent
	Overloaded []Ent
}

// NameResolver is the external collaborator that turns a textual Name into
// a ResolvedName (§6: "Name resolver"). It is defined here, not in declare
// or exprtype, because both of those packages need it and neither should
// import the other just to share the interface.
type NameResolver interface {
	ResolveName(scope *Scope, designator Designator) AnalysisResult[ResolvedName]
}

// UseClauseHandler resolves a use clause's named library units/items and
// makes the resulting regions visible, typically via Scope.Use (§6: "Use
// clause handler").
type UseClauseHandler interface {
	ResolveUseClause(scope *Scope, names []Designator, c *diag.Collector) FatalResult
}

// ProcedureCallResolver resolves a procedure call's target overload and
// checks its argument associations (§6: "procedure-call resolver").
type ProcedureCallResolver interface {
	ResolveProcedureCall(scope *Scope, target Designator, argc int, c *diag.Collector) AnalysisResult[Ent]
}

// TargetWaveformResolver resolves a signal/variable assignment's target
// and types its waveform/value expressions against the target's subtype
// (§6: "target-and-waveform resolver"). class distinguishes a signal
// target from a variable target, since the grammar shapes differ (a
// waveform vs. a single value) but the resolver is one collaborator.
type TargetWaveformResolver interface {
	ResolveTarget(scope *Scope, target Designator, isSignal bool, c *diag.Collector) AnalysisResult[Subtype]
}

// PredefinedTypeProvider supplies the handful of platform types the core
// itself never defines but constantly needs: the two universal types and
// the four standard scalar/composite types referenced throughout §4.E–F
// (§6: "Predefined-type provider").
type PredefinedTypeProvider interface {
	UniversalInteger() Ent
	UniversalReal() Ent
	Boolean() Ent
	String() Ent
	Time() Ent
	SeverityLevel() Ent
}
