// Package sem implements the entity arena, scope/region model, and type
// model at the core of the declarative-region analyzer: it owns every
// semantic entity produced while walking a design unit and provides the
// lookup and classification primitives the higher-level analyzers
// (declare, exprtype, seqstmt, instantiate) build on.
//
// # Entities
//
// Every named thing — types, objects, subprograms, aliases, packages — is
// represented by an [Ent], a small value handle wrapping a stable
// [EntityID] and a pointer into arena-owned storage. Callers never see the
// storage pointer directly; all access goes through Ent's accessor methods.
// An entity's designator, kind, and declaration position are immutable once
// published by the [Arena], with narrow, documented exceptions:
// [Arena.DefineWithOptID] rewrites an incomplete type's entity in place when
// its full definition arrives, [Arena.FinalizeInstance] sets an instance
// copy's kind once, and a [ProtectedType]'s Region and body fields are set
// after publication.
//
// # Scopes and regions
//
// A [Region] maps designators to [NamedEntities]; a [Scope] is a stack of
// regions implementing lexically nested lookup. Regions are mutable while
// open and frozen on [Scope.Close].
//
// # Two-channel error handling
//
// Entry points that can fail in a way that should unwind the current
// analysis unit return [FatalResult]; pure lookups and resolutions that can
// fail locally without aborting sibling work return [AnalysisResult].
package sem
