// Package resolve hosts reference implementations of some of the external
// collaborator interfaces the core (sem, declare, exprtype, seqstmt,
// instantiate) depends on but does not implement itself; a caller may use
// them out of the box or replace them with a host compiler's own.
//
// Each interface is defined in sem, not here, to avoid an import cycle:
// declare, exprtype, and seqstmt all need NameResolver and friends, and
// none of those packages should import one another just to share an
// interface, so sem — the common dependency of all of them — hosts the
// interface and this package hosts the implementation. This package only
// collects the concrete, swappable implementations: DefaultImplicits,
// DefaultPredefinedTypes, and a minimal DefaultNameResolver suitable for
// the package's own tests.
package resolve
