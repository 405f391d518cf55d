// Package instantiate implements the generic package instantiator (§4.G):
// given a resolved uninstantiated package and a generic-map association
// list, it builds the formal→actual substitution table and deep-copies the
// package's ordinary declarative region under it, producing the region a
// package-instantiation declaration publishes as its DesignKind payload.
//
// The deep copy is a structural walk of [sem.EntityKind]/[sem.Type]/
// [sem.Region], not a reinterpretation of any AST: every entity reachable
// from the uninstantiated region — implicit children included — gets an
// instance-of copy with every embedded type/subtype/signature reference
// rewritten through the substitution table, so an instance's entity graph
// is fully independent of its uninstantiated original.
package instantiate
