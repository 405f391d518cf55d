// Package ast defines the node shapes the declarative, expression, and
// sequential analyzers consume. Producing these nodes — lexing and parsing
// source text into this shape — is an external concern (see the top-level
// module doc); this package only fixes the data the core reads and writes.
//
// Every node that names something the core must resolve carries a
// [vhdlsem/sem.EntityRef]: a write-once cell the core fills in once, during
// analysis. Nodes are otherwise plain structs with exported fields, since
// they are built by an external producer rather than by the core itself —
// unlike [vhdlsem/sem.Ent], there is no sealing discipline to enforce here.
package ast
