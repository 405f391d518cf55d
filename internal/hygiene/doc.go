// Package hygiene provides programmatic verification of architectural invariants.
//
// This package contains tests that enforce layering constraints across the
// module. These tests serve as the authoritative gate for dependency hygiene;
// prose description elsewhere is for convenience only.
//
// # Tier Import Rules
//
// The module has a tiered architecture where lower tiers must not import
// higher ones:
//
//   - location: stdlib + golang.org/x/text (no other module packages)
//   - diag: location only
//   - internal/trace: stdlib only (no other module packages, including diag)
//   - sem: location, diag only
//   - ast: sem, location, diag only
//   - resolve: sem, location only
//   - declare, exprtype, seqstmt, instantiate: may reach ast, sem, diag,
//     location, resolve, and internal/trace, but never each other's sibling
//     concrete packages — seqstmt importing exprtype directly is the one
//     documented exception (§6: neither declare nor exprtype shares that
//     coupling).
//
// # Test Coverage
//
// [TestTierImports] verifies the constraints for location, diag,
// internal/trace, sem, ast and resolve using `go list -deps -test`, which
// includes both production and test dependencies. This catches cases where
// test files violate layering even if production code is clean. The
// analyzer-tier rule for declare, exprtype, seqstmt and instantiate has no
// case in TestTierImports and is not checked.
//
// Packages that don't exist yet are skipped. Once a package is created, it
// will automatically be tested.
package hygiene
