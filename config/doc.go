// Package config loads analyzer-wide options from a TOML manifest:
// dialect selection, diagnostic collection limits, and a handful of
// host-tunable placeholder behaviors (see Options). A caller decodes a
// config.Options value once per analysis run and threads the relevant
// field into each package's own Dependencies/DefaultImplicits value —
// config itself never imports declare/exprtype/seqstmt/instantiate/resolve,
// to keep it a leaf package any of them (or none) can depend on.
package config
