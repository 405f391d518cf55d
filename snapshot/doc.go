// Package snapshot caches a per-design-unit analysis summary to disk,
// keyed by a content digest of the unit's source, so a caller can skip
// re-analyzing a design unit whose source (and dependency set) has not
// changed since the cached Record was written. It does not cache the
// arena/region values themselves — those hold Go-specific identity
// (pointers, randomly generated EntityIDs) that would not survive a process
// restart meaningfully — only a compact summary (entity count and
// designators, diagnostic severity counts) cheap enough to compare
// against a fresh analysis to confirm the cache is still trustworthy.
package snapshot
