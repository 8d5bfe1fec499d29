// Package tilemgr maintains an evolving set of package tile's Tiles,
// refusing additions that would violate matching rules, and indexes them
// by an integer grid and by incident vertex for fast neighbor lookups.
//
// Manager is the central exported type. A zero-value-free Manager is
// created with New(opts ...Option) — WithScaleFactor pins the grid cell
// size up front instead of deriving it from the first added tile. Tiles
// are proposed with CanAddTile (read-only
// check), TryAddTile (check-then-insert, returning a tri-state
// AddStatus), or AddTile (TryAddTile collapsed to a plain error).
// Transform and Decompose return a new Manager rather than mutating the
// receiver, matching the rest of this module's immutable-value style.
//
// A Manager is not safe for concurrent mutation by multiple goroutines;
// tiles themselves are immutable and may be shared freely across
// managers.
package tilemgr
