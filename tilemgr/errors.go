// SPDX-License-Identifier: MIT
package tilemgr

import "errors"

// ErrRuleMismatch is returned by AddTile when the candidate tile
// conflicts with a neighboring tile's matching rules.
var ErrRuleMismatch = errors.New("tilemgr: tile violates matching rules of a neighboring tile")

// ErrAlreadyPresent is returned by AddTile when the candidate tile is
// already a member of the manager (an idempotent re-add).
var ErrAlreadyPresent = errors.New("tilemgr: tile is already present")

// ErrUnknownClass is returned by Transform when a tile's class name
// cannot be reconstructed (would indicate memory corruption, since every
// tile in the manager was itself built through a valid constructor).
var ErrUnknownClass = errors.New("tilemgr: tile references an unknown prototile class")
