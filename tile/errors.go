// SPDX-License-Identifier: MIT
package tile

import "errors"

// ErrNotOrientationPreserving is returned when a tile is constructed with
// a transform whose determinant is not positive.
var ErrNotOrientationPreserving = errors.New("tile: transform is not orientation-preserving")

// ErrNotConformal is returned when a tile is constructed with a transform
// that does not preserve angles (it would stretch the prototile).
var ErrNotConformal = errors.New("tile: transform is not conformal")

// ErrUnknownClass is returned by the internal class lookup when asked for
// a prototile class name that does not exist.
var ErrUnknownClass = errors.New("tile: unknown prototile class")
