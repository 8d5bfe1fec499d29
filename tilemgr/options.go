// SPDX-License-Identifier: MIT
package tilemgr

import "math/big"

// Option configures a Manager before its first tile arrives.
type Option func(m *Manager)

// WithScaleFactor pins the grid scale factor to s instead of deriving it
// from the first added tile. 1/s should be on the order of a
// representative tile's side so grid cells stay roughly tile-sized; the
// choice affects only lookup performance, never which additions succeed,
// since every geometric decision downstream of the grid is exact.
//
// A non-positive s is ignored and the derive-from-first-tile default
// stays in effect.
func WithScaleFactor(s *big.Rat) Option {
	return func(m *Manager) {
		if s == nil || s.Sign() <= 0 {
			return
		}
		m.scale = new(big.Rat).Set(s)
		m.hasScale = true
	}
}
