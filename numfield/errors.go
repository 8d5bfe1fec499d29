// SPDX-License-Identifier: MIT
// Package numfield: sentinel error set.
//
// Only sentinel variables are exported; callers branch with errors.Is.
// Arithmetic itself never fails (K is closed under +, -, *), so the only
// failures this package can report are at its ingest boundary (FromString).

package numfield

import "errors"

// ErrMalformedRationalString is returned by FromString when the input is
// not a valid "p/q" or plain integer literal accepted by big.Rat.SetString.
var ErrMalformedRationalString = errors.New("numfield: malformed rational string")

// ErrDivisionUnsupported documents, as a named sentinel rather than a
// missing method, that K has no implemented multiplicative inverse: no
// algorithm built on this package needs one. Nothing in this package
// returns it today; it exists so that any future caller reaching for a
// Div/Inverse method fails loudly against a stable, greppable sentinel
// instead of a generic panic.
var ErrDivisionUnsupported = errors.New("numfield: multiplicative inverse is unsupported by design")
