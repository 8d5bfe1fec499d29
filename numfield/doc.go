// Package numfield implements exact arithmetic in the real number field
// K = Q(alpha), where alpha = sqrt(2*(5+sqrt(5))) is the positive real root
// of x^4 - 20*x^2 + 80 lying in the interval (7/2, 4).
//
// K contains the golden ratio (the diagonal-to-side ratio of a regular
// pentagon) and the cosine and sine of every multiple of 18 degrees
// (cos 18° = alpha/4); every vertex coordinate of every
// Penrose prototile (package geom/tile) lies in K^2, so every geometric
// predicate built on K is decided without floating-point error.
//
// Key exported surface:
//
//	Elt                 — an element c0 + c1*alpha + c2*alpha^2 + c3*alpha^3,
//	                       stored as four *big.Rat coefficients. Always
//	                       obtain one through a constructor (the struct
//	                       zero value holds nil coefficients). Elt is
//	                       immutable: every method returns a new Elt.
//	FromInt/FromRat/FromString — constructors; FromString parses "p/q" and
//	                       plain integers via big.Rat's own parser.
//	Add/Sub/Neg/Mul      — field arithmetic. Mul has fast paths for
//	                       rational operands and otherwise computes a
//	                       7-term convolution, folding alpha^4..alpha^6
//	                       through a precomputed table.
//	Sign/Cmp/Less/Equal  — total order via iterated interval refinement
//	                       of alpha (see sign.go); no operation here ever
//	                       consults a floating-point value to decide order.
//	Floor/Ceil/Trunc     — integer-valued queries, exact.
//	Float                — lossy float64 cast for display only; no
//	                       geometric decision may consume it, and nothing
//	                       in this module does.
//
// Distinguished constants: One, Alpha, Sqrt5, Phi (the golden ratio),
// InvPhi (= Phi - 1 = 1/Phi).
//
// There is no multiplicative inverse: no algorithm built on this package
// needs one, and implementing a general inverse in a quartic field would
// be general-purpose computer algebra this package has no use for.
// Division is therefore simply absent from this package's surface.
package numfield
