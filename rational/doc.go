// Package rational implements closed intervals of exact rational numbers.
//
// An Interval is the fundamental correctness tool the rest of this module
// leans on: every comparison of an algebraic number (package numfield)
// against zero is decided by evaluating a polynomial over an
// ever-tightening Interval bounding the field's generator, never by a
// floating-point approximation. Interval arithmetic here only needs to be
// sound (the result must contain every real value the true operation could
// produce), not tight — see the individual method docs for exactly how
// tight each operation is.
//
// Key exported surface:
//
//	Interval      — a closed interval [Lo, Hi] of *big.Rat, Lo <= Hi.
//	New/NewRange/NewChecked — constructors; NewRange panics on lo > hi (a
//	                 construction-time program error), NewChecked returns
//	                 ErrEmptyInterval instead for caller-supplied bounds.
//	Add/Sub/Neg/Mul — interval arithmetic; Mul takes the min/max of the four
//	                 corner products, which is the well-known sound (if not
//	                 always tightest) rule for multiplying two intervals.
//	Midpoint/Width/Contains — interval queries; the bisection search in
//	                 numfield uses Midpoint.
//
// No division is provided: no algorithm in this module needs an inverse
// in the number field, and nothing here ever divides an Interval.
package rational
