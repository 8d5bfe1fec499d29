// SPDX-License-Identifier: MIT
// Package rational: sentinel errors.
//
// Error policy mirrors the rest of this module: only sentinel variables are
// exposed, callers branch with errors.Is, and sentinels are never wrapped
// with formatted strings at their definition site.

package rational

import "errors"

// ErrEmptyInterval is returned by NewChecked when lo > hi, i.e. the
// requested interval would be empty under the closed-interval invariant
// every Interval in this package maintains.
var ErrEmptyInterval = errors.New("rational: interval lo > hi")
