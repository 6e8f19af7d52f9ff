// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio

type outcomeKind uint8

const (
	outcomePending outcomeKind = iota
	outcomeValue
	outcomeFailed
)

// Outcome is the terminal slot of a procedure: pending, ended with a
// value, or ended without one because the procedure failed.
type Outcome[R any] struct {
	value R
	err   error
	kind  outcomeKind
}

// Pending reports whether the procedure is still running.
func (o Outcome[R]) Pending() bool {
	return o.kind == outcomePending
}

// Get returns the terminal value and true if the procedure returned.
func (o Outcome[R]) Get() (R, bool) {
	if o.kind != outcomeValue {
		var zero R
		return zero, false
	}
	return o.value, true
}

// Err returns the failure that ended the procedure, or nil.
func (o Outcome[R]) Err() error {
	return o.err
}
