// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// ErrNoResult is returned by Result while the procedure has not produced
// a terminal value yet. It wraps iox.ErrWouldBlock: the condition is not a
// failure, the caller retries after feeding more input.
var ErrNoResult = fmt.Errorf("sansio: no result yet: %w", iox.ErrWouldBlock)

// ErrAborted is returned by every call after a procedure panicked while
// the driver was resuming it. The panic itself propagates to the caller
// that resumed the procedure.
var ErrAborted = errors.New("sansio: procedure aborted by panic")

// ErrEnded is returned by Stream writes after the procedure has ended.
var ErrEnded = errors.New("sansio: procedure ended")

// Fail aborts the running procedure with err.
// The driver discards the procedure and returns err from the Send, Read
// or Result call that resumed it. Fail can be recovered with
// kont.CatchError[error] inside the procedure.
func Fail[A any](err error) kont.Eff[A] {
	return kont.ThrowError[error, A](err)
}

// errorDispatcher is the structural interface of kont error operations
// (Throw and Catch) specialized to error values.
type errorDispatcher interface {
	DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
}

// dispatchError evaluates an error operation eagerly.
// Returns the resume value, or the thrown error when the operation failed.
func dispatchError(eop errorDispatcher) (kont.Resumed, error) {
	var ctx kont.ErrorContext[error]
	v, _ := eop.DispatchError(&ctx)
	if ctx.HasErr {
		if ctx.Err == nil {
			return nil, errors.New("sansio: procedure failed with nil error")
		}
		return nil, ctx.Err
	}
	return v, nil
}
