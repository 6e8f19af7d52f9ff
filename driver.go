// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio

import (
	"log/slog"

	"code.hybscloud.com/kont"
)

// Driver runs one protocol procedure against an input and an output Buffer.
//
// The procedure is stepped only from Send, Read and Result. Each call first
// resumes a procedure waiting on WaitEvent, then keeps handing it the
// buffers it asks for until it waits again or ends. None of the calls
// block; a call may make no progress at all.
//
// A Driver is not safe for concurrent use.
type Driver[R any] struct {
	input  Buffer
	output Buffer
	susp   *kont.Suspension[R]
	result Outcome[R]
	log    *slog.Logger
	serial Serial
	state  State
}

// New starts a Cont-world procedure and steps it to its first action.
// It panics if the procedure performs an effect that is not an action.
func New[R any](proc kont.Eff[R], opts ...Option) *Driver[R] {
	return NewExpr(kont.Reify(proc), opts...)
}

// NewExpr starts an Expr-world procedure and steps it to its first action.
// The Expr must not be shared with another driver.
func NewExpr[R any](proc kont.Expr[R], opts ...Option) *Driver[R] {
	o := buildOptions(opts)
	d := &Driver[R]{
		log:    o.logger,
		serial: NextSerial(),
	}
	d.settle(kont.StepExpr(proc))
	return d
}

// Serial returns the serial assigned to this driver.
func (d *Driver[R]) Serial() Serial {
	return d.serial
}

// State returns the action the procedure is suspended on.
func (d *Driver[R]) State() State {
	return d.state
}

// Send appends p to the input buffer and runs the procedure as far as it
// can go. p is held by reference until consumed. Sending an empty slice
// does nothing. The returned error is the procedure's failure, if any.
func (d *Driver[R]) Send(p []byte) error {
	if len(p) == 0 {
		return d.result.err
	}
	d.input.Write(p)
	return d.pump()
}

// Read returns up to n bytes produced by the procedure, or everything it
// produces in response to this call if n <= 0. Output is drained in turns
// with pump steps, so a procedure blocked on backpressure keeps producing
// while Read runs. After the first turn, a pump that consumes no input ends
// the call; a procedure that writes without reading yields one more write
// per call. Read returns fewer than n bytes once the procedure stalls or
// ends.
func (d *Driver[R]) Read(n int) ([]byte, error) {
	var acc []byte
	for turn := 0; ; turn++ {
		in := d.input.Len()
		err := d.pump()
		want := 0
		if n > 0 {
			want = n - len(acc)
		}
		chunk := d.output.Read(want)
		if acc == nil {
			acc = chunk
		} else {
			acc = append(acc, chunk...)
		}
		if err != nil {
			return acc, err
		}
		if len(chunk) == 0 || (n > 0 && len(acc) >= n) {
			return acc, nil
		}
		if turn > 0 && d.input.Len() == in {
			return acc, nil
		}
	}
}

// HasResult reports whether the procedure has returned a value.
// It does not step the procedure.
func (d *Driver[R]) HasResult() bool {
	_, ok := d.result.Get()
	return ok
}

// Result steps the procedure once and returns its terminal value.
// It returns ErrNoResult while the procedure is still running, and the
// procedure's failure if it failed.
func (d *Driver[R]) Result() (R, error) {
	if err := d.pump(); err != nil {
		var zero R
		return zero, err
	}
	if v, ok := d.result.Get(); ok {
		return v, nil
	}
	var zero R
	return zero, ErrNoResult
}

// Outcome returns the terminal slot without stepping the procedure.
func (d *Driver[R]) Outcome() Outcome[R] {
	return d.result
}

// Drained reports whether every byte sent has been consumed.
func (d *Driver[R]) Drained() bool {
	return d.input.Len() == 0
}

// pump resumes a waiting procedure, then serves its buffer requests until
// it waits again or ends.
func (d *Driver[R]) pump() error {
	if d.state == StateWait {
		d.resume(resumeUnit)
	}
	for {
		switch d.state {
		case StateNeedInput:
			d.resume(&d.input)
		case StateNeedOutputBuffer:
			d.resume(&d.output)
		default:
			return d.result.err
		}
	}
}
