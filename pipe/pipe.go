// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pipe drives element-wise procedures with the same discipline as
// the sansio byte driver.
//
// A procedure reads atomic elements with [Read], emits them with [Send] and
// backtracks with [Putback]. A [Pipe] steps it only from [Pipe.Read]: the
// procedure runs until it emits one element or asks for an element the
// input does not hold. There is no wait action; an unsatisfied read is the
// suspension.
package pipe

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lfq"
	"code.hybscloud.com/sansio"
)

// outputCapacity bounds the output queue. Read steps the procedure up to
// one SendAction before dequeuing, so at most one element is ever queued.
const outputCapacity = 4

// ErrMissingElement is returned by Read when the procedure cannot produce
// an element from the input written so far.
var ErrMissingElement = fmt.Errorf("pipe: missing element: %w", iox.ErrWouldBlock)

// errorDispatcher is the structural interface of kont error operations.
type errorDispatcher interface {
	DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
}

// Pipe feeds elements of type T through one procedure with result R.
// A Pipe is not safe for concurrent use.
type Pipe[T, R any] struct {
	susp   *kont.Suspension[R]
	input  []T
	back   []T
	out    lfq.SPSC[T]
	result R
	err    error
	serial sansio.Serial
	done   bool
	sent   bool
}

// New starts a Cont-world procedure and steps it to its first action.
// It panics if the procedure performs an effect that is not a pipe action.
func New[T, R any](proc kont.Eff[R]) *Pipe[T, R] {
	return NewExpr[T](kont.Reify(proc))
}

// NewExpr starts an Expr-world procedure and steps it to its first action.
func NewExpr[T, R any](proc kont.Expr[R]) *Pipe[T, R] {
	p := &Pipe[T, R]{serial: sansio.NextSerial()}
	p.out.Init(outputCapacity)
	p.settle(kont.StepExpr(proc))
	return p
}

// Serial returns the serial assigned to this pipe.
func (p *Pipe[T, R]) Serial() sansio.Serial {
	return p.serial
}

// Write appends v to the input.
func (p *Pipe[T, R]) Write(v T) {
	p.input = append(p.input, v)
}

// WriteMany appends vs to the input in order.
func (p *Pipe[T, R]) WriteMany(vs ...T) {
	p.input = append(p.input, vs...)
}

// Read returns the next element the procedure emits.
// It returns ErrMissingElement when none can be produced yet, and the
// procedure's failure once it has failed and every emitted element has
// been read.
func (p *Pipe[T, R]) Read() (T, error) {
	err := p.process()
	v, derr := p.out.Dequeue()
	if derr == nil {
		return v, nil
	}
	var zero T
	if err != nil {
		return zero, err
	}
	return zero, ErrMissingElement
}

// Iterate returns a sequence over the elements that can be produced now.
// The sequence consumes from the pipe as it goes and stops at the first
// missing element or failure; see Err. Iterating again continues from the
// current state of the pipe.
func (p *Pipe[T, R]) Iterate() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := p.Read()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// ReadAll drains every element that can be produced now.
func (p *Pipe[T, R]) ReadAll() ([]T, error) {
	vs := slices.Collect(p.Iterate())
	return vs, p.err
}

// Err returns the failure that ended the procedure, or nil.
func (p *Pipe[T, R]) Err() error {
	return p.err
}

// Result returns the procedure's return value, if it has returned.
func (p *Pipe[T, R]) Result() (R, bool) {
	if !p.done || p.err != nil {
		var zero R
		return zero, false
	}
	return p.result, true
}

// process runs the procedure until it emits one element, or reads from an
// empty input, or ends.
func (p *Pipe[T, R]) process() error {
	if p.sent {
		p.sent = false
		p.resume(resumeUnit)
	}
	for p.susp != nil {
		switch op := p.susp.Op().(type) {
		case SendAction[T]:
			v := op.Value
			if err := p.out.Enqueue(&v); err != nil {
				return err
			}
			p.sent = true
			return nil
		case ReadAction[T]:
			v, ok := p.pop()
			if !ok {
				return nil
			}
			p.resume(element[T]{v: v})
		case PutbackAction[T]:
			p.back = append(p.back, op.Value)
			p.resume(resumeUnit)
		}
	}
	return p.err
}

// pop takes the most recent putback, else the oldest written element.
func (p *Pipe[T, R]) pop() (T, bool) {
	var zero T
	if n := len(p.back); n > 0 {
		v := p.back[n-1]
		p.back[n-1] = zero
		p.back = p.back[:n-1]
		return v, true
	}
	if len(p.input) == 0 {
		return zero, false
	}
	v := p.input[0]
	p.input[0] = zero
	p.input = p.input[1:]
	return v, true
}

// resume hands v to the procedure. Until settle records what it did next,
// the pipe counts as aborted, so a panic inside the procedure ends it.
func (p *Pipe[T, R]) resume(v kont.Resumed) {
	susp := p.susp
	p.susp = nil
	p.done = true
	p.err = sansio.ErrAborted
	p.settle(susp.Resume(v))
}

// settle keeps the suspension if it is a pipe action, and evaluates error
// operations eagerly.
func (p *Pipe[T, R]) settle(result R, susp *kont.Suspension[R]) {
	for susp != nil {
		switch op := susp.Op().(type) {
		case ReadAction[T], SendAction[T], PutbackAction[T]:
			p.susp = susp
			p.done = false
			p.err = nil
			return
		case errorDispatcher:
			var ctx kont.ErrorContext[error]
			v, _ := op.DispatchError(&ctx)
			if ctx.HasErr {
				susp.Discard()
				p.err = ctx.Err
				if p.err == nil {
					p.err = errors.New("pipe: procedure failed with nil error")
				}
				p.done = true
				return
			}
			result, susp = susp.Resume(v)
		default:
			panic("pipe: unhandled effect in Pipe")
		}
	}
	p.result = result
	p.err = nil
	p.done = true
}

// IterPipe feeds seq through a fresh pipe running proc, one element at a
// time, yielding whatever the pipe produces after each write. Once seq is
// exhausted the pipe is drained. A failure of the procedure is yielded as
// the final pair and ends the sequence.
func IterPipe[T, R any](proc kont.Eff[R], seq iter.Seq[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		p := New[T](proc)
		for v := range seq {
			p.Write(v)
			out, err := p.Read()
			if err == nil {
				if !yield(out, nil) {
					return
				}
				continue
			}
			if !errors.Is(err, ErrMissingElement) {
				yield(zero, err)
				return
			}
		}
		for out := range p.Iterate() {
			if !yield(out, nil) {
				return
			}
		}
		if err := p.Err(); err != nil {
			yield(zero, err)
		}
	}
}
