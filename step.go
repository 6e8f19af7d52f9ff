// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio

import (
	"context"
	"log/slog"

	"code.hybscloud.com/kont"
)

// resume hands v to the pending suspension and settles on the next action.
// The driver counts as aborted until settle records the outcome, so a
// panic inside the procedure leaves it ended rather than half-stepped.
func (d *Driver[R]) resume(v kont.Resumed) {
	susp := d.susp
	d.susp = nil
	d.state = StateEnded
	d.result = Outcome[R]{err: ErrAborted, kind: outcomeFailed}
	d.settle(susp.Resume(v))
}

// settle records the action the procedure is suspended on.
// Error operations are evaluated eagerly: a Throw discards the suspension
// and ends the driver without a value. Any other operation is a bug in the
// procedure and panics.
func (d *Driver[R]) settle(result R, susp *kont.Suspension[R]) {
	for susp != nil {
		switch op := susp.Op().(type) {
		case NeedInput:
			d.suspend(susp, StateNeedInput)
			return
		case NeedOutputBuffer:
			d.suspend(susp, StateNeedOutputBuffer)
			return
		case WaitEvent:
			d.suspend(susp, StateWait)
			return
		case errorDispatcher:
			v, err := dispatchError(op)
			if err != nil {
				susp.Discard()
				d.fail(err)
				return
			}
			result, susp = susp.Resume(v)
		default:
			panic("sansio: unhandled effect in Driver")
		}
	}
	d.result = Outcome[R]{value: result, kind: outcomeValue}
	d.transition(StateEnded)
}

func (d *Driver[R]) suspend(susp *kont.Suspension[R], state State) {
	d.susp = susp
	d.result = Outcome[R]{}
	d.transition(state)
}

func (d *Driver[R]) fail(err error) {
	d.result = Outcome[R]{err: err, kind: outcomeFailed}
	d.transition(StateEnded)
	d.log.LogAttrs(context.Background(), slog.LevelDebug, "procedure failed",
		slog.Uint64("serial", uint64(d.serial)),
		slog.String("error", err.Error()),
	)
}

func (d *Driver[R]) transition(state State) {
	d.state = state
	d.log.LogAttrs(context.Background(), slog.LevelDebug, "state",
		slog.Uint64("serial", uint64(d.serial)),
		slog.String("state", state.String()),
		slog.Int("in", d.input.Len()),
		slog.Int("out", d.output.Len()),
	)
}
