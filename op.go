// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio

import (
	"code.hybscloud.com/kont"
)

// NeedInput is the effect operation a procedure performs to reach the
// driver's input buffer. Perform(NeedInput{}) resumes with a live *Buffer
// that may be peeked or read in place.
type NeedInput struct {
	kont.Phantom[*Buffer]
}

// NeedOutputBuffer is the effect operation a procedure performs to reach
// the driver's output buffer. Perform(NeedOutputBuffer{}) resumes with a
// live *Buffer that may be written in place.
type NeedOutputBuffer struct {
	kont.Phantom[*Buffer]
}

// WaitEvent suspends the procedure until the next external event.
// The driver resumes it exactly once per Send, Read or Result call.
// A procedure polling a condition that cannot change locally must go
// through WaitEvent, or the pump never returns.
type WaitEvent struct {
	kont.Phantom[struct{}]
}

// State is the driver state derived from the pending action.
type State uint8

const (
	// StateWait means the procedure waits for an external event.
	StateWait State = iota
	// StateNeedInput means the procedure asks for the input buffer.
	StateNeedInput
	// StateNeedOutputBuffer means the procedure asks for the output buffer.
	StateNeedOutputBuffer
	// StateEnded means the procedure returned or failed.
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateWait:
		return "wait"
	case StateNeedInput:
		return "need-input"
	case StateNeedOutputBuffer:
		return "need-output-buffer"
	case StateEnded:
		return "ended"
	}
	return "invalid"
}

// Pre-boxed resume values and operations, so that stepping the hot
// actions does not allocate.
var (
	resumeUnit     kont.Resumed = struct{}{}
	exprNeedInput  kont.Erased  = NeedInput{}
	exprNeedOutput kont.Erased  = NeedOutputBuffer{}
	exprWaitEvent  kont.Erased  = WaitEvent{}
)
