// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio

import (
	"code.hybscloud.com/kont"
)

// Peek returns up to n buffered input bytes without consuming them.
// n <= 0 returns everything buffered. Peek never waits for more input.
func Peek(n int) kont.Eff[[]byte] {
	return kont.Bind(kont.Perform(NeedInput{}), func(in *Buffer) kont.Eff[[]byte] {
		return kont.Pure(in.Peek(n))
	})
}

// Wait suspends until the next external event.
func Wait() kont.Eff[struct{}] {
	return kont.Perform(WaitEvent{})
}

// Read consumes and returns exactly n input bytes, waiting for external
// events until that many are buffered. n <= 0 consumes whatever is
// buffered, possibly nothing, without waiting.
func Read(n int) kont.Eff[[]byte] {
	return kont.Bind(kont.Perform(NeedInput{}), func(in *Buffer) kont.Eff[[]byte] {
		if in.Len() >= n {
			return kont.Pure(in.Read(n))
		}
		return kont.Then(Wait(), Read(n))
	})
}

// Write enqueues p on the output buffer and completes only once a reader
// has drained the output buffer completely.
func Write(p []byte) kont.Eff[struct{}] {
	if len(p) == 0 {
		return Flush()
	}
	return kont.Bind(kont.Perform(NeedOutputBuffer{}), func(out *Buffer) kont.Eff[struct{}] {
		out.Write(p)
		return kont.Then(Wait(), Flush())
	})
}

// Flush completes once the output buffer is empty, waiting for external
// events while it is not.
func Flush() kont.Eff[struct{}] {
	return kont.Bind(kont.Perform(NeedOutputBuffer{}), func(out *Buffer) kont.Eff[struct{}] {
		if out.Len() == 0 {
			return kont.Pure(struct{}{})
		}
		return kont.Then(Wait(), Flush())
	})
}

// PeekBind peeks up to n input bytes and passes them to f.
// Fuses Peek + Bind.
func PeekBind[B any](n int, f func([]byte) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(Peek(n), f)
}

// ReadBind reads n input bytes and passes them to f.
// Fuses Read + Bind.
func ReadBind[B any](n int, f func([]byte) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(Read(n), f)
}

// WriteThen writes p and then continues with next.
// Fuses Write + Then.
func WriteThen[B any](p []byte, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(Write(p), next)
}

// WaitThen waits for one external event and then continues with next.
func WaitThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(Wait(), next)
}

// Forever repeats body without end. The resulting procedure never
// returns; it ends only by failing.
func Forever[A any](body func() kont.Eff[struct{}]) kont.Eff[A] {
	return kont.Bind(body(), func(struct{}) kont.Eff[A] {
		return Forever[A](body)
	})
}

// Loop runs a procedure that carries state S across rounds, such as a
// line counter or a partially decoded frame. Each round is one call of
// step, which may suspend on any action; it returns Left(next) to start
// another round or Right(result) to end the procedure with result.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	var round func(kont.Either[S, A]) kont.Eff[A]
	round = func(e kont.Either[S, A]) kont.Eff[A] {
		if result, ok := e.GetRight(); ok {
			return kont.Pure(result)
		}
		state, _ := e.GetLeft()
		return kont.Bind(step(state), round)
	}
	return kont.Bind(step(initial), round)
}
