// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio

import (
	"code.hybscloud.com/kont"
)

var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

// exprEffect suspends on op and hands the resumed value to next.
func exprEffect[B any](op kont.Erased, next kont.Frame) kont.Expr[B] {
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = next
	return kont.ExprSuspend[B](ef)
}

// ExprWaitThen waits for one external event and then continues with next.
// Fuses ExprPerform(WaitEvent{}) + ExprThen.
func ExprWaitThen[B any](next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	return exprEffect[B](exprWaitEvent, tf)
}

func peekBindUnwind[B any](data, data2, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func([]byte) kont.Expr[B])
	in := current.(*Buffer)
	result := f(in.Peek(data2.(int)))
	return kont.Erased(result.Value), result.Frame
}

// ExprPeekBind peeks up to n input bytes and passes them to f.
// Fuses ExprPerform(NeedInput{}) + Buffer.Peek + ExprBind.
func ExprPeekBind[B any](n int, f func([]byte) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Data2 = n
	bf.Unwind = peekBindUnwind[B]
	return exprEffect[B](exprNeedInput, bf)
}

func readBindUnwind[B any](data, data2, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func([]byte) kont.Expr[B])
	n := data2.(int)
	in := current.(*Buffer)
	var result kont.Expr[B]
	if in.Len() >= n {
		result = f(in.Read(n))
	} else {
		result = ExprWaitThen(ExprReadBind(n, f))
	}
	return kont.Erased(result.Value), result.Frame
}

// ExprReadBind reads n input bytes, waiting while fewer are buffered,
// and passes them to f. n <= 0 reads whatever is buffered.
func ExprReadBind[B any](n int, f func([]byte) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Data2 = n
	bf.Unwind = readBindUnwind[B]
	return exprEffect[B](exprNeedInput, bf)
}

func writeThenUnwind[B any](data, data2, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	current.(*Buffer).Write(data.([]byte))
	result := ExprWaitThen(ExprFlushThen(data2.(kont.Expr[B])))
	return kont.Erased(result.Value), result.Frame
}

// ExprWriteThen writes p, waits until the output buffer is drained,
// and then continues with next.
func ExprWriteThen[B any](p []byte, next kont.Expr[B]) kont.Expr[B] {
	if len(p) == 0 {
		return ExprFlushThen(next)
	}
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = p
	bf.Data2 = next
	bf.Unwind = writeThenUnwind[B]
	return exprEffect[B](exprNeedOutput, bf)
}

func flushThenUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	next := data.(kont.Expr[B])
	var result kont.Expr[B]
	if current.(*Buffer).Len() == 0 {
		result = next
	} else {
		result = ExprWaitThen(ExprFlushThen(next))
	}
	return kont.Erased(result.Value), result.Frame
}

// ExprFlushThen waits until the output buffer is empty and then continues
// with next.
func ExprFlushThen[B any](next kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = next
	bf.Unwind = flushThenUnwind[B]
	return exprEffect[B](exprNeedOutput, bf)
}

// ExprForever repeats body without end (Expr-world).
// Each iteration is built lazily when the previous one completes.
func ExprForever[A any](body func() kont.Expr[struct{}]) kont.Expr[A] {
	m := body()
	bf := kont.AcquireBindFrame()
	bf.F = func(kont.Erased) kont.Expr[kont.Erased] {
		next := ExprForever[A](body)
		return kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	}
	bf.Next = exprReturnFrame
	var zero A
	return kont.Expr[A]{
		Value: zero,
		Frame: kont.ChainFrames(m.Frame, bf),
	}
}
