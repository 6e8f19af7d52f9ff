// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import (
	"code.hybscloud.com/kont"
)

var exprReturnFrame kont.Frame = kont.ReturnFrame{}

func identityResume(v kont.Erased) kont.Erased { return v }

// exprAction suspends on a pipe action and continues with next.
func exprAction[B any](op kont.Erased, next kont.Frame) kont.Expr[B] {
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = next
	return kont.ExprSuspend[B](ef)
}

// thenFrame discards the unit result of an action and runs next.
func thenFrame[B any](next kont.Expr[B]) kont.Frame {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	return tf
}

// ExprSendThen emits v downstream; the pipe resumes the procedure with
// next on the Read call after the one that returned v.
func ExprSendThen[T, B any](v T, next kont.Expr[B]) kont.Expr[B] {
	return exprAction[B](SendAction[T]{Value: v}, thenFrame(next))
}

// ExprPutbackThen returns v to the front of the input and continues with
// next, which reads v again first.
func ExprPutbackThen[T, B any](v T, next kont.Expr[B]) kont.Expr[B] {
	return exprAction[B](PutbackAction[T]{Value: v}, thenFrame(next))
}

func readBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T) kont.Expr[B])
	result := f(current.(element[T]).v)
	return kont.Erased(result.Value), result.Frame
}

// ExprReadBind takes the next input element and passes it to f.
// The procedure stays suspended until an element has been written.
func ExprReadBind[T, B any](f func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = readBindUnwind[T, B]
	return exprAction[B](ReadAction[T]{}, bf)
}
