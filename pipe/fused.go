// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import (
	"code.hybscloud.com/kont"
)

// Read takes the next input element.
func Read[T any]() kont.Eff[T] {
	return kont.Map(kont.Perform(ReadAction[T]{}), func(e element[T]) T {
		return e.v
	})
}

// Send emits v.
func Send[T any](v T) kont.Eff[struct{}] {
	return kont.Perform(SendAction[T]{Value: v})
}

// Putback returns v to the front of the input.
func Putback[T any](v T) kont.Eff[struct{}] {
	return kont.Perform(PutbackAction[T]{Value: v})
}

// ReadBind takes the next input element and passes it to f.
// Fuses Perform(ReadAction[T]{}) + Bind.
func ReadBind[T, B any](f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(ReadAction[T]{}), func(e element[T]) kont.Eff[B] {
		return f(e.v)
	})
}

// SendThen emits v and then continues with next.
// Fuses Perform(SendAction[T]{Value: v}) + Then.
func SendThen[T, B any](v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(SendAction[T]{Value: v}), next)
}

// PutbackThen returns v to the input and then continues with next.
func PutbackThen[T, B any](v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(PutbackAction[T]{Value: v}), next)
}
