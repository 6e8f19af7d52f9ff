// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio

import (
	"code.hybscloud.com/kont"
)

// Protocol turns a procedure constructor into a driver factory.
// Every call of the returned function starts a fresh procedure on a fresh
// Driver, one per logical stream. Parameters are captured by fn.
// Protocol panics if fn is nil.
func Protocol[R any](fn func() kont.Eff[R], opts ...Option) func() *Driver[R] {
	if fn == nil {
		panic("sansio: nil protocol procedure")
	}
	return func() *Driver[R] {
		return New(fn(), opts...)
	}
}

// ProtocolExpr is Protocol for Expr-world procedures.
// fn must build a new Expr on every call.
func ProtocolExpr[R any](fn func() kont.Expr[R], opts ...Option) func() *Driver[R] {
	if fn == nil {
		panic("sansio: nil protocol procedure")
	}
	return func() *Driver[R] {
		return NewExpr(fn(), opts...)
	}
}
