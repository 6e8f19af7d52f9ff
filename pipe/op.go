// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import (
	"code.hybscloud.com/kont"
)

// element carries a read element through resumption, so that a nil
// interface value resumes as a concrete type.
type element[T any] struct {
	v T
}

// ReadAction is the effect operation for taking the next input element.
// The pipe leaves the procedure suspended until an element is written.
// Use Read or ReadBind rather than performing it directly.
type ReadAction[T any] struct {
	kont.Phantom[element[T]]
}

// SendAction is the effect operation for emitting Value downstream.
type SendAction[T any] struct {
	kont.Phantom[struct{}]
	Value T
}

// PutbackAction is the effect operation for returning Value to the front
// of the input, so the next ReadAction takes it again.
type PutbackAction[T any] struct {
	kont.Phantom[struct{}]
	Value T
}

var resumeUnit kont.Resumed = struct{}{}
