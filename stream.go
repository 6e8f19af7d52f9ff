// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio

import (
	"bytes"

	"code.hybscloud.com/iox"
)

// Stream adapts a Driver to the iox.Reader and iox.Writer interfaces, so
// transport code can copy into and out of a procedure with the usual io
// helpers.
//
// Read follows iox non-blocking semantics: it returns iox.ErrWouldBlock when
// the procedure has nothing to produce yet, and iox.EOF once the procedure
// has ended and its output is drained.
type Stream[R any] struct {
	d *Driver[R]
}

var (
	_ iox.Reader = (*Stream[struct{}])(nil)
	_ iox.Writer = (*Stream[struct{}])(nil)
)

// NewStream wraps d.
func NewStream[R any](d *Driver[R]) *Stream[R] {
	return &Stream[R]{d: d}
}

// Driver returns the wrapped driver.
func (s *Stream[R]) Driver() *Driver[R] {
	return s.d
}

// Write copies p into the procedure's input and runs it.
// It fails with the procedure's failure, or ErrEnded once the procedure
// has returned.
func (s *Stream[R]) Write(p []byte) (int, error) {
	if s.d.State() == StateEnded {
		if err := s.d.result.err; err != nil {
			return 0, err
		}
		return 0, ErrEnded
	}
	if err := s.d.Send(bytes.Clone(p)); err != nil {
		return len(p), err
	}
	return len(p), nil
}

// Read drains up to len(p) produced bytes into p.
func (s *Stream[R]) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	data, err := s.d.Read(len(p))
	n := copy(p, data)
	if err != nil {
		return n, err
	}
	if n == 0 {
		if s.d.State() == StateEnded {
			return 0, iox.EOF
		}
		return 0, iox.ErrWouldBlock
	}
	return n, nil
}
