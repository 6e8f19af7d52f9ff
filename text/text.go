// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package text provides delimiter and string helpers for sansio procedures.
// They are built only from the sansio primitives.
package text

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/sansio"
)

// ErrInvalidUTF8 fails ReadString when the input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("text: invalid UTF-8 input")

// ErrEmptyDelimiter fails ReadUntil when called with an empty separator.
var ErrEmptyDelimiter = errors.New("text: empty delimiter")

// WaitFor waits until sep is buffered and returns its offset in the input.
func WaitFor(sep []byte) kont.Eff[int] {
	if len(sep) == 0 {
		return sansio.Fail[int](ErrEmptyDelimiter)
	}
	return sansio.PeekBind(0, func(data []byte) kont.Eff[int] {
		if i := bytes.Index(data, sep); i >= 0 {
			return kont.Pure(i)
		}
		return sansio.WaitThen(WaitFor(sep))
	})
}

// ReadUntil reads input up to sep. With included set, sep is consumed and
// returned as part of the data; otherwise it stays buffered.
func ReadUntil(sep []byte, included bool) kont.Eff[[]byte] {
	return kont.Bind(WaitFor(sep), func(i int) kont.Eff[[]byte] {
		if included {
			return sansio.Read(i + len(sep))
		}
		if i == 0 {
			return kont.Pure([]byte{})
		}
		return sansio.Read(i)
	})
}

// ReadLine reads one '\n' terminated line and returns it without the
// terminator.
func ReadLine() kont.Eff[[]byte] {
	return kont.Map(ReadUntil([]byte{'\n'}, true), func(line []byte) []byte {
		return line[:len(line)-1]
	})
}

// ReadString reads the buffered input as a string, waiting until at least
// one complete rune is available. A trailing partial rune stays buffered
// for the next call.
func ReadString() kont.Eff[string] {
	return sansio.PeekBind(0, func(data []byte) kont.Eff[string] {
		n := completePrefix(data)
		if n == 0 {
			return sansio.WaitThen(ReadString())
		}
		if !utf8.Valid(data[:n]) {
			return sansio.Fail[string](ErrInvalidUTF8)
		}
		return kont.Map(sansio.Read(n), func(b []byte) string {
			return string(b)
		})
	})
}

// WriteString writes s.
func WriteString(s string) kont.Eff[struct{}] {
	return sansio.Write([]byte(s))
}

// completePrefix returns the length of the longest prefix of data that does
// not end inside an incomplete rune.
func completePrefix(data []byte) int {
	n := len(data)
	for i := n - 1; i >= 0 && i >= n-utf8.UTFMax; i-- {
		if utf8.RuneStart(data[i]) {
			if utf8.FullRune(data[i:]) {
				return n
			}
			return i
		}
	}
	return n
}
