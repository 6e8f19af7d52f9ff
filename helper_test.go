// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio_test

import (
	"bytes"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/sansio"
)

// readLine waits for a '\n' and reads through it.
func readLine() kont.Eff[[]byte] {
	return sansio.PeekBind(0, func(data []byte) kont.Eff[[]byte] {
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			return sansio.Read(i + 1)
		}
		return sansio.WaitThen(readLine())
	})
}

// echoLines writes back every complete line it reads.
func echoLines() kont.Eff[struct{}] {
	return sansio.Forever[struct{}](func() kont.Eff[struct{}] {
		return kont.Bind(readLine(), sansio.Write)
	})
}

// lineParser returns the first line without its terminator.
func lineParser() kont.Eff[string] {
	return kont.Map(readLine(), func(line []byte) string {
		return string(line[:len(line)-1])
	})
}

// mustRead reads everything producible and fails on a procedure error.
func mustRead[R any](tb testing.TB, d *sansio.Driver[R]) string {
	tb.Helper()
	out, err := d.Read(0)
	if err != nil {
		tb.Fatalf("Read: %v", err)
	}
	return string(out)
}
