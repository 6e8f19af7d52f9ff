// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio

// Endpoint is the byte surface of a Driver.
type Endpoint interface {
	Send(p []byte) error
	Read(n int) ([]byte, error)
}

var _ Endpoint = (*Driver[struct{}])(nil)

// Splice connects two endpoints back to back on the calling goroutine:
// whatever one produces is sent to the other, in turns, until neither side
// produces anything. It returns the number of bytes moved and the first
// failure of either procedure.
//
// Splice does not spawn goroutines and never waits; a pair of procedures
// that both wait for input simply ends the exchange.
func Splice(a, b Endpoint) (int, error) {
	moved := 0
	for {
		progress := false
		for _, leg := range [2][2]Endpoint{{a, b}, {b, a}} {
			p, err := leg[0].Read(0)
			if len(p) > 0 {
				progress = true
				moved += len(p)
				if serr := leg[1].Send(p); serr != nil {
					return moved, serr
				}
			}
			if err != nil {
				return moved, err
			}
		}
		if !progress {
			return moved, nil
		}
	}
}
