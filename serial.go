// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing instance identifier.
// Every Driver, and every pipe.Pipe, takes the next value on creation
// so traces from interleaved streams can be told apart.
type Serial = uint32

// counter is the process-wide source of serials.
var counter atomix.Uint32

// NextSerial returns the next serial.
func NextSerial() Serial {
	return counter.Add(1)
}
