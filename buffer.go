// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sansio

// Buffer is a segmented byte queue with a read cursor into its head chunk.
//
// Written chunks are held by reference and never copied on Write. Peek and
// Read return a subslice of the head chunk when the requested span lies
// entirely inside it; only spans crossing a chunk boundary are materialized
// into a fresh contiguous slice. Slices returned by Peek and Read must be
// treated as read-only.
//
// Invariants: cursor is 0 whenever the queue is empty, and strictly less
// than the head chunk length otherwise. A chunk is dropped the instant it
// is fully consumed; the queue never holds an empty chunk.
//
// The zero value is an empty buffer ready to use.
type Buffer struct {
	chunks [][]byte
	cursor int
	size   int
}

// Write appends p to the tail of the buffer without copying.
// The caller must not modify p afterwards. Empty slices are ignored.
func (b *Buffer) Write(p []byte) {
	if len(p) == 0 {
		return
	}
	b.chunks = append(b.chunks, p)
	b.size += len(p)
}

// Len returns the number of unread bytes.
func (b *Buffer) Len() int {
	return b.size - b.cursor
}

// Chunks returns the number of chunks currently queued.
func (b *Buffer) Chunks() int {
	return len(b.chunks)
}

// Peek returns up to n bytes from the front of the buffer without consuming
// them. n <= 0 returns every buffered byte. Peek never waits: with fewer
// than n bytes buffered it returns what is available.
func (b *Buffer) Peek(n int) []byte {
	data, _, _ := b.span(n)
	return data
}

// Read returns up to n bytes from the front of the buffer and consumes them.
// n <= 0 consumes every buffered byte.
func (b *Buffer) Read(n int) []byte {
	data, consumed, cursor := b.span(n)
	for i := range consumed {
		b.size -= len(b.chunks[i])
		b.chunks[i] = nil
	}
	b.chunks = b.chunks[consumed:]
	if len(b.chunks) == 0 {
		b.chunks = nil
	}
	b.cursor = cursor
	return data
}

// span locates the first n bytes (all bytes if n <= 0) starting at the cursor.
// It returns the bytes, how many whole chunks they exhaust, and the cursor
// position inside the first chunk that is not exhausted.
func (b *Buffer) span(n int) (data []byte, consumed int, cursor int) {
	avail := b.Len()
	if n <= 0 || n > avail {
		n = avail
	}
	if n == 0 {
		return []byte{}, 0, b.cursor
	}

	head := b.chunks[0][b.cursor:]
	if n < len(head) {
		return head[:n:n], 0, b.cursor + n
	}
	if n == len(head) {
		return head[:n:n], 1, 0
	}

	data = make([]byte, 0, n)
	data = append(data, head...)
	consumed = 1
	for _, chunk := range b.chunks[1:] {
		need := n - len(data)
		if need < len(chunk) {
			data = append(data, chunk[:need]...)
			return data, consumed, need
		}
		data = append(data, chunk...)
		consumed++
		if need == len(chunk) {
			break
		}
	}
	return data, consumed, 0
}
