package enginelog

import "sync"

// Buffer is a pooled byte buffer handed out by engine read paths.
// The receiver owns it until ReleaseBuffer; the bytes must not be used afterwards.
type Buffer struct{ b []byte }

// Bytes returns the contents; the slice is only valid until ReleaseBuffer.
func (buf *Buffer) Bytes() []byte { return buf.b }

// Len returns the number of bytes held.
func (buf *Buffer) Len() int { return len(buf.b) }

// String returns a copy of the contents that outlives the buffer.
func (buf *Buffer) String() string { return string(buf.b) }

// Reset empties the buffer and keeps its capacity.
func (buf *Buffer) Reset() { buf.b = buf.b[:0] }

// Write appends p; it never fails.
func (buf *Buffer) Write(p []byte) (int, error) {
	buf.b = append(buf.b, p...)
	return len(p), nil
}

// SetBytes replaces the contents with p, which may alias Bytes() of this buffer.
func (buf *Buffer) SetBytes(p []byte) { buf.b = p }

// Grow ensures room for n more bytes without another allocation.
func (buf *Buffer) Grow(n int) {
	free := cap(buf.b) - len(buf.b)
	if n <= free {
		return
	}
	need := len(buf.b) + n
	newCap := cap(buf.b) * 2
	if newCap < need {
		newCap = need
	}
	nb := make([]byte, len(buf.b), newCap)
	copy(nb, buf.b)
	buf.b = nb
}

const (
	defaultBufCap = 2048
	maxPooledCap  = 64 * 1024
)

var bufPool = sync.Pool{New: func() any { return &Buffer{b: make([]byte, 0, defaultBufCap)} }}

// AcquireBuffer returns an empty buffer with room for at least n bytes.
func AcquireBuffer(n int) *Buffer {
	buf := bufPool.Get().(*Buffer)
	buf.b = buf.b[:0]
	if n > 0 {
		buf.Grow(n)
	}
	return buf
}

// ReleaseBuffer returns buf to the pool. A nil buf is a no-op.
// Buffers that grew past 64 KiB are left to the GC.
func ReleaseBuffer(buf *Buffer) {
	if buf == nil {
		return
	}
	if cap(buf.b) > maxPooledCap {
		buf.b = nil
		return
	}
	buf.b = buf.b[:0]
	bufPool.Put(buf)
}
