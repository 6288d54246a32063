package player

import "sync"

// reference: https://en.wikipedia.org/wiki/Circular_buffer
type ringBuffer struct {
	mu   sync.Mutex
	buf  []byte
	r, w int
	full bool
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{buf: make([]byte, size)}
}

// Write copies as much of src into the buffer as fits and returns the number
// of bytes written. Safe for a single producer alongside a single consumer.
func (rb *ringBuffer) Write(src []byte) int {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	written := 0
	for written < len(src) && !rb.full {
		end := len(rb.buf)
		if rb.w < rb.r {
			end = rb.r
		}
		n := copy(rb.buf[rb.w:end], src[written:])
		if n == 0 {
			break
		}
		written += n
		rb.w = (rb.w + n) % len(rb.buf)
		if rb.w == rb.r {
			rb.full = true
		}
	}
	return written
}

// Read drains buffered bytes into dst and returns the number read.
func (rb *ringBuffer) Read(dst []byte) int {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	read := 0
	for read < len(dst) && (rb.full || rb.r != rb.w) {
		end := len(rb.buf)
		if rb.r < rb.w {
			end = rb.w
		}
		n := copy(dst[read:], rb.buf[rb.r:end])
		if n == 0 {
			break
		}
		read += n
		rb.r = (rb.r + n) % len(rb.buf)
		rb.full = false
	}
	return read
}

// Len reports the number of buffered bytes.
func (rb *ringBuffer) Len() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.full {
		return len(rb.buf)
	}
	if rb.w >= rb.r {
		return rb.w - rb.r
	}
	return len(rb.buf) - rb.r + rb.w
}
