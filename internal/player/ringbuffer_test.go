package player

import (
	"bytes"
	"testing"
)

func TestRingBufferRoundTrip(t *testing.T) {
	rb := newRingBuffer(16)
	data := []byte("hello ring")

	if n := rb.Write(data); n != len(data) {
		t.Fatalf("Write = %d, want %d", n, len(data))
	}
	if rb.Len() != len(data) {
		t.Fatalf("Len = %d, want %d", rb.Len(), len(data))
	}

	out := make([]byte, 32)
	n := rb.Read(out)
	if !bytes.Equal(out[:n], data) {
		t.Fatalf("Read = %q, want %q", out[:n], data)
	}
	if rb.Len() != 0 {
		t.Fatalf("Len after drain = %d, want 0", rb.Len())
	}
}

func TestRingBufferShortWriteWhenFull(t *testing.T) {
	rb := newRingBuffer(8)
	if n := rb.Write([]byte("12345678")); n != 8 {
		t.Fatalf("Write = %d, want 8", n)
	}
	if n := rb.Write([]byte("x")); n != 0 {
		t.Fatalf("Write into full buffer = %d, want 0", n)
	}

	out := make([]byte, 4)
	if n := rb.Read(out); n != 4 {
		t.Fatalf("Read = %d, want 4", n)
	}
	if n := rb.Write([]byte("abcdef")); n != 4 {
		t.Fatalf("Write after partial drain = %d, want 4", n)
	}
}

func TestRingBufferWrapAround(t *testing.T) {
	rb := newRingBuffer(8)
	out := make([]byte, 8)

	// push the indices past the end of the backing slice repeatedly
	var got, want []byte
	for i := byte(0); i < 50; i++ {
		chunk := []byte{i, i + 1, i + 2}
		if n := rb.Write(chunk); n != len(chunk) {
			t.Fatalf("iteration %d: Write = %d, want %d", i, n, len(chunk))
		}
		want = append(want, chunk...)
		n := rb.Read(out)
		got = append(got, out[:n]...)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("data corrupted across wraparound:\ngot  %v\nwant %v", got, want)
	}
}

func TestRingBufferEmptyRead(t *testing.T) {
	rb := newRingBuffer(8)
	out := make([]byte, 4)
	if n := rb.Read(out); n != 0 {
		t.Fatalf("Read from empty buffer = %d, want 0", n)
	}
}
