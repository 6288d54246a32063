package bass

import "testing"

// The push sentinel is the library's documented all-ones STREAMPROC pointer.
func TestStreamProcPushValue(t *testing.T) {
	if got := uintptr(StreamProcPush()); got != ^uintptr(0) {
		t.Fatalf("StreamProcPush() = %#x, want %#x", got, ^uintptr(0))
	}
}

func TestStreamProcPushStable(t *testing.T) {
	first := StreamProcPush()
	for i := 0; i < 100; i++ {
		if got := StreamProcPush(); got != first {
			t.Fatalf("call %d returned %p, first call returned %p", i, got, first)
		}
	}
}
