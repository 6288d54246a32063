package player

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/lmstream/lmstream/internal/bass"
)

// fakeStream records everything the player pushes. It reports the stream as
// stopped once the end marker has been queued, the way a real push stream
// drains.
type fakeStream struct {
	data   bytes.Buffer
	queued int
	plays  int
	ends   int
}

func (f *fakeStream) PutData(p []byte) (int, error) {
	f.data.Write(p)
	f.queued += len(p)
	return f.queued, nil
}

func (f *fakeStream) End() error {
	f.ends++
	return nil
}

func (f *fakeStream) Play(restart bool) error {
	f.plays++
	return nil
}

func (f *fakeStream) Status() bass.ChannelStatus {
	if f.ends > 0 {
		return bass.ChannelStatusStopped
	}
	return bass.ChannelStatusPlaying
}

func testConfig() Config {
	return Config{
		ChunkSize:  8,
		Prebuffer:  16,
		BufferSize: 64,
		Tick:       time.Millisecond,
	}
}

func TestRunPushesAllData(t *testing.T) {
	src := bytes.Repeat([]byte("0123456789abcdef"), 20)
	stream := &fakeStream{}

	err := New(stream, testConfig()).Run(context.Background(), bytes.NewReader(src))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !bytes.Equal(stream.data.Bytes(), src) {
		t.Fatalf("pushed %d bytes, want %d, or data reordered",
			stream.data.Len(), len(src))
	}
	if stream.plays != 1 {
		t.Errorf("Play called %d times, want 1", stream.plays)
	}
	if stream.ends != 1 {
		t.Errorf("End called %d times, want 1", stream.ends)
	}
}

func TestRunTinySource(t *testing.T) {
	// a source smaller than the prebuffer must still start and finish
	stream := &fakeStream{}
	err := New(stream, testConfig()).Run(context.Background(), bytes.NewReader([]byte("hi")))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := stream.data.String(); got != "hi" {
		t.Errorf("pushed %q, want %q", got, "hi")
	}
	if stream.plays != 1 || stream.ends != 1 {
		t.Errorf("plays = %d, ends = %d, want 1 and 1", stream.plays, stream.ends)
	}
}

func TestRunEmptySource(t *testing.T) {
	stream := &fakeStream{}
	err := New(stream, testConfig()).Run(context.Background(), bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stream.data.Len() != 0 {
		t.Errorf("pushed %d bytes from an empty source", stream.data.Len())
	}
	if stream.ends != 1 {
		t.Errorf("End called %d times, want 1", stream.ends)
	}
}

func TestRunSourceError(t *testing.T) {
	readErr := errors.New("connection reset")
	src := io.MultiReader(bytes.NewReader([]byte("partial")), errReader{readErr})

	err := New(&fakeStream{}, testConfig()).Run(context.Background(), src)
	if !errors.Is(err, readErr) {
		t.Fatalf("Run = %v, want wrapped %v", err, readErr)
	}
}

func TestRunCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New(&fakeStream{}, testConfig()).Run(ctx, pr)
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run after cancel: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
