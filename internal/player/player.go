// Package player feeds a source of PCM data into a push-mode BASS stream.
// It buffers network reads in a ring buffer and drains it on a fixed tick,
// starting playback once enough data is queued to survive jitter.
package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/lmstream/lmstream/internal/bass"
)

// PushStream is the slice of a bass.Stream the player drives.
type PushStream interface {
	PutData(p []byte) (int, error)
	End() error
	Play(restart bool) error
	Status() bass.ChannelStatus
}

// Config holds player tuning options.
type Config struct {
	ChunkSize  int           // bytes pushed per batch
	Prebuffer  int           // bytes queued before playback starts
	BufferSize int           // network ring buffer capacity
	Tick       time.Duration // push interval
}

// DefaultConfig returns the default player configuration.
func DefaultConfig() Config {
	return Config{
		ChunkSize:  16 << 10,
		Prebuffer:  64 << 10,
		BufferSize: 256 << 10,
		Tick:       20 * time.Millisecond,
	}
}

type Player struct {
	stream PushStream
	cfg    Config
}

// New creates a Player over stream. Zero fields of cfg fall back to the
// defaults.
func New(stream PushStream, cfg Config) *Player {
	def := DefaultConfig()
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = def.ChunkSize
	}
	if cfg.Prebuffer <= 0 {
		cfg.Prebuffer = def.Prebuffer
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.Tick <= 0 {
		cfg.Tick = def.Tick
	}
	return &Player{stream: stream, cfg: cfg}
}

// Run reads src until EOF, pushing its data into the stream, then signals
// the end of the stream and waits for the queue to drain. It returns nil
// when playback completes or ctx is cancelled.
func (p *Player) Run(ctx context.Context, src io.Reader) error {
	rb := newRingBuffer(p.cfg.BufferSize)
	readDone := make(chan error, 1)
	go p.fill(ctx, rb, src, readDone)

	ticker := time.NewTicker(p.cfg.Tick)
	defer ticker.Stop()

	chunk := make([]byte, p.cfg.ChunkSize)
	var (
		queued  int
		started bool
		srcDone bool
		ended   bool
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readDone:
			if err != nil {
				return fmt.Errorf("reading stream: %w", err)
			}
			srcDone = true
		case <-ticker.C:
			for {
				n := rb.Read(chunk)
				if n == 0 {
					break
				}
				q, err := p.stream.PutData(chunk[:n])
				if err != nil {
					return fmt.Errorf("pushing samples: %w", err)
				}
				queued = q
			}

			if !started && (queued >= p.cfg.Prebuffer || srcDone) {
				if err := p.stream.Play(false); err != nil {
					return fmt.Errorf("starting playback: %w", err)
				}
				log.Printf("playback started with %d bytes queued", queued)
				started = true
			}

			if srcDone && rb.Len() == 0 {
				if !ended {
					if err := p.stream.End(); err != nil {
						return fmt.Errorf("ending stream: %w", err)
					}
					ended = true
				}
				if p.stream.Status() == bass.ChannelStatusStopped {
					return nil
				}
			}
		}
	}
}

// fill reads src into the ring buffer until EOF, error or cancellation,
// backing off for a tick whenever the buffer is full.
func (p *Player) fill(ctx context.Context, rb *ringBuffer, src io.Reader, done chan<- error) {
	buf := make([]byte, p.cfg.ChunkSize)
	for {
		n, err := src.Read(buf)
		data := buf[:n]
		for len(data) > 0 {
			w := rb.Write(data)
			data = data[w:]
			if len(data) > 0 {
				select {
				case <-ctx.Done():
					done <- nil
					return
				case <-time.After(p.cfg.Tick):
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				done <- nil
			} else {
				done <- err
			}
			return
		}
		if ctx.Err() != nil {
			done <- nil
			return
		}
	}
}
