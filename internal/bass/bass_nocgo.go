//go:build !cgo

// Stub build used when cgo is disabled. Every call that would reach the
// native library reports errNoCgo; constants mirror the library's documented
// ABI values so code and tests that only touch them still build and run.

package bass

import (
	"errors"
	"unsafe"
)

var errNoCgo = errors.New("bass: built without cgo, the BASS library is unavailable")

// InitFlags represents BASS library initialization flags.
type InitFlags int

const (
	InitFlag8BITS     InitFlags = 1      // 8 bit
	InitFlagMONO      InitFlags = 2      // mono
	InitFlag16BITS    InitFlags = 8      // limit output to 16 bit
	InitFlagLATENCY   InitFlags = 0x100  // calculate device latency
	InitFlagNOSPEAKER InitFlags = 0x1000 // ignore speaker arrangement
	InitFlagDMIX      InitFlags = 0x2000 // use ALSA "dmix" plugin
	InitFlagFREQ      InitFlags = 0x4000 // set device sample rate
	InitFlagSTEREO    InitFlags = 0x8000 // limit output to stereo
)

// StreamFlags represents stream creation flags.
type StreamFlags int

const (
	Sample8Bits    StreamFlags = 1        // 8 bit samples
	SampleFloat    StreamFlags = 0x100    // 32 bit floating-point samples
	SampleLoop     StreamFlags = 4        // loop the stream
	StreamAutoFree StreamFlags = 0x40000  // free the stream when playback ends
	StreamDecode   StreamFlags = 0x200000 // decoding channel, no playback
	StreamBlock    StreamFlags = 0x100000 // download in blocks (URL streams)
	StreamStatus   StreamFlags = 0x800000 // pass server status info to DOWNLOADPROC
)

// ChannelStatus is the playback state reported by BASS_ChannelIsActive.
type ChannelStatus int

const (
	ChannelStatusStopped      ChannelStatus = 0
	ChannelStatusPlaying      ChannelStatus = 1
	ChannelStatusStalled      ChannelStatus = 2
	ChannelStatusPaused       ChannelStatus = 3
	ChannelStatusPausedDevice ChannelStatus = 4
)

// ErrorCode represents BASS library error codes.
type ErrorCode int

const (
	ErrorOK       ErrorCode = 0
	ErrorMEM      ErrorCode = 1
	ErrorFILEOPEN ErrorCode = 2
	ErrorDRIVER   ErrorCode = 3
	ErrorBUFLOST  ErrorCode = 4
	ErrorHANDLE   ErrorCode = 5
	ErrorFORMAT   ErrorCode = 6
	ErrorPOSITION ErrorCode = 7
	ErrorINIT     ErrorCode = 8
	ErrorSTART    ErrorCode = 9
	ErrorSSL      ErrorCode = 10
	ErrorALREADY  ErrorCode = 14
	ErrorNOCHAN   ErrorCode = 18
	ErrorILLTYPE  ErrorCode = 19
	ErrorILLPARAM ErrorCode = 20
	ErrorDEVICE   ErrorCode = 23
	ErrorNOPLAY   ErrorCode = 24
	ErrorFREQ     ErrorCode = 25
	ErrorNOTFILE  ErrorCode = 27
	ErrorNOHW     ErrorCode = 29
	ErrorNONET    ErrorCode = 32
	ErrorCREATE   ErrorCode = 33
	ErrorNOTAVAIL ErrorCode = 37
	ErrorDECODE   ErrorCode = 38
	ErrorTIMEOUT  ErrorCode = 40
	ErrorFILEFORM ErrorCode = 41
	ErrorSPEAKER  ErrorCode = 42
	ErrorVERSION  ErrorCode = 43
	ErrorCODEC    ErrorCode = 44
	ErrorENDED    ErrorCode = 45
	ErrorBUSY     ErrorCode = 46
	ErrorUNKNOWN  ErrorCode = -1
)

// Stream is a BASS stream handle.
type Stream struct {
	handle uint32
}

// Plugin is a loaded BASS add-on.
type Plugin struct {
	handle uint32
	Path   string
}

// StreamProcPush returns the STREAMPROC sentinel that marks a stream as
// push-mode. The value matches the library's definition, the all-ones
// pointer, so its identity can be verified without the library present.
func StreamProcPush() unsafe.Pointer {
	return unsafe.Pointer(^uintptr(0))
}

func Init(device, freq int, flags InitFlags) error { return errNoCgo }

func Free() error { return errNoCgo }

func Version() string { return "0.0.0.0" }

func StreamCreatePush(freq, chans int, flags StreamFlags) (*Stream, error) {
	return nil, errNoCgo
}

func StreamCreateFile(path string, flags StreamFlags) (*Stream, error) {
	return nil, errNoCgo
}

func StreamCreateURL(url string, flags StreamFlags) (*Stream, error) {
	return nil, errNoCgo
}

func PluginLoad(path string) (*Plugin, error) { return nil, errNoCgo }

func (p *Plugin) Free() error { return errNoCgo }

func (s *Stream) PutData(p []byte) (int, error) { return 0, errNoCgo }

func (s *Stream) End() error { return errNoCgo }

func (s *Stream) Buffered() (int, error) { return 0, errNoCgo }

func (s *Stream) Free() error { return errNoCgo }

func (s *Stream) Play(restart bool) error { return errNoCgo }

func (s *Stream) Pause() error { return errNoCgo }

func (s *Stream) Stop() error { return errNoCgo }

func (s *Stream) Status() ChannelStatus { return ChannelStatusStopped }

func (s *Stream) SetVolume(vol float64) error { return errNoCgo }

func (s *Stream) Position() (float64, error) { return 0, errNoCgo }
