//go:build cgo

package bass

/*
#include <stdlib.h>
#include "bass.h"

// STREAMPROC_PUSH is a pointer-cast macro, which cgo cannot evaluate as a
// constant. Return it from a real function instead.
static STREAMPROC *lmstream_streamproc_push(void) {
	return STREAMPROC_PUSH;
}
*/
import "C"

import "unsafe"

// Stream is a BASS stream handle.
type Stream struct {
	handle C.HSTREAM
}

// StreamProcPush returns the STREAMPROC sentinel that marks a stream as
// push-mode: the caller supplies sample data with PutData rather than BASS
// pulling it through a callback. The value is opaque and must never be
// dereferenced.
func StreamProcPush() unsafe.Pointer {
	return unsafe.Pointer(C.lmstream_streamproc_push())
}

// StreamCreatePush creates a push-mode sample stream. Data fed with PutData
// is interleaved PCM at the given rate and channel count, 16 bit unless a
// sample format flag says otherwise.
func StreamCreatePush(freq, chans int, flags StreamFlags) (*Stream, error) {
	h := C.BASS_StreamCreate(C.DWORD(freq), C.DWORD(chans), C.DWORD(flags),
		(*C.STREAMPROC)(StreamProcPush()), nil)
	if h == 0 {
		return nil, lastError("BASS_StreamCreate")
	}
	return &Stream{handle: h}, nil
}

// StreamCreateFile creates a stream from a local file. The format is
// detected by BASS or one of its loaded plugins.
func StreamCreateFile(path string, flags StreamFlags) (*Stream, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	h := C.BASS_StreamCreateFile(0, unsafe.Pointer(cpath), 0, 0, C.DWORD(flags))
	if h == 0 {
		return nil, lastError("BASS_StreamCreateFile")
	}
	return &Stream{handle: h}, nil
}

// StreamCreateURL creates a stream that BASS downloads and decodes itself.
func StreamCreateURL(url string, flags StreamFlags) (*Stream, error) {
	curl := C.CString(url)
	defer C.free(unsafe.Pointer(curl))

	h := C.BASS_StreamCreateURL(curl, 0, C.DWORD(flags), nil, nil)
	if h == 0 {
		return nil, lastError("BASS_StreamCreateURL")
	}
	return &Stream{handle: h}, nil
}

// PutData queues sample data on a push-mode stream. It never blocks. The
// return value is the amount of data now queued, in bytes.
func (s *Stream) PutData(p []byte) (int, error) {
	var buf unsafe.Pointer
	if len(p) > 0 {
		buf = unsafe.Pointer(&p[0])
	}
	n := C.BASS_StreamPutData(s.handle, buf, C.DWORD(len(p)))
	if int32(n) == -1 {
		return 0, lastError("BASS_StreamPutData")
	}
	return int(n), nil
}

// End signals that no more data will be pushed. Playback stops once the
// queue drains.
func (s *Stream) End() error {
	if int32(C.BASS_StreamPutData(s.handle, nil, C.BASS_STREAMPROC_END)) == -1 {
		return lastError("BASS_StreamPutData")
	}
	return nil
}

// Buffered reports the amount of data queued but not yet played, in bytes.
func (s *Stream) Buffered() (int, error) {
	n := C.BASS_StreamPutData(s.handle, nil, 0)
	if int32(n) == -1 {
		return 0, lastError("BASS_StreamPutData")
	}
	return int(n), nil
}

// Free releases the stream handle.
func (s *Stream) Free() error {
	if C.BASS_StreamFree(s.handle) == 0 {
		return lastError("BASS_StreamFree")
	}
	return nil
}
