//go:build cgo

// Package bass wraps the Un4seen BASS library (https://www.un4seen.com) for
// stream playback. Only the surface this application needs is bound: library
// lifecycle, stream creation (push and pull), channel transport and codec
// plugin loading. Decoding, mixing and device output all happen inside BASS.
package bass

/*
#cgo CFLAGS: -I/usr/include -I.
#cgo darwin LDFLAGS: -L${SRCDIR}/../../libs -lbass
#cgo linux LDFLAGS: -L${SRCDIR}/../../libs -lbass
#cgo windows LDFLAGS: -L${SRCDIR}/../../libs -lbass
#include "bass.h"
*/
import "C"

import "fmt"

// Init initializes the output device and the library itself. A device of -1
// selects the system default. Must be called once before any stream is
// created.
func Init(device, freq int, flags InitFlags) error {
	if C.BASS_Init(C.int(device), C.DWORD(freq), C.DWORD(flags), nil, nil) == 0 {
		return lastError("BASS_Init")
	}
	return nil
}

// Free releases the output device and every handle created since Init.
func Free() error {
	if C.BASS_Free() == 0 {
		return lastError("BASS_Free")
	}
	return nil
}

// Version reports the loaded library version, e.g. "2.4.17.0".
func Version() string {
	v := uint32(C.BASS_GetVersion())
	return fmt.Sprintf("%d.%d.%d.%d", v>>24&0xff, v>>16&0xff, v>>8&0xff, v&0xff)
}

// lastError wraps the code of the most recent failed call on this thread.
func lastError(op string) error {
	return &Error{Op: op, Code: ErrorCode(C.BASS_ErrorGetCode())}
}
