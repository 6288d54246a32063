//go:build cgo

package bass

/*
#include "bass.h"
*/
import "C"

// Play starts or resumes playback. With restart set, playback begins from
// the start of the stream.
func (s *Stream) Play(restart bool) error {
	var r C.BOOL
	if restart {
		r = 1
	}
	if C.BASS_ChannelPlay(s.handle, r) == 0 {
		return lastError("BASS_ChannelPlay")
	}
	return nil
}

// Pause pauses playback, retaining position and queued data.
func (s *Stream) Pause() error {
	if C.BASS_ChannelPause(s.handle) == 0 {
		return lastError("BASS_ChannelPause")
	}
	return nil
}

// Stop stops playback.
func (s *Stream) Stop() error {
	if C.BASS_ChannelStop(s.handle) == 0 {
		return lastError("BASS_ChannelStop")
	}
	return nil
}

// Status reports the current playback state.
func (s *Stream) Status() ChannelStatus {
	return ChannelStatus(C.BASS_ChannelIsActive(s.handle))
}

// SetVolume sets the stream volume, 0..1.
func (s *Stream) SetVolume(vol float64) error {
	if C.BASS_ChannelSetAttribute(s.handle, C.BASS_ATTRIB_VOL, C.float(vol)) == 0 {
		return lastError("BASS_ChannelSetAttribute")
	}
	return nil
}

// Position reports the playback position in seconds.
func (s *Stream) Position() (float64, error) {
	pos := C.BASS_ChannelGetPosition(s.handle, C.BASS_POS_BYTE)
	if int64(pos) == -1 {
		return 0, lastError("BASS_ChannelGetPosition")
	}
	secs := C.BASS_ChannelBytes2Seconds(s.handle, pos)
	if secs < 0 {
		return 0, lastError("BASS_ChannelBytes2Seconds")
	}
	return float64(secs), nil
}
