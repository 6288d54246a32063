package bass

import (
	"strings"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := &Error{Op: "BASS_Init", Code: ErrorDEVICE}
	want := "bass: BASS_Init: illegal device number"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorCodeMessageUnknown(t *testing.T) {
	if got := ErrorCode(9999).Message(); got != "unknown error" {
		t.Errorf("Message() = %q, want %q", got, "unknown error")
	}
}

func TestChannelStatusString(t *testing.T) {
	cases := []struct {
		status ChannelStatus
		want   string
	}{
		{ChannelStatusStopped, "stopped"},
		{ChannelStatusPlaying, "playing"},
		{ChannelStatusStalled, "stalled"},
		{ChannelStatusPaused, "paused"},
	}
	for _, c := range cases {
		if got := c.status.String(); got != c.want {
			t.Errorf("ChannelStatus(%d).String() = %q, want %q", int(c.status), got, c.want)
		}
	}
	if got := ChannelStatus(42).String(); !strings.Contains(got, "unknown") {
		t.Errorf("unknown status String() = %q", got)
	}
}
