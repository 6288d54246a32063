package bass

import (
	"bytes"
	"log"
	"runtime"
	"strings"
	"testing"
)

func TestCodecLibraries(t *testing.T) {
	libs := CodecLibraries()
	if len(libs) != 2 {
		t.Fatalf("CodecLibraries() returned %d entries, want 2", len(libs))
	}

	var ext string
	switch runtime.GOOS {
	case "darwin":
		ext = ".dylib"
	case "windows":
		ext = ".dll"
	default:
		ext = ".so"
	}

	for i, name := range []string{"bassflac", "bassopus"} {
		if !strings.Contains(libs[i], name) {
			t.Errorf("libs[%d] = %q, want it to name %s", i, libs[i], name)
		}
		if !strings.HasSuffix(libs[i], ext) {
			t.Errorf("libs[%d] = %q, want suffix %q on %s", i, libs[i], ext, runtime.GOOS)
		}
	}
}

// A plugin that fails to load must be skipped, not abort the rest.
func TestLoadCodecsContinuesPastFailures(t *testing.T) {
	var logs bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&logs)
	defer log.SetOutput(orig)

	loaded := LoadCodecs(t.TempDir())
	if len(loaded) != 0 {
		t.Fatalf("LoadCodecs of an empty directory returned %d plugins", len(loaded))
	}

	// every known codec was attempted, each failure logged and skipped
	for _, lib := range CodecLibraries() {
		if !strings.Contains(logs.String(), lib) {
			t.Errorf("no load attempt logged for %s", lib)
		}
	}
	if got := strings.Count(logs.String(), "skipping codec plugin"); got != len(CodecLibraries()) {
		t.Errorf("logged %d skips, want %d", got, len(CodecLibraries()))
	}
}
