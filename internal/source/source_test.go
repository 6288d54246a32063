package source

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenURL(t *testing.T) {
	payload := bytes.Repeat([]byte{0x00, 0x7f}, 512)
	var gotAgent string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "audio/x-wav")
		w.Write(payload)
	}))
	defer srv.Close()

	body, contentType, err := Open(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer body.Close()

	if contentType != "audio/x-wav" {
		t.Errorf("content type = %q, want %q", contentType, "audio/x-wav")
	}
	if gotAgent != userAgent {
		t.Errorf("User-Agent = %q, want %q", gotAgent, userAgent)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("read %d bytes, want %d", len(data), len(payload))
	}
}

func TestOpenURLServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, _, err := Open(context.Background(), srv.URL); err == nil {
		t.Fatal("Open succeeded on a 404 response")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.pcm")
	payload := []byte{1, 2, 3, 4}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		t.Fatal(err)
	}

	body, contentType, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer body.Close()

	if contentType != "" {
		t.Errorf("content type for file = %q, want empty", contentType)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("read %v, want %v", data, payload)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, _, err := Open(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("Open succeeded on a missing file")
	}
}
