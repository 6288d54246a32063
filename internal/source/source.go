// Package source opens the audio data to be played, from an HTTP(S) URL or
// a local file path.
package source

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const userAgent = "lmstream"

// Open returns a reader over the stream at target along with its content
// type, when known. HTTP and HTTPS URLs are fetched; anything else is
// treated as a local file. The caller closes the reader.
func Open(ctx context.Context, target string) (io.ReadCloser, string, error) {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return openURL(ctx, target)
	}

	f, err := os.Open(target)
	if err != nil {
		return nil, "", fmt.Errorf("opening file: %w", err)
	}
	return f, "", nil
}

func openURL(ctx context.Context, url string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building request: %w", err)
	}

	log.Println("fetching stream: ", url)
	res, err := newClient().Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching stream: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, "", fmt.Errorf("fetching stream: server returned %s", res.Status)
	}
	return res.Body, res.Header.Get("Content-Type"), nil
}

// newClient provides an http.Client tuned for long-lived stream bodies:
// header timeouts only, no overall request deadline.
func newClient() *http.Client {
	streamTransport := transport{
		UserAgent: userAgent,
		base: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			MaxIdleConns:          10,
			IdleConnTimeout:       30 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
		},
	}
	return &http.Client{Transport: &streamTransport}
}

// transport allows custom attributes to be added to each HTTP request sent
// by an http.Client that uses this transport
type transport struct {
	UserAgent string
	base      http.RoundTripper
}

// RoundTrip adds upon the normal http.Transport.RoundTrip() behavior to set
// a user agent on each request.
func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", t.UserAgent)
	}
	return t.base.RoundTrip(req)
}
