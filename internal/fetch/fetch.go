// Package fetch retrieves raw source bytes for analysis from files, URLs,
// and standard input.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Size limits guard against loading unbounded input into memory; every
// counting operation needs the full text, so sources are read whole.
const (
	MaxFileBytes = 50 * 1024 * 1024  // local files and stdin
	MaxHTTPBytes = 100 * 1024 * 1024 // HTTP bodies, which may omit Content-Length
)

// RequestTimeout bounds a whole HTTP fetch.
const RequestTimeout = 30 * time.Second

const userAgent = "textcounter/0.1"

// capReader wraps an io.ReadCloser to enforce size limits.
type capReader struct {
	io.ReadCloser
	remaining int64
	source    string
}

func (c *capReader) Read(p []byte) (int, error) {
	if c.remaining <= 0 {
		return 0, fmt.Errorf("content from %q exceeds size limit", c.source)
	}
	if int64(len(p)) > c.remaining {
		p = p[:c.remaining]
	}
	n, err := c.ReadCloser.Read(p)
	c.remaining -= int64(n)
	return n, err
}

// httpClient is shared across fetches; safe for concurrent use.
var httpClient = &http.Client{
	Timeout: RequestTimeout,
	Transport: &http.Transport{
		Dial: (&net.Dialer{
			Timeout: RequestTimeout / 6,
		}).Dial,
		TLSHandshakeTimeout:   RequestTimeout / 6,
		ResponseHeaderTimeout: RequestTimeout / 2,
		DisableKeepAlives:     true,
	},
}

// GetContent resolves a source argument into a readable stream:
//
//   - "-" reads standard input
//   - "http://" and "https://" prefixes fetch over HTTP
//   - anything else is opened as a local file path
//
// Streams are size-capped. The caller owns the returned ReadCloser.
func GetContent(ctx context.Context, source string) (io.ReadCloser, error) {
	switch {
	case source == "-":
		return &capReader{ReadCloser: os.Stdin, remaining: MaxFileBytes, source: "stdin"}, nil
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return fetchURL(ctx, source)
	default:
		return openFile(source)
	}
}

func fetchURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %q: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request failed for URL %q: status %d %s", url, resp.StatusCode, resp.Status)
	}

	// Reject oversized responses up front when the server declares a length;
	// the capReader covers servers that do not.
	if cl := resp.Header.Get("Content-Length"); cl != "" {
		if size, err := strconv.ParseInt(cl, 10, 64); err == nil && size > MaxHTTPBytes {
			resp.Body.Close()
			return nil, fmt.Errorf("HTTP content too large (%d bytes > %d bytes limit)", size, MaxHTTPBytes)
		}
	}

	return &capReader{ReadCloser: resp.Body, remaining: MaxHTTPBytes, source: url}, nil
}

func openFile(path string) (io.ReadCloser, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}

	if info.Size() > MaxFileBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)", path, info.Size(), MaxFileBytes)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	return f, nil
}
