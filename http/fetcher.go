// Package http provides a capture.Fetcher that retrieves pages over
// HTTP(S) and from local file paths.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	capture "github.com/kublaios/obsidian-capture"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/charmap"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultMaxSizeBytes is the default cap on downloaded page size.
const DefaultMaxSizeBytes = 2_000_000

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Ensure Fetcher implements capture.Fetcher at compile time.
var _ capture.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs or local file paths.
// It does not execute JavaScript and is suitable for static pages only.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	maxSize   int64
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxSize caps the number of bytes fetched from a page.
// Defaults to DefaultMaxSizeBytes if not specified.
func WithMaxSize(n int64) Option {
	return func(f *Fetcher) {
		f.maxSize = n
	}
}

// WithUserAgent overrides the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		maxSize:   DefaultMaxSizeBytes,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content behind urlOrPath. Strings starting
// with http:// or https:// are fetched over the network; everything
// else is read as a local file path.
func (f *Fetcher) Fetch(ctx context.Context, urlOrPath string) (*capture.Source, error) {
	if isURL(urlOrPath) {
		return f.fetchURL(ctx, urlOrPath)
	}
	return f.fetchFile(urlOrPath)
}

func (f *Fetcher) fetchURL(ctx context.Context, url string) (*capture.Source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, capture.Errorf(capture.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, capture.Errorf(capture.ETIMEOUT, "fetch timed out after %s: %s", f.timeout, url)
		}
		return nil, capture.Errorf(capture.EFETCH, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, capture.Errorf(capture.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	if resp.ContentLength > f.maxSize {
		return nil, capture.Errorf(capture.ESIZELIMIT,
			"content size %d exceeds limit of %d bytes", resp.ContentLength, f.maxSize)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		if isTimeout(err) {
			return nil, capture.Errorf(capture.ETIMEOUT, "fetch timed out after %s: %s", f.timeout, url)
		}
		return nil, capture.Errorf(capture.EFETCH, "reading response from %s: %v", url, err)
	}
	if int64(len(body)) > f.maxSize {
		return nil, capture.Errorf(capture.ESIZELIMIT,
			"content exceeds limit of %d bytes", f.maxSize)
	}

	content, enc, err := decode(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	return &capture.Source{
		URL:          url,
		Content:      content,
		Encoding:     enc,
		ContentType:  resp.Header.Get("Content-Type"),
		StatusCode:   resp.StatusCode,
		RawSizeBytes: int64(len(body)),
	}, nil
}

func (f *Fetcher) fetchFile(path string) (*capture.Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, capture.Errorf(capture.EFETCH, "file not found: %s", path)
		}
		return nil, capture.Errorf(capture.EFETCH, "reading %s: %v", path, err)
	}
	if info.IsDir() {
		return nil, capture.Errorf(capture.EFETCH, "%s is a directory, not a file", path)
	}
	if info.Size() > f.maxSize {
		return nil, capture.Errorf(capture.ESIZELIMIT,
			"file size %d exceeds limit of %d bytes", info.Size(), f.maxSize)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, capture.Errorf(capture.EFETCH, "reading %s: %v", path, err)
	}

	content, enc, err := decode(body, "")
	if err != nil {
		return nil, err
	}

	return &capture.Source{
		URL:          path,
		Content:      content,
		Encoding:     enc,
		ContentType:  "text/html",
		StatusCode:   http.StatusOK,
		RawSizeBytes: int64(len(body)),
	}, nil
}

// decode turns raw page bytes into a UTF-8 string. Valid UTF-8 passes
// through; otherwise the charset is sniffed from the Content-Type
// header and byte content, with Windows-1252 as the final fallback.
func decode(body []byte, contentType string) (string, string, error) {
	if utf8.Valid(body) {
		return string(body), "utf-8", nil
	}

	enc, name, certain := charset.DetermineEncoding(body, contentType)
	if certain || name != "windows-1252" {
		decoded, err := enc.NewDecoder().Bytes(body)
		if err == nil {
			return string(decoded), name, nil
		}
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(body)
	if err != nil {
		return "", "", capture.Errorf(capture.EENCODING, "unable to decode content: %v", err)
	}
	return string(decoded), "windows-1252", nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return strings.Contains(fmt.Sprintf("%v", err), "Client.Timeout")
}
