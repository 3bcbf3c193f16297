package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultUserAgent is sent on every request; some documentation hosts refuse
// plain Go client user agents.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// DefaultTimeout bounds each page request. There are no retries: a slow or
// failed page is skipped and the run moves on.
const DefaultTimeout = 10 * time.Second

type Fetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func New(baseURL string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: DefaultUserAgent,
	}
}

// PageURL resolves a catalog path against the base URL.
func (f *Fetcher) PageURL(relPath string) string {
	return f.baseURL + "/" + strings.TrimPrefix(relPath, "/")
}

// Get fetches a single page and returns the raw body. Any network failure,
// timeout, or non-2xx status is reported as an error.
func (f *Fetcher) Get(ctx context.Context, relPath string) ([]byte, error) {
	url := f.PageURL(relPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s, status code: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body for %s: %w", url, err)
	}
	return body, nil
}
