package pypi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/reqs-dev/reqs/pkg/cache"
	"github.com/reqs-dev/reqs/pkg/httputil"
)

// DefaultIndexURL is the public PyPI Simple API endpoint.
const DefaultIndexURL = "https://pypi.org/simple/"

const httpTimeout = 30 * time.Second

var (
	// ErrNotFound is returned when the index has no such package.
	ErrNotFound = errors.New("package not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors,
	// 5xx responses).
	ErrNetwork = errors.New("network error")
)

// FetchOptions control a version listing request.
type FetchOptions struct {
	// IncludeYanked includes files marked withdrawn with data-yanked.
	IncludeYanked bool

	// Refresh bypasses the cache and always hits the index.
	Refresh bool
}

// Client queries PEP 503 Simple API indexes for package versions.
// Responses are cached through the configured backend; transient failures
// are retried with exponential backoff.
type Client struct {
	http  *http.Client
	cache cache.Cache
	ttl   time.Duration
}

// NewClient creates a Simple API client with the given cache backend and
// cache TTL. Use [cache.NewNullCache] to disable caching.
func NewClient(backend cache.Cache, ttl time.Duration) *Client {
	return &Client{
		http:  &http.Client{Timeout: httpTimeout},
		cache: backend,
		ttl:   ttl,
	}
}

// FetchVersions lists the available versions of pkg from the index at
// indexURL (DefaultIndexURL when empty), newest first.
//
// Returns [ErrNotFound] if the index has no such package and [ErrNetwork]
// for HTTP failures.
func (c *Client) FetchVersions(ctx context.Context, pkg, indexURL string, opts FetchOptions) ([]string, error) {
	url := projectURL(indexURL, pkg)

	var files []projectFile
	if err := c.cached(ctx, url, opts.Refresh, &files, func() error {
		got, err := c.fetchIndex(ctx, url, pkg)
		if err != nil {
			return err
		}
		files = got
		return nil
	}); err != nil {
		return nil, err
	}

	return extractVersions(files, pkg, opts.IncludeYanked), nil
}

// FetchVersionsWithFallback tries the primary index first and falls back to
// fallbackURL on network errors. It does not fall back on [ErrNotFound],
// since a 404 means the package does not exist. The second return value is
// the index URL that served the response.
func (c *Client) FetchVersionsWithFallback(ctx context.Context, pkg, indexURL, fallbackURL string, opts FetchOptions) ([]string, string, error) {
	primary := indexURL
	if primary == "" {
		primary = DefaultIndexURL
	}

	versions, err := c.FetchVersions(ctx, pkg, primary, opts)
	if err == nil {
		return versions, primary, nil
	}
	if errors.Is(err, ErrNotFound) || fallbackURL == "" {
		return nil, primary, err
	}

	versions, ferr := c.FetchVersions(ctx, pkg, fallbackURL, opts)
	if ferr != nil {
		return nil, fallbackURL, fmt.Errorf("primary %s failed (%v), fallback %s failed: %w", primary, err, fallbackURL, ferr)
	}
	return versions, fallbackURL, nil
}

// cached retrieves a value from cache or executes fetch and caches the
// result. If refresh is true, the cache is bypassed and fetch always runs.
func (c *Client) cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	if !refresh {
		if data, ok, _ := c.cache.Get(ctx, key); ok {
			if json.Unmarshal(data, v) == nil {
				return nil
			}
		}
	}
	if err := httputil.RetryWithBackoff(ctx, fetch); err != nil {
		return err
	}
	if data, err := json.Marshal(v); err == nil {
		_ = c.cache.Set(ctx, key, data, c.ttl)
	}
	return nil
}

func (c *Client) fetchIndex(ctx context.Context, url, pkg string) ([]projectFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html")
	req.Header.Set("User-Agent", "reqs")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode, pkg); err != nil {
		return nil, err
	}
	return parseSimpleIndex(resp.Body)
}

func checkStatus(code int, pkg string) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, pkg)
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

// projectURL builds the Simple API project page URL with the package name
// normalized per PEP 503.
func projectURL(indexURL, pkg string) string {
	base := indexURL
	if base == "" {
		base = DefaultIndexURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + normalizeName(pkg) + "/"
}
