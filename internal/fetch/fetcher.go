// Package fetch downloads remote price-list documents ahead of
// conversion: robots-aware, rate-limited per host, and cached so
// re-runs don't re-download an unchanged corpus.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/skuforge/skuforge/internal/cache"
	"github.com/skuforge/skuforge/internal/model"
	"github.com/skuforge/skuforge/internal/worker"
)

// Fetcher retrieves remote documents.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	limiter    *worker.Limiter
	robots     *RobotsChecker // nil when robots checking is disabled
	cache      cache.Cache    // nil when caching is disabled
	cacheTTL   time.Duration
}

// NewFetcher builds a fetcher from configuration. Pass a nil cache to
// force fresh downloads.
func NewFetcher(cfg *model.Config, c cache.Cache) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			Transport: &http.Transport{
				Proxy: NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		limiter:   worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		cache:     c,
		cacheTTL:  cfg.Cache.TTL,
	}
	if cfg.HTTP.RespectRobots {
		f.robots = NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}
	return f
}

// Fetch retrieves one document's bytes, consulting the cache first.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	key := cache.URLKey(rawURL)
	if f.cache != nil {
		if data, found := f.cache.Get(key); found {
			return data, nil
		}
	}

	var crawlDelay time.Duration
	if f.robots != nil {
		allowed, delay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("disallowed by robots.txt: %s", rawURL)
		}
		crawlDelay = delay
	}

	if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if f.cache != nil {
		_ = f.cache.Set(key, data, f.cacheTTL)
	}
	return data, nil
}

// Download fetches a document and writes it under destDir, named from
// the URL's base name. Returns the written path.
func (f *Fetcher) Download(ctx context.Context, rawURL, destDir string) (string, error) {
	data, err := f.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create dest dir: %w", err)
	}
	dest := filepath.Join(destDir, FileNameFromURL(rawURL))
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	return dest, nil
}

// FileNameFromURL derives a usable local file name from a document URL.
func FileNameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Path == "" || parsed.Path == "/" {
		return "document.html"
	}
	name := path.Base(parsed.Path)
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		return "document.html"
	}
	return name
}
