package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"strings"
	"time"

	"displaybot/internal/domain"
)

const userAgent = "DisplayBot/1.0"

type Config struct {
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Probe is the outcome of a HEAD request against a submitted link.
type Probe struct {
	URL         string // final URL after redirects
	ContentType string // media type without parameters
}

// Client talks to the hosts clips are shared from.
type Client struct {
	httpClient     *http.Client
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "fetch"),
	}
}

// Probe issues a HEAD request, following redirects, and reports the content
// type the server declares for url.
func (c *Client) Probe(ctx context.Context, url string) (*Probe, error) {
	resp, err := c.head(ctx, url)
	if err != nil {
		return nil, err
	}

	raw := resp.Header.Get("Content-Type")
	if raw == "" {
		c.logger.Info("link without content type", "url", url)
		return nil, fmt.Errorf("probe %s: %w", url, domain.ErrUnsupportedType)
	}

	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		mediaType = strings.TrimSpace(strings.Split(raw, ";")[0])
	}

	return &Probe{
		URL:         resp.Request.URL.String(),
		ContentType: strings.ToLower(mediaType),
	}, nil
}

// Check reports whether url answers a HEAD request without a client or
// server error.
func (c *Client) Check(ctx context.Context, url string) error {
	resp, err := c.head(ctx, url)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("check %s: status %d: %w", url, resp.StatusCode, domain.ErrInvalidURL)
	}
	return nil
}

func (c *Client) head(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", domain.ErrInvalidURL)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("link not valid", "url", url, "error", err)
		return nil, fmt.Errorf("head %s: %w", url, domain.ErrInvalidURL)
	}
	resp.Body.Close()

	return resp, nil
}

// Download fetches url into dst. The body is written to a temporary file
// next to dst and renamed into place only once it is complete, so a failed
// download never leaves a file at dst.
func (c *Client) Download(ctx context.Context, url, dst string) error {
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.downloadOnce(ctx, url, dst)
		if err == nil {
			return nil
		}

		if attempt == c.maxAttempts || ctx.Err() != nil {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("download failed, retrying",
			"url", url,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return fmt.Errorf("download %s: %w: %w", url, domain.ErrDownloadFailed, ctx.Err())
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("download %s after %d attempts: %w: %w", url, c.maxAttempts, domain.ErrDownloadFailed, err)
}

func (c *Client) downloadOnce(ctx context.Context, url, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	tmp := dst + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	n, err := io.Copy(f, resp.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil && resp.ContentLength > 0 && n != resp.ContentLength {
		err = errors.New("short body")
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write body: %w", err)
	}

	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename file: %w", err)
	}

	c.logger.Debug("downloaded", "url", url, "path", dst, "bytes", n)
	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
