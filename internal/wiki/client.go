package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"
)

var (
	ErrDisambiguation = errors.New("disambiguation page")
	ErrNoPage         = errors.New("page not found")
)

type Page struct {
	Title   string
	Summary string
	URL     string
	Images  []string
}

// Client queries a MediaWiki API endpoint. Calls go through a circuit
// breaker so an unreachable wiki does not stall every announcement.
type Client struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker[[]byte]
	logger     *slog.Logger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	logger = logger.With("component", "wiki")

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "wiki",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		breaker:    breaker,
		logger:     logger,
	}
}

// Search returns the titles of articles matching subject, best match first.
func (c *Client) Search(ctx context.Context, subject string) ([]string, error) {
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {subject},
		"srlimit":  {"10"},
		"srprop":   {""},
	}

	var resp searchResponse
	if err := c.query(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", subject, err)
	}

	titles := make([]string, 0, len(resp.Query.Search))
	for _, r := range resp.Query.Search {
		titles = append(titles, r.Title)
	}
	return titles, nil
}

// Page fetches the intro summary, canonical URL and image URLs of an
// article. Disambiguation pages yield ErrDisambiguation.
func (c *Client) Page(ctx context.Context, title string) (*Page, error) {
	params := url.Values{
		"action":      {"query"},
		"titles":      {title},
		"prop":        {"extracts|info|pageprops"},
		"exintro":     {"1"},
		"explaintext": {"1"},
		"inprop":      {"url"},
		"ppprop":      {"disambiguation"},
		"redirects":   {"1"},
	}

	var resp pageResponse
	if err := c.query(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("page %q: %w", title, err)
	}
	if len(resp.Query.Pages) == 0 || resp.Query.Pages[0].Missing {
		return nil, fmt.Errorf("page %q: %w", title, ErrNoPage)
	}

	p := resp.Query.Pages[0]
	if _, ok := p.PageProps["disambiguation"]; ok {
		return nil, fmt.Errorf("page %q: %w", title, ErrDisambiguation)
	}

	images, err := c.images(ctx, p.Title)
	if err != nil {
		c.logger.Warn("fetch images", "title", p.Title, "error", err)
	}

	return &Page{
		Title:   p.Title,
		Summary: p.Extract,
		URL:     p.FullURL,
		Images:  images,
	}, nil
}

func (c *Client) images(ctx context.Context, title string) ([]string, error) {
	params := url.Values{
		"action":    {"query"},
		"titles":    {title},
		"generator": {"images"},
		"gimlimit":  {"50"},
		"prop":      {"imageinfo"},
		"iiprop":    {"url"},
	}

	var resp imagesResponse
	if err := c.query(ctx, params, &resp); err != nil {
		return nil, err
	}

	var urls []string
	for _, p := range resp.Query.Pages {
		for _, info := range p.ImageInfo {
			if info.URL != "" {
				urls = append(urls, info.URL)
			}
		}
	}
	return urls, nil
}

func (c *Client) query(ctx context.Context, params url.Values, out any) error {
	params.Set("format", "json")
	params.Set("formatversion", "2")

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.get(ctx, c.baseURL+"?"+params.Encode())
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "DisplayBot/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
