package fip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"displaybot/internal/domain"
)

// ErrNoData means the livemeta feed had no current step.
var ErrNoData = errors.New("no livemeta data")

var stationIDs = map[string]int{
	"fip":              7,
	"fip du groove":    66,
	"fip du jazz":      65,
	"fip du monde":     69,
	"fip du reggae":    71,
	"fip du rock":      64,
	"fip tout nouveau": 70,
}

// StationID returns the livemeta id of a FIP webradio.
func StationID(station string) (int, bool) {
	id, ok := stationIDs[station]
	return id, ok
}

// Known reports whether station has a livemeta feed.
func Known(station string) bool {
	_, ok := stationIDs[station]
	return ok
}

// Client reads what FIP stations are playing from the livemeta API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     logger.With("component", "fip"),
	}
}

// Current returns the track now playing on station.
func (c *Client) Current(ctx context.Context, station string) (*domain.Track, error) {
	id, ok := StationID(station)
	if !ok {
		return nil, fmt.Errorf("station %q: %w", station, domain.ErrUnknownStation)
	}

	url := fmt.Sprintf("%s/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var meta liveMeta
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	step, err := meta.current()
	if err != nil {
		c.logger.Warn("no data found in fip livemeta", "station", station)
		return nil, err
	}

	title := cases.Title(language.Und)
	return &domain.Track{
		Artist: title.String(step.Authors),
		Title:  title.String(step.Title),
		Album:  title.String(step.TitreAlbum),
		Label:  title.String(step.Label),
		Image:  step.Visual,
	}, nil
}
