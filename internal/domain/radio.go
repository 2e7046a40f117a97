package domain

import (
	"fmt"
	"strings"
)

// ManualStation is the pseudo-station used for one-off /play requests.
const ManualStation = "manual"

type Station struct {
	Name string `db:"name" json:"name" yaml:"name" validate:"required"`
	URL  string `db:"url" json:"url" yaml:"url" validate:"required,url"`
}

// RadioState is the singleton tuning record.
type RadioState struct {
	StationPlaying   string `db:"station_playing" json:"station_playing"`
	StationTitle     string `db:"station_title" json:"station_title"`
	StationTitleSent string `db:"station_title_sent" json:"station_title_sent"`
}

// Track is a structured now-playing entry from a provider API.
type Track struct {
	Artist string `json:"artist,omitempty"`
	Title  string `json:"title,omitempty"`
	Album  string `json:"album,omitempty"`
	Label  string `json:"label,omitempty"`
	Image  string `json:"image,omitempty"`
}

// String is the dedupe key persisted as the last announced title.
func (t Track) String() string {
	return fmt.Sprintf("%s - %s (%s)", t.Artist, t.Title, t.Album)
}

// Subject returns the part of a stream title worth researching: the artist
// before the first " - ", or "" when the title carries no separator.
func Subject(title string) string {
	i := strings.Index(title, " - ")
	if i <= 0 {
		return ""
	}
	return strings.TrimSpace(title[:i])
}
