package player

import (
	"strconv"
	"strings"
)

const (
	streamTitleMarker = "StreamTitle='"
	playbackMarker    = "Starting playback..."
)

// ParseStreamTitle extracts the track title from an ICY metadata line such
// as "ICY Info: StreamTitle='Artist - Song';StreamUrl='';". Lines without a
// complete, non-empty title are ignored.
func ParseStreamTitle(line string) (string, bool) {
	start := strings.Index(line, streamTitleMarker)
	if start < 0 {
		return "", false
	}
	start += len(streamTitleMarker)

	end := strings.Index(line[start:], "';")
	if end < 0 {
		return "", false
	}

	title := strings.TrimSpace(line[start : start+end])
	if title == "" {
		return "", false
	}
	return title, true
}

// IsPlaybackStarted reports whether the player just began playing a file.
func IsPlaybackStarted(line string) bool {
	return strings.Contains(line, playbackMarker)
}

// LoadFile is the slave-mode command appending path to the playlist.
func LoadFile(path string) string {
	if strings.ContainsAny(path, " \t\"'") {
		path = strconv.Quote(path)
	}
	return "loadfile " + path + " 1"
}
