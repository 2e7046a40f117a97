package domain

import "time"

const (
	EventClipAdded  = "clip.added"
	EventNowPlaying = "radio.now_playing"
)

// Event is published to the message bus when something user-visible happens.
type Event struct {
	Kind      string    `json:"kind"`
	Clip      *Clip     `json:"clip,omitempty"`
	Station   string    `json:"station,omitempty"`
	Title     string    `json:"title,omitempty"`
	Track     *Track    `json:"track,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
