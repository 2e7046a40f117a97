package domain

import "time"

// Record kinds stored in the shared record collection.
const (
	RecordClip    = "clip"
	RecordRadio   = "radio"
	RecordStation = "station"
)

type Clip struct {
	ID       int64     `db:"id" json:"id"`
	URL      string    `db:"url" json:"url,omitempty"`
	Filename string    `db:"filename" json:"filename"`
	Author   string    `db:"author" json:"author"`
	Created  time.Time `db:"created_at" json:"created"`
	Incoming bool      `db:"incoming" json:"incoming"`
}

// Submission is a single inbound media reference from the chat.
type Submission struct {
	Source       string // URL to fetch
	ContentType  string
	Author       string
	FilenameHint string // suggested name for uploaded files
	Uploaded     bool   // true for attachments; dedupe falls back to filename
}
