// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// PosterUploadedEvent is published after a poster upload succeeds. It
// carries enough for downstream consumers to audit or notify without
// touching the poster files themselves.
type PosterUploadedEvent struct {
	ImdbID     string `json:"imdb_id"`
	Email      string `json:"email"`
	SizeBytes  int    `json:"size_bytes"`
	UploadedAt string `json:"uploaded_at"`
}
