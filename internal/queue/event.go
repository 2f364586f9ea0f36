// Package queue defines message payloads exchanged over the message broker.
package queue

// ColorAddedEvent is published after a color is successfully added to a
// user's history. It carries enough for downstream consumers to log or
// feed analytics without querying the primary database.
type ColorAddedEvent struct {
    UserID  uint64 `json:"user_id"`
    Hex     string `json:"hex"`
    Total   int    `json:"total"` // history length after the add
    AddedAt string `json:"added_at"`
}
