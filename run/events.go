// Package run is the asynchronous side of order entry: a sender worker
// consuming submissions from a channel, the events it emits for
// presentation, and the journaling of those events to Redis.
package run

import "time"

// Kind labels an [Event].
type Kind string

// The event kinds.
const (
	KindSent     Kind = "SENT"
	KindReceived Kind = "RECV"
	KindInfo     Kind = "INFO"
	KindError    Kind = "ERROR"
)

// An Event is one observable step of an order submission. Events are handed
// to consumers over a channel so the worker never mutates caller owned
// state.
type Event struct {
	Kind    Kind      `json:"kind"`
	ClOrdID string    `json:"clOrdID,omitempty"` // FIX field 11
	Text    string    `json:"text,omitempty"`
	Raw     string    `json:"raw,omitempty"` // wire bytes, pretty rendered
	At      time.Time `json:"at"`
}
