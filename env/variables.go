package env

import (
	"time"
)

// ConnectTimeout is the default limit on establishing the counterparty
// connection.
var ConnectTimeout = 8 * time.Second

// ReadTimeout is the default wait for a reply after a successful send.
// Expiry is delivery without response, not an error.
var ReadTimeout = 8 * time.Second

// ReadLimit is the default size of the single reply buffer. No multi-message
// reassembly is attempted beyond this.
var ReadLimit = 4096

// OrdersPerSecond is the default submission rate limit for the asynchronous
// sender.
var OrdersPerSecond = 8
