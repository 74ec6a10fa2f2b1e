package dma

import (
	"errors"
	"io"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/fixwire/fixterm/env"
)

// A Client performs one request-response exchange per call: connect, send,
// wait for at most one reply buffer, close. It holds no connection state
// between calls and never retries - retry policy, if any, belongs to the
// caller. A Client may be shared across goroutines.
type Client struct {
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	ReadLimit      int
}

// NewClient returns a [*Client] with the package default limits.
func NewClient() *Client {
	return &Client{
		ConnectTimeout: env.ConnectTimeout,
		ReadTimeout:    env.ReadTimeout,
		ReadLimit:      env.ReadLimit,
	}
}

// Send the message to the counterparty at address, for example
// "127.0.0.1:9876", and classify the result. The connection is closed on
// every path. There is no cancellation beyond the timeouts.
func (x *Client) Send(address string, message []byte) Outcome {

	conn, err := net.DialTimeout("tcp", address, x.ConnectTimeout)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return Outcome{State: Refused, Err: err}
		}
		return Outcome{State: TransportError, Err: err}
	}
	defer conn.Close()

	for len(message) > 0 {
		n, err := conn.Write(message)
		if err != nil {
			return Outcome{State: TransportError, Err: err}
		}
		message = message[n:]
	}

	if err := conn.SetReadDeadline(time.Now().Add(x.ReadTimeout)); err != nil {
		return Outcome{State: TransportError, Err: err}
	}
	buffer := make([]byte, x.ReadLimit)
	n, err := conn.Read(buffer)
	if n > 0 {
		return Outcome{State: Received, Reply: buffer[:n]}
	}
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return Outcome{State: ClosedByPeer}
	case errors.Is(err, os.ErrDeadlineExceeded):
		return Outcome{State: TimedOut}
	}
	return Outcome{State: TransportError, Err: err}

}
