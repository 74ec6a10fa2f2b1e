package fix

import (
	"strings"
	"sync"
	"time"

	"github.com/gbkr-com/mkt"
)

// A Session is the participant identity and message sequencing for one
// counterparty, owned by the caller rather than held in package state.
// [Session.Next] and [Session.Reset] are safe for concurrent use; sequence
// numbers are strictly increasing between resets. Nothing is persisted:
// a Session lives and dies with the process.
type Session struct {
	SenderCompID string // FIX field 49
	TargetCompID string // FIX field 56

	// Now and NewClOrdID exist so message building can be made
	// deterministic in tests. Left nil, the clock is [time.Now] and
	// client order IDs come from [mkt.NewOrderID].
	Now        func() time.Time
	NewClOrdID func() string

	seq  int
	lock sync.Mutex
}

// NewSession returns a [*Session] with the sequence at its initial value.
func NewSession(sender, target string) *Session {
	return &Session{
		SenderCompID: strings.TrimSpace(sender),
		TargetCompID: strings.TrimSpace(target),
	}
}

// Next returns the sequence number for the next message. The first call
// after construction or [Session.Reset] returns 1.
func (x *Session) Next() int {
	x.lock.Lock()
	defer x.lock.Unlock()
	x.seq++
	return x.seq
}

// Reset restores the sequence to its initial value.
func (x *Session) Reset() {
	x.lock.Lock()
	defer x.lock.Unlock()
	x.seq = 0
}

// Stamp returns the time for the SendingTime and TransactTime fields.
func (x *Session) Stamp() time.Time {
	if x.Now == nil {
		return time.Now()
	}
	return x.Now()
}

// ClOrdID returns a client order ID unique within this process.
func (x *Session) ClOrdID() string {
	if x.NewClOrdID == nil {
		return mkt.NewOrderID()
	}
	return x.NewClOrdID()
}
