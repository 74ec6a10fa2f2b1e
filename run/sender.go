package run

import (
	"context"
	"sync"
	"time"

	"github.com/fixwire/fixterm/dma"
	"github.com/fixwire/fixterm/fix"
	"github.com/gbkr-com/utl"
)

// A Submission asks the [Sender] for one order exchange with the
// counterparty at the given address.
type Submission struct {
	Address string
	Ticket  *dma.Ticket
}

// Sender is the worker owning the network exchange, so callers with a
// responsiveness requirement never block on it. Submissions arrive on one
// channel, events leave on another. Because one Sender serializes its
// session, sequence numbers stay strictly increasing without further
// locking.
type Sender struct {
	session     *fix.Session
	client      *dma.Client
	limiter     *utl.RateLimiter
	submissions chan *Submission
	events      chan *Event
}

// NewSender returns a [*Sender] ready to run. The limiter may be nil for an
// unthrottled sender.
func NewSender(
	session *fix.Session,
	client *dma.Client,
	limiter *utl.RateLimiter,
	submissions chan *Submission,
	events chan *Event,
) *Sender {
	return &Sender{
		session:     session,
		client:      client,
		limiter:     limiter,
		submissions: submissions,
		events:      events,
	}
}

// Run until the given context is cancelled. Cancellation abandons queued
// submissions; an exchange already in flight still runs to its timeout.
func (x *Sender) Run(ctx context.Context, shutdown *sync.WaitGroup) {

	defer shutdown.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case submission := <-x.submissions:
			x.process(submission)
		}
	}

}

// Reset the session sequence, reporting it as an event.
func (x *Sender) Reset() {
	x.session.Reset()
	x.events <- &Event{Kind: KindInfo, Text: "Sequence number reset.", At: time.Now()}
}

func (x *Sender) process(submission *Submission) {

	message, err := submission.Ticket.AsFIX(x.session)
	if err != nil {
		x.events <- &Event{Kind: KindError, ClOrdID: submission.Ticket.ClOrdID, Text: err.Error(), At: time.Now()}
		return
	}
	clOrdID := submission.Ticket.ClOrdID
	x.events <- &Event{Kind: KindSent, ClOrdID: clOrdID, Raw: fix.Pretty(message), At: time.Now()}

	if x.limiter != nil {
		x.limiter.Block()
	}
	outcome := x.client.Send(submission.Address, message)

	switch outcome.State {
	case dma.Received:
		x.events <- &Event{
			Kind:    KindReceived,
			ClOrdID: clOrdID,
			Text:    dma.SummarizeReply(outcome.Reply),
			Raw:     fix.Pretty(outcome.Reply),
			At:      time.Now(),
		}
	case dma.TimedOut:
		x.events <- &Event{Kind: KindInfo, ClOrdID: clOrdID, Text: "No response (timeout) - message delivered.", At: time.Now()}
	case dma.ClosedByPeer:
		x.events <- &Event{Kind: KindInfo, ClOrdID: clOrdID, Text: "Connection closed by server.", At: time.Now()}
	case dma.Refused:
		x.events <- &Event{Kind: KindError, ClOrdID: clOrdID, Text: "Connection refused at " + submission.Address, At: time.Now()}
	case dma.TransportError:
		x.events <- &Event{Kind: KindError, ClOrdID: clOrdID, Text: outcome.Err.Error(), At: time.Now()}
	}

}
