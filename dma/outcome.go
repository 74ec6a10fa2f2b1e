package dma

// State is the terminal state of one transport exchange. Callers switch over
// these rather than unpicking error chains.
type State int

// The terminal states. Only Refused and TransportError are failures: a read
// timeout or a peer close after a successful send means the message is
// presumed delivered, no response observed.
const (
	Received State = iota + 1
	TimedOut
	ClosedByPeer
	Refused
	TransportError
)

func (x State) String() string {
	switch x {
	case Received:
		return "RECEIVED"
	case TimedOut:
		return "TIMED_OUT"
	case ClosedByPeer:
		return "CLOSED_BY_PEER"
	case Refused:
		return "REFUSED"
	case TransportError:
		return "TRANSPORT_ERROR"
	}
	return "UNKNOWN"
}

// An Outcome is the tagged result of [Client.Send]. Reply is set only for
// [Received]; Err only for [Refused] and [TransportError].
type Outcome struct {
	State State
	Reply []byte
	Err   error
}
