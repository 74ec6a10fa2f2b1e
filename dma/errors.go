package dma

// A ValidationError is a problem with a [Ticket], found before any network
// activity. It is never retried and is surfaced to the caller verbatim.
type ValidationError struct {
	Reason string
}

func (x *ValidationError) Error() string {
	return "dma: invalid order: " + x.Reason
}
