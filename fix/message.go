package fix

import (
	"fmt"

	"github.com/quickfixgo/quickfix"
	"github.com/quickfixgo/tag"
)

// Checksum returns the mod-256 sum of the ASCII values of raw, rendered as a
// zero padded three digit decimal for the trailer field 10.
func Checksum(raw []byte) string {
	var sum int
	for _, b := range raw {
		sum += int(b)
	}
	return fmt.Sprintf("%03d", sum%256)
}

// A Builder accumulates the body fields of a single outbound message, from
// MsgType through the last business field, in the order they are added.
// Field order is fixed per message type by the counterparty: callers must
// add fields in that order. The zero value is ready to use.
type Builder struct {
	body []byte
}

// Add encodes one body field.
func (x *Builder) Add(t quickfix.Tag, value string) *Builder {
	x.body = AppendField(x.body, t, value)
	return x
}

// Bytes assembles the complete message: the BeginString field, the
// BodyLength field, the body, then the checksum over every preceding byte.
//
// BodyLength counts the BeginString field as well as the body. That is how
// the counterparty this client was written against frames messages, so it is
// reproduced here exactly.
func (x *Builder) Bytes() []byte {
	begin := AppendField(nil, tag.BeginString, BeginString42)
	raw := AppendField(begin, tag.BodyLength, IntValue(len(begin)+len(x.body)))
	raw = append(raw, x.body...)
	return AppendField(raw, tag.CheckSum, Checksum(raw))
}
