package fix

import (
	"bytes"
	"strconv"

	"github.com/quickfixgo/quickfix"
)

// A TagValue is one field split from a raw message.
type TagValue struct {
	Tag   quickfix.Tag
	Value string
}

// Split divides a raw message on the delimiter into its fields. Runs without
// an '=' or with a non-numeric tag are skipped rather than failing: this is
// for display and round-trip checks, not conformance validation.
func Split(raw []byte) []TagValue {
	var fields []TagValue
	for _, part := range bytes.Split(raw, []byte{SOH}) {
		if len(part) == 0 {
			continue
		}
		b, a, ok := bytes.Cut(part, []byte{'='})
		if !ok {
			continue
		}
		n, err := strconv.Atoi(string(b))
		if err != nil {
			continue
		}
		fields = append(fields, TagValue{Tag: quickfix.Tag(n), Value: string(a)})
	}
	return fields
}

// Find returns the value of the first field with the given tag.
func Find(fields []TagValue, t quickfix.Tag) (string, bool) {
	for _, f := range fields {
		if f.Tag == t {
			return f.Value, true
		}
	}
	return "", false
}
