// Package fix renders and splits FIX 4.2 tag-value messages at the byte
// level: field encoding, body length and checksum, and message sequencing.
// It deliberately stops short of the FIX session layer - there is no Logon,
// Heartbeat or resend handling here.
package fix

import (
	"strconv"
	"strings"
	"time"

	"github.com/quickfixgo/quickfix"
	"github.com/shopspring/decimal"
)

// SOH is the FIX field delimiter byte.
const SOH byte = 0x01

// BeginString42 is the protocol version carried in field 8.
const BeginString42 = "FIX.4.2"

// PricePrecision is the number of fractional digits rendered for field 44.
// Counterparty implementations vary between two and four places; this codec
// fixes on four and never varies it.
const PricePrecision = 4

// AppendField appends 'tag=value' and the delimiter to dst. Values must not
// contain the delimiter byte; no escaping is performed.
func AppendField(dst []byte, tag quickfix.Tag, value string) []byte {
	dst = strconv.AppendInt(dst, int64(tag), 10)
	dst = append(dst, '=')
	dst = append(dst, value...)
	return append(dst, SOH)
}

// IntValue renders an integer field value.
func IntValue(n int) string {
	return strconv.Itoa(n)
}

// QtyValue renders an order quantity as whole units for field 38.
func QtyValue(qty decimal.Decimal) string {
	return qty.Truncate(0).String()
}

// PriceValue renders a price with [PricePrecision] fractional digits for
// field 44.
func PriceValue(px decimal.Decimal) string {
	return px.StringFixed(PricePrecision)
}

// TimeValue renders a UTC timestamp for fields 52 and 60.
func TimeValue(t time.Time) string {
	return t.UTC().Format("20060102-15:04:05")
}

// Pretty returns the raw message with each delimiter shown as ' | ', for
// logs and display only.
func Pretty(raw []byte) string {
	return strings.ReplaceAll(string(raw), "\x01", " | ")
}
