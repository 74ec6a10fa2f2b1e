package dma

import (
	"bytes"

	"github.com/fixwire/fixterm/fix"
	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/field"
	"github.com/quickfixgo/quickfix"
	"github.com/quickfixgo/tag"
)

// SummarizeReply describes a counterparty reply for the event log. An
// ExecutionReport becomes a short status line; anything else is shown as the
// pretty raw bytes.
func SummarizeReply(raw []byte) string {

	if summary, ok := summarizeStrict(raw); ok {
		return summary
	}
	if summary, ok := summarizeFields(fix.Split(raw)); ok {
		return summary
	}
	return fix.Pretty(raw)

}

// summarizeStrict decodes a reply whose BodyLength counts the body only.
func summarizeStrict(raw []byte) (string, bool) {

	message := quickfix.NewMessage()
	if err := quickfix.ParseMessage(message, bytes.NewBuffer(raw)); err != nil {
		return "", false
	}

	var msgType field.MsgTypeField
	if reject := message.Header.Get(&msgType); reject != nil {
		return "", false
	}
	if msgType.Value() != enum.MsgType_EXECUTION_REPORT {
		return "", false
	}

	var (
		clOrdID   field.ClOrdIDField
		orderID   field.OrderIDField
		ordStatus field.OrdStatusField
		text      field.TextField
	)
	summary := "ExecutionReport"
	if reject := message.Body.Get(&ordStatus); reject == nil {
		summary += " " + ordStatusName(ordStatus.Value())
	}
	if reject := message.Body.Get(&clOrdID); reject == nil {
		summary += " ClOrdID=" + clOrdID.Value()
	}
	if reject := message.Body.Get(&orderID); reject == nil {
		summary += " OrderID=" + orderID.Value()
	}
	if reject := message.Body.Get(&text); reject == nil {
		summary += " (" + text.Value() + ")"
	}
	return summary, true

}

// summarizeFields reads the reply tags directly. [fix.Builder] counts the
// BeginString field in BodyLength, so its output fails strict parsing.
func summarizeFields(fields []fix.TagValue) (string, bool) {

	msgType, ok := fix.Find(fields, tag.MsgType)
	if !ok || enum.MsgType(msgType) != enum.MsgType_EXECUTION_REPORT {
		return "", false
	}

	summary := "ExecutionReport"
	if v, ok := fix.Find(fields, tag.OrdStatus); ok {
		summary += " " + ordStatusName(enum.OrdStatus(v))
	}
	if v, ok := fix.Find(fields, tag.ClOrdID); ok {
		summary += " ClOrdID=" + v
	}
	if v, ok := fix.Find(fields, tag.OrderID); ok {
		summary += " OrderID=" + v
	}
	if v, ok := fix.Find(fields, tag.Text); ok {
		summary += " (" + v + ")"
	}
	return summary, true

}

func ordStatusName(status enum.OrdStatus) string {
	switch status {
	case enum.OrdStatus_PENDING_NEW:
		return "PENDING_NEW"
	case enum.OrdStatus_NEW:
		return "NEW"
	case enum.OrdStatus_PARTIALLY_FILLED:
		return "PARTIALLY_FILLED"
	case enum.OrdStatus_FILLED:
		return "FILLED"
	case enum.OrdStatus_CANCELED:
		return "CANCELED"
	case enum.OrdStatus_REJECTED:
		return "REJECTED"
	}
	return string(status)
}
