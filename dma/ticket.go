// Package dma is the order entry side: the ticket describing one order, its
// rendering as a FIX NewOrderSingle, and the transport exchange with the
// counterparty.
package dma

import (
	"strings"

	"github.com/fixwire/fixterm/fix"
	"github.com/gbkr-com/mkt"
	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/tag"
	"github.com/shopspring/decimal"
)

// A Ticket is a request to send one NewOrderSingle. It is plain data
// supplied by the caller; [Ticket.Validate] is the only gate before the
// wire.
type Ticket struct {
	ClOrdID  string          // FIX field 11, assigned from the Session when empty.
	Side     mkt.Side        // FIX field 54
	Symbol   string          // FIX field 55
	OrderQty decimal.Decimal // FIX field 38
	Price    decimal.Decimal // FIX field 44
}

// Validate returns a [*ValidationError] describing the first problem found.
// It never touches the network.
func (x *Ticket) Validate() error {
	if strings.TrimSpace(x.Symbol) == "" {
		return &ValidationError{Reason: "empty symbol"}
	}
	if x.Side != mkt.Buy && x.Side != mkt.Sell {
		return &ValidationError{Reason: "unrecognised side"}
	}
	if !x.OrderQty.IsPositive() {
		return &ValidationError{Reason: "quantity must be positive"}
	}
	if !x.Price.IsPositive() {
		return &ValidationError{Reason: "price must be positive"}
	}
	return nil
}

// AsFIX builds the NewOrderSingle for this ticket, taking the sequence
// number, the timestamp and, when [Ticket.ClOrdID] is empty, the client
// order ID from the session. The session sequence is consumed whether or not
// the message is later sent. Body field order is fixed by the counterparty
// and must not change.
func (x *Ticket) AsFIX(session *fix.Session) ([]byte, error) {

	if err := x.Validate(); err != nil {
		return nil, err
	}
	if x.ClOrdID == "" {
		x.ClOrdID = session.ClOrdID()
	}
	now := fix.TimeValue(session.Stamp())

	var b fix.Builder
	b.Add(tag.MsgType, string(enum.MsgType_ORDER_SINGLE))
	b.Add(tag.SenderCompID, session.SenderCompID)
	b.Add(tag.TargetCompID, session.TargetCompID)
	b.Add(tag.MsgSeqNum, fix.IntValue(session.Next()))
	b.Add(tag.SendingTime, now)
	b.Add(tag.ClOrdID, x.ClOrdID)
	b.Add(tag.HandlInst, string(enum.HandlInst_AUTOMATED_EXECUTION_ORDER_PRIVATE_NO_BROKER_INTERVENTION))
	b.Add(tag.Symbol, strings.ToUpper(strings.TrimSpace(x.Symbol)))
	b.Add(tag.Side, string(SideValue(x.Side)))
	b.Add(tag.TransactTime, now)
	b.Add(tag.OrderQty, fix.QtyValue(x.OrderQty))
	b.Add(tag.OrdType, string(enum.OrdType_LIMIT))
	b.Add(tag.Price, fix.PriceValue(x.Price))
	return b.Bytes(), nil

}

// SideValue converts an [mkt.Side] to its FIX wire value.
func SideValue(side mkt.Side) enum.Side {
	if side == mkt.Sell {
		return enum.Side_SELL
	}
	return enum.Side_BUY
}
