package main

import (
	"github.com/fixwire/fixterm/fix"
	"github.com/gbkr-com/mkt"
	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/tag"
)

// Acknowledge builds the ExecutionReport NEW for a NewOrderSingle, echoing
// the order identifiers back with the CompIDs reversed. Any other message
// type returns false.
func Acknowledge(fields []fix.TagValue, session *fix.Session) ([]byte, bool) {

	msgType, ok := fix.Find(fields, tag.MsgType)
	if !ok || msgType != string(enum.MsgType_ORDER_SINGLE) {
		return nil, false
	}
	clOrdID, _ := fix.Find(fields, tag.ClOrdID)
	symbol, _ := fix.Find(fields, tag.Symbol)
	side, _ := fix.Find(fields, tag.Side)
	qty, _ := fix.Find(fields, tag.OrderQty)

	now := fix.TimeValue(session.Stamp())

	var b fix.Builder
	b.Add(tag.MsgType, string(enum.MsgType_EXECUTION_REPORT))
	b.Add(tag.SenderCompID, session.SenderCompID)
	b.Add(tag.TargetCompID, session.TargetCompID)
	b.Add(tag.MsgSeqNum, fix.IntValue(session.Next()))
	b.Add(tag.SendingTime, now)
	b.Add(tag.OrderID, mkt.NewOrderID())
	b.Add(tag.ClOrdID, clOrdID)
	b.Add(tag.ExecID, mkt.NewOrderID())
	b.Add(tag.ExecTransType, string(enum.ExecTransType_NEW))
	b.Add(tag.ExecType, string(enum.ExecType_NEW))
	b.Add(tag.OrdStatus, string(enum.OrdStatus_NEW))
	b.Add(tag.Symbol, symbol)
	b.Add(tag.Side, side)
	b.Add(tag.TransactTime, now)
	b.Add(tag.LeavesQty, qty)
	b.Add(tag.CumQty, "0")
	b.Add(tag.AvgPx, "0")
	return b.Bytes(), true

}
