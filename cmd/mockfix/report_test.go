package main

import (
	"testing"
	"time"

	"github.com/fixwire/fixterm/dma"
	"github.com/fixwire/fixterm/fix"
	"github.com/gbkr-com/mkt"
	"github.com/quickfixgo/tag"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAcknowledge(t *testing.T) {

	client := fix.NewSession("CLIENT1", "SERVER1")
	ticket := &dma.Ticket{
		Side:     mkt.Buy,
		Symbol:   "AAPL",
		OrderQty: decimal.New(100, 0),
		Price:    decimal.New(150, 0),
	}
	order, err := ticket.AsFIX(client)
	assert.Nil(t, err)

	server := fix.NewSession("SERVER1", "CLIENT1")
	server.Now = func() time.Time {
		return time.Date(2025, time.March, 7, 14, 30, 10, 0, time.UTC)
	}

	report, ok := Acknowledge(fix.Split(order), server)
	assert.True(t, ok)

	fields := fix.Split(report)

	msgType, _ := fix.Find(fields, tag.MsgType)
	assert.Equal(t, "8", msgType)
	sender, _ := fix.Find(fields, tag.SenderCompID)
	assert.Equal(t, "SERVER1", sender)
	target, _ := fix.Find(fields, tag.TargetCompID)
	assert.Equal(t, "CLIENT1", target)
	clOrdID, _ := fix.Find(fields, tag.ClOrdID)
	assert.Equal(t, ticket.ClOrdID, clOrdID)
	status, _ := fix.Find(fields, tag.OrdStatus)
	assert.Equal(t, "0", status)
	leaves, _ := fix.Find(fields, tag.LeavesQty)
	assert.Equal(t, "100", leaves)

	//
	// The summary the client will log.
	//
	summary := dma.SummarizeReply(report)
	assert.Contains(t, summary, "ExecutionReport NEW")

	//
	// Anything but a NewOrderSingle is ignored.
	//
	_, ok = Acknowledge(fix.Split(report), server)
	assert.False(t, ok)

}
