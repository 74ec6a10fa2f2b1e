// Package main is fixterm, a one-shot FIX 4.2 order entry terminal: build
// one NewOrderSingle, send it, show the exchanged bytes.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fixwire/fixterm/dma"
	"github.com/fixwire/fixterm/env"
	"github.com/fixwire/fixterm/fix"
	"github.com/gbkr-com/mkt"
	"github.com/shopspring/decimal"
)

func main() {

	var (
		host   = flag.String("host", "127.0.0.1", "counterparty host")
		port   = flag.Int("port", 9876, "counterparty port")
		sender = flag.String("sender", "CLIENT1", "SenderCompID")
		target = flag.String("target", "SERVER1", "TargetCompID")
		symbol = flag.String("symbol", "AAPL", "instrument symbol")
		side   = flag.String("side", "BUY", "BUY or SELL")
		qty    = flag.String("qty", "100", "order quantity")
		px     = flag.String("px", "150.00", "limit price")
		wait   = flag.Duration("wait", env.ReadTimeout, "wait for a reply")
	)
	flag.Parse()

	ticket, err := makeTicket(*symbol, *side, *qty, *px)
	if err != nil {
		fail(err)
	}

	session := fix.NewSession(*sender, *target)
	message, err := ticket.AsFIX(session)
	if err != nil {
		fail(err)
	}
	logLine("SENT", fix.Pretty(message))

	address := fmt.Sprintf("%s:%d", *host, *port)
	client := dma.NewClient()
	client.ReadTimeout = *wait
	outcome := client.Send(address, message)

	switch outcome.State {
	case dma.Received:
		logLine("RECV", dma.SummarizeReply(outcome.Reply))
		logLine("RECV", fix.Pretty(outcome.Reply))
	case dma.TimedOut:
		logLine("INFO", "No response (timeout) - message delivered.")
	case dma.ClosedByPeer:
		logLine("INFO", "Connection closed by server.")
	case dma.Refused:
		fail(fmt.Errorf("connection refused at %s", address))
	case dma.TransportError:
		fail(outcome.Err)
	}

}

func makeTicket(symbol, side, qty, px string) (*dma.Ticket, error) {
	s := mkt.SideFromString(strings.ToUpper(strings.TrimSpace(side)))
	if s == 0 {
		return nil, fmt.Errorf("unrecognised side %q", side)
	}
	quantity, err := decimal.NewFromString(qty)
	if err != nil {
		return nil, fmt.Errorf("bad qty: %w", err)
	}
	price, err := decimal.NewFromString(px)
	if err != nil {
		return nil, fmt.Errorf("bad px: %w", err)
	}
	ticket := &dma.Ticket{
		Side:     s,
		Symbol:   symbol,
		OrderQty: quantity,
		Price:    price,
	}
	if err := ticket.Validate(); err != nil {
		return nil, err
	}
	return ticket, nil
}

func logLine(label, text string) {
	fmt.Printf("[%s] %s %s\n", time.Now().Format("15:04:05.000"), label, text)
}

func fail(err error) {
	os.Stderr.WriteString(err.Error() + "\n")
	os.Exit(1)
}
