// Package main is mockfix, a paper counterparty for exercising the terminal
// and gateway by hand: it acknowledges every NewOrderSingle with an
// ExecutionReport NEW and stays silent for anything else.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fixwire/fixterm/env"
	"github.com/fixwire/fixterm/fix"
)

func main() {

	listener, err := net.Listen("tcp", configure())
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	session := fix.NewSession(
		os.Getenv("SENDER"),
		os.Getenv("TARGET"),
	)
	if session.SenderCompID == "" {
		session.SenderCompID = "SERVER1"
	}
	if session.TargetCompID == "" {
		session.TargetCompID = "CLIENT1"
	}

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go serve(conn, session)
		}
	}()

	<-env.Signal()
	fmt.Println("")
	listener.Close()

}

func configure() string {
	address := os.Getenv("LISTEN")
	if address == "" {
		address = ":9876"
	}
	return address
}

func serve(conn net.Conn, session *fix.Session) {

	defer conn.Close()

	buffer := make([]byte, env.ReadLimit)
	n, err := conn.Read(buffer)
	if err != nil {
		return
	}
	raw := buffer[:n]
	fmt.Println("RECV", fix.Pretty(raw))

	report, ok := Acknowledge(fix.Split(raw), session)
	if !ok {
		return
	}
	if _, err := conn.Write(report); err != nil {
		return
	}
	fmt.Println("SENT", fix.Pretty(report))

}
