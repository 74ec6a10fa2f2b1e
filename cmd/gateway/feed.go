package main

import (
	"context"
	"net/http"
	"sync"

	"github.com/fixwire/fixterm/run"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const eventsPath = "/v1/events"

// A Feed fans submission events out to websocket observers.
type Feed struct {
	upgrader websocket.Upgrader
	register chan *websocket.Conn
	events   chan *run.Event
	conns    map[*websocket.Conn]bool
	done     chan struct{}
}

// NewFeed returns a [*Feed] ready to run.
func NewFeed(events chan *run.Event) *Feed {
	return &Feed{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		register: make(chan *websocket.Conn, 1),
		events:   events,
		conns:    map[*websocket.Conn]bool{},
		done:     make(chan struct{}),
	}
}

// Bind this [Feed] to [*gin.Engine].
func (x *Feed) Bind(router *gin.Engine) {
	router.GET(eventsPath, x.subscribe)
}

func (x *Feed) subscribe(ctx *gin.Context) {
	conn, err := x.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		return
	}
	select {
	case x.register <- conn:
	case <-x.done:
		conn.Close()
	}
}

// Run until the context is cancelled, forwarding each event to every
// observer. An observer failing a write is dropped. On exit every connection,
// registered or still pending, is closed. Only this goroutine touches the
// connection set.
func (x *Feed) Run(ctx context.Context, shutdown *sync.WaitGroup) {

	defer shutdown.Done()

	for {
		select {

		case <-ctx.Done():
			close(x.done)
			for len(x.register) > 0 {
				conn := <-x.register
				conn.Close()
			}
			for conn := range x.conns {
				conn.Close()
			}
			return

		case conn := <-x.register:
			x.conns[conn] = true

		case event := <-x.events:
			for conn := range x.conns {
				if err := conn.WriteJSON(event); err != nil {
					conn.Close()
					delete(x.conns, conn)
				}
			}

		}
	}

}
