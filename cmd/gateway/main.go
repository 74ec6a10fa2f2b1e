// Package main is the order entry gateway: an HTTP surface accepting order
// tickets, a sender worker exchanging them with the FIX counterparty, a
// websocket feed of submission events and a Redis journal of the same.
package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/fixwire/fixterm/dma"
	"github.com/fixwire/fixterm/env"
	"github.com/fixwire/fixterm/fix"
	"github.com/fixwire/fixterm/run"
	"github.com/gbkr-com/utl"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {

	counterparty := env.MustHave("COUNTERPARTY") // host:port of the FIX counterparty.
	address := env.MustHave("HTTP")
	redisAddress := env.MustHave("REDIS")
	senderCompID := env.MustHave("SENDER")
	targetCompID := env.MustHave("TARGET")

	ctx, cxl := context.WithCancel(context.Background())
	var shutdown sync.WaitGroup

	rdb := redis.NewClient(
		&redis.Options{
			Addr: redisAddress,
		},
	)
	stream := run.MakeEventStreamName(senderCompID)

	session := fix.NewSession(senderCompID, targetCompID)
	submissions := make(chan *run.Submission, 16)
	events := make(chan *run.Event, 16)

	worker := run.NewSender(
		session,
		dma.NewClient(),
		utl.NewRateLimiter(env.OrdersPerSecond, time.Second),
		submissions,
		events,
	)
	shutdown.Add(1)
	go worker.Run(ctx, &shutdown)

	feedEvents := make(chan *run.Event, 16)
	feed := NewFeed(feedEvents)
	shutdown.Add(1)
	go feed.Run(ctx, &shutdown)

	shutdown.Add(1)
	go journal(ctx, rdb, stream, events, feedEvents, &shutdown)

	handler := &Handler{
		address:     counterparty,
		submissions: submissions,
		sender:      worker,
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	handler.Bind(router)
	feed.Bind(router)
	srv := &http.Server{
		Addr:    address,
		Handler: router,
	}
	go srv.ListenAndServe()

	<-env.Signal()
	fmt.Println("")
	srv.Shutdown(context.Background())
	cxl()
	shutdown.Wait()
	fmt.Println("done")

}
