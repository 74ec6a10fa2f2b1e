package main

import (
	"context"
	"os"
	"sync"

	"github.com/fixwire/fixterm/run"
	"github.com/redis/go-redis/v9"
)

// journal writes every event to the Redis stream, then hands it to the feed.
// Run until the context is cancelled.
func journal(ctx context.Context, rdb *redis.Client, stream string, events <-chan *run.Event, feedEvents chan<- *run.Event, shutdown *sync.WaitGroup) {

	defer shutdown.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event := <-events:
			if err := run.WriteEvent(ctx, rdb, stream, event); err != nil {
				os.Stderr.WriteString(err.Error() + "\n")
			}
			select {
			case feedEvents <- event:
			case <-ctx.Done():
				return
			}
		}
	}

}
