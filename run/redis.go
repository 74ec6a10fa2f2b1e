package run

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// EventStreamPrefix names the Redis streams journaling submission events for
// presentation readers. The first part of the prefix is the type of Redis
// data structure, to assist when working with the Redis command line. The
// colon separator is a Redis idiom.
const EventStreamPrefix = "stream:events:"

// MakeEventStreamName is a convenience function, keying the stream by the
// sending CompID.
func MakeEventStreamName(sender string) string {
	return EventStreamPrefix + sender
}

// WriteEvent journals the [*Event] to the named stream.
func WriteEvent(ctx context.Context, rdb *redis.Client, stream string, event *Event) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	args := &redis.XAddArgs{
		Stream: stream,
		Values: []any{"json", string(b)},
	}
	_, err = rdb.XAdd(ctx, args).Result()
	return err
}

// UnmarshalEvent recovers an [*Event] from a stream entry written with
// [WriteEvent].
func UnmarshalEvent(message redis.XMessage) (*Event, error) {
	s, ok := message.Values["json"].(string)
	if !ok {
		return nil, fmt.Errorf("run: stream entry %s has no json value", message.ID)
	}
	event := &Event{}
	if err := json.Unmarshal([]byte(s), event); err != nil {
		return nil, err
	}
	return event, nil
}
