package activity

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"netdecoy/pkg/eventbus"
	"netdecoy/pkg/logging"
	"netdecoy/pkg/metrics"
)

var mPublishError = metrics.NewCounter("decoy_publish_errors_total", "Redis activity publish failures")

// RegisterPublisherMetrics adds the publisher counters to an ops registry.
func RegisterPublisherMetrics(reg *metrics.Registry) {
	reg.Register(mPublishError)
}

// RedisPublisher mirrors activity events onto a Redis pub/sub channel for
// external consumers (SIEM feeds, dashboards). It is an optional bus
// subscriber: publish failures are counted and logged, never propagated.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
}

func NewRedisPublisher(addr, channel string) *RedisPublisher {
	return &RedisPublisher{
		rdb:     redis.NewClient(&redis.Options{Addr: addr}),
		channel: channel,
	}
}

func (p *RedisPublisher) Topics() []string { return []string{eventbus.TopicActivity} }

func (p *RedisPublisher) Handle(ctx context.Context, evt eventbus.Event) {
	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		mPublishError.Inc()
		logging.Errorf("redis publish marshal: %v", err)
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		mPublishError.Inc()
		logging.Errorf("redis publish %s: %v", p.channel, err)
	}
}

// Close releases the client connection pool.
func (p *RedisPublisher) Close() error { return p.rdb.Close() }
