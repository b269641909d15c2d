package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Client is the shared connection to the Redis instance that backs the
// whole system: user, task and withdrawal documents live here as JSON
// values, and the notify stream rides the same instance.
type Client struct {
	*redis.Client
}

// Open connects and pings before handing the client out, so a bad address
// or password fails at startup instead of on the first request.
func Open(ctx context.Context, addr, password string, db int) (*Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("empty redis addr")
	}
	c := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return &Client{Client: c}, nil
}
