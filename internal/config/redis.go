package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a client for the given address, or nil when the
// address is empty or the server is unreachable. Redis only backs the
// rate limiter, so a missing server degrades to unlimited requests
// instead of failing startup.
func ConnectRedis(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s, rate limiting disabled: %v", addr, err)
		_ = client.Close()
		return nil
	}
	log.Println("connected to redis")
	return client
}
