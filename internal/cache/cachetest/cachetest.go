// Package cachetest starts an in-process Redis for tests.
package cachetest

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// New returns a go-redis client connected to a fresh miniredis. Both are
// closed when the test ends. Use the *miniredis.Miniredis to inspect keys or
// FastForward past a TTL.
func New(t testing.TB) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}
