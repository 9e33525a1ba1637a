package lock

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestNewDistributedLock_UniqueValues(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	a := NewDistributedLock(client, MigrationsKey, time.Minute)
	b := NewDistributedLock(client, MigrationsKey, time.Minute)

	if a.Key() != MigrationsKey {
		t.Errorf("expected key %q, got %q", MigrationsKey, a.Key())
	}
	if a.value == "" || a.value == b.value {
		t.Errorf("expected distinct lock values, got %q and %q", a.value, b.value)
	}
}

func TestAcquire_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	l := NewDistributedLock(client, MigrationsKey, time.Minute)

	acquired, err := l.Acquire(context.Background())
	if err == nil {
		t.Fatal("expected error when Redis is unreachable")
	}
	if acquired {
		t.Error("lock must not be reported as acquired on error")
	}
}
