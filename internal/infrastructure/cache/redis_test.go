package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/Yughie/Phylab-System/internal/config"
)

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	r, err := OpenRedis(&config.Config{RedisAddr: mr.Addr()})
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	defer r.Close()

	if err := r.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := r.Get(context.Background(), "k").Result()
	if err != nil || got != "v" {
		t.Fatalf("Get = %q, %v", got, err)
	}
}

func TestOpenRedis_Unreachable(t *testing.T) {
	if _, err := OpenRedis(&config.Config{RedisAddr: "127.0.0.1:1"}); err == nil {
		t.Fatal("expected connection error")
	}
}
