package db

import (
	"context"
	"testing"

	"AmbientFM/config"

	"github.com/alicebob/miniredis/v2"
)

func TestConnectRedisAndCheck(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{RedisHost: mr.Host(), RedisPort: mr.Port()}

	client, err := ConnectRedis(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	if err := mr.Set("ambient:player:pid", "4242"); err != nil {
		t.Fatal(err)
	}
	if err := TestRedis(context.Background(), client, "ambient:player:pid"); err != nil {
		t.Fatalf("TestRedis: %v", err)
	}
	if got, _ := mr.Get("ambient:player:pid"); got != "4242" {
		t.Errorf("stored pid changed to %q", got)
	}
	if mr.Exists("ambient:player:pid:check") {
		t.Error("check key left behind")
	}
}

func TestConnectRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	if _, err := ConnectRedis(&config.Config{RedisHost: host, RedisPort: port}); err == nil {
		t.Error("ConnectRedis succeeded against a closed server")
	}
}
