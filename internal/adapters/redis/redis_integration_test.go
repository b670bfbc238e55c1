//go:build integration

package redisad_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	redisad "leisure_park/internal/adapters/redis"
	"leisure_park/internal/app"
	"leisure_park/internal/content"
	"leisure_park/internal/domain"
)

func TestCache_RealRedis_PageRoundTrip(t *testing.T) {
	// Start isolated Redis; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run redis: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	addr := fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp"))
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := pool.Retry(func() error {
		return client.Ping(context.Background()).Err()
	}); err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	cache := redisad.NewFromClient(client)
	t.Cleanup(func() { _ = cache.Close() })

	ctx := context.Background()
	svc := app.NewPageService(content.LeisurePark(""), cache, time.Minute)

	first, err := svc.Render(ctx, domain.MenuOpen)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := svc.Render(ctx, domain.MenuOpen)
	if err != nil {
		t.Fatalf("Render (cached): %v", err)
	}
	if first.ETag != second.ETag {
		t.Fatalf("etag changed between renders: %s vs %s", first.ETag, second.ETag)
	}

	keys, err := client.Keys(ctx, "page:*").Result()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("expected one cached page, got %v", keys)
	}

	if err := svc.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if n, _ := client.Exists(ctx, keys[0]).Result(); n != 0 {
		t.Fatalf("page still cached after invalidate")
	}
}
