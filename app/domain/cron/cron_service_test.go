package cron_test

import (
	"context"
	"testing"

	"gametrack.gg/stats-api/app/domain/cron"
	"gametrack.gg/stats-api/app/domain/statcache"
	"gametrack.gg/stats-api/app/infrastructure/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestBumpDataNamespacesBumpsEveryNamespace(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cacheService := cache.NewRedisCacheServiceFromClient(client)
	versions := statcache.NewVersions(cacheService)
	svc := cron.NewService(versions, cacheService)

	svc.BumpDataNamespaces(ctx)

	for _, namespace := range cache.Namespaces {
		assert.Equal(t, int64(2), versions.Current(ctx, namespace), namespace)
	}

	svc.BumpDataNamespaces(ctx)
	for _, namespace := range cache.Namespaces {
		assert.Equal(t, int64(3), versions.Current(ctx, namespace), namespace)
	}
}
