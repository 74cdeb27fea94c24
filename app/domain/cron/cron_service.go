package cron

import (
	"context"
	"time"

	"gametrack.gg/stats-api/app/domain/statcache"
	"gametrack.gg/stats-api/app/infrastructure/cache"
	"gametrack.gg/stats-api/app/utils/logger"
	"gametrack.gg/stats-api/config/environment_variables"
	"github.com/go-redsync/redsync/v4"
	"github.com/mileusna/crontab"
)

// CronService bumps the fill versions after the nightly data reload. The
// scraper finishes loading the region pools and the OLAP store well before
// 03:30; bumping then retires every cached leaderboard, history series and
// rendered map in O(1) without touching any key.
type CronService struct {
	versions     *statcache.Versions
	cacheService cache.CacheService
}

func NewService(versions *statcache.Versions, cacheService cache.CacheService) *CronService {
	return &CronService{
		versions:     versions,
		cacheService: cacheService,
	}
}

func (cs *CronService) Start(ctx context.Context, ctab *crontab.Crontab) {
	ctab.AddJob("*/2 * * * *", func() {
		environment_variables.EnvironmentVariables.LoadFromEnv()
	})
	ctab.AddJob("30 3 * * *", func() {
		cs.BumpDataNamespaces(ctx)
	})
}

// BumpDataNamespaces increments every namespace's fill version, guarded by
// a redlock so only one replica bumps per reload.
func (cs *CronService) BumpDataNamespaces(ctx context.Context) {
	mutex := cs.cacheService.NewMutex(cache.VersionBumpLockKey,
		redsync.WithExpiry(5*time.Minute),
		redsync.WithTries(1),
	)
	if mutex != nil {
		if err := mutex.LockContext(ctx); err != nil {
			logger.GetLogger().Debug("another replica is bumping fill versions, skipping")
			return
		}
		defer func() {
			if _, err := mutex.UnlockContext(ctx); err != nil {
				logger.GetLogger().Warnf("failed to release bump lock: %v", err)
			}
		}()
	}

	for _, namespace := range cache.Namespaces {
		if _, err := cs.versions.Bump(ctx, namespace); err != nil {
			logger.GetLogger().
				WithField("namespace", namespace).
				Warnf("cron service: failed to bump fill version: %v", err)
		}
	}
}
