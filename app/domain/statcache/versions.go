package statcache

import (
	"context"
	"strconv"
	"time"

	"gametrack.gg/stats-api/app/utils/logger"
)

// DefaultVersion is the fill version assumed for namespaces that were never
// bumped.
const DefaultVersion int64 = 1

const versionKeyPrefix = "fill-version:"

// Store is the slice of the cache backend the statcache layer needs.
// cache.CacheService satisfies it.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
}

// Versions tracks one fill-version integer per namespace. Bumping the
// version orphans every key written under the old one; orphans expire on
// their own TTL and are never scanned or deleted.
type Versions struct {
	store Store
}

func NewVersions(store Store) *Versions {
	return &Versions{store: store}
}

// VersionKey returns the well-known key holding a namespace's fill version.
func VersionKey(namespace string) string {
	return versionKeyPrefix + namespace
}

// Current returns the namespace's fill version. A missing key, an
// unparseable value or a transport error all degrade to DefaultVersion;
// the request path never sees an error from here.
func (v *Versions) Current(ctx context.Context, namespace string) int64 {
	raw, err := v.store.Get(ctx, VersionKey(namespace))
	if err != nil {
		return DefaultVersion
	}
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || version < 1 {
		return DefaultVersion
	}
	return version
}

// Bump increments the namespace's fill version and returns the new value.
// Namespaces that were never set read as version 1, so the first bump must
// land on 2; INCR initializes absent keys to 1, hence the second increment.
func (v *Versions) Bump(ctx context.Context, namespace string) (int64, error) {
	version, err := v.store.Incr(ctx, VersionKey(namespace))
	if err != nil {
		return 0, err
	}
	if version == DefaultVersion {
		version, err = v.store.Incr(ctx, VersionKey(namespace))
		if err != nil {
			return 0, err
		}
	}
	logger.GetLogger().WithField("namespace", namespace).Infof("fill version bumped to %d", version)
	return version, nil
}
