package statcache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gametrack.gg/stats-api/app/infrastructure/metrics"
	"gametrack.gg/stats-api/app/utils/logger"
)

// DefaultTTL applies when a call site passes a zero TTL.
const DefaultTTL = 1200 * time.Second

// Accessor implements the cache-aside protocol over a Store: build a
// versioned key, try the store, on miss run the producer and write the
// result back. The cache is a performance layer only; any store failure
// degrades to a miss on read and a logged no-op on write.
//
// Concurrent misses on the same key each run their producer and each write
// (last write wins). Producers are idempotent reads, so the duplicate work
// is accepted; revisit with a single-flight group if a producer ever grows
// side effects.
type Accessor struct {
	store    Store
	versions *Versions
	metrics  *metrics.Metrics
}

func NewAccessor(store Store, versions *Versions, m *metrics.Metrics) *Accessor {
	return &Accessor{
		store:    store,
		versions: versions,
		metrics:  m,
	}
}

// Key embeds the namespace's current fill version between the namespace
// and the serialized query parameters: "<ns>:<version>:<params>". The
// version is re-read on every call so a bump is observed on the next
// request without any flush.
func (a *Accessor) Key(ctx context.Context, namespace, params string) string {
	return fmt.Sprintf("%s:%d:%s", namespace, a.versions.Current(ctx, namespace), params)
}

// Read looks a full key up; a transport error counts as a miss.
func (a *Accessor) Read(ctx context.Context, key string) (string, bool) {
	payload, err := a.store.Get(ctx, key)
	if err != nil {
		return "", false
	}
	return payload, true
}

// Write stores a payload with a TTL. Raw payloads go in verbatim, anything
// else is JSON-marshalled. Failures are logged and swallowed; a cache
// write must never fail the request that produced the value.
func (a *Accessor) Write(ctx context.Context, key string, value any, ttl time.Duration, raw bool) {
	payload, err := a.encode(value, raw)
	if err != nil {
		a.logWriteError(key, err)
		return
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := a.store.Set(ctx, key, payload, ttl); err != nil {
		a.logWriteError(key, err)
	}
}

// GetOrCompute serves a JSON-cached value into dest. On a hit the stored
// payload is unmarshalled into dest; on a miss the producer runs, its
// result is written back and then unmarshalled into dest so the hit and
// miss paths return identical shapes. A producer error propagates and
// nothing is written.
func (a *Accessor) GetOrCompute(ctx context.Context, namespace, params string, ttl time.Duration, dest any, producer func() (any, error)) error {
	key := a.Key(ctx, namespace, params)

	if payload, ok := a.Read(ctx, key); ok {
		if err := json.Unmarshal([]byte(payload), dest); err == nil {
			a.hit(namespace)
			return nil
		}
		// Malformed stored value: fall through to the producer.
	}
	a.miss(namespace)

	value, err := producer()
	if err != nil {
		return err
	}

	payload, err := a.encode(value, false)
	if err != nil {
		return fmt.Errorf("failed to marshal produced value: %w", err)
	}
	a.Write(ctx, key, payload, ttl, true)
	return json.Unmarshal([]byte(payload), dest)
}

// GetOrComputeRaw is GetOrCompute for opaque string payloads (base64
// assets, pre-rendered bytes). The payload is never inspected.
func (a *Accessor) GetOrComputeRaw(ctx context.Context, namespace, params string, ttl time.Duration, producer func() (string, error)) (string, error) {
	key := a.Key(ctx, namespace, params)

	if payload, ok := a.Read(ctx, key); ok {
		a.hit(namespace)
		return payload, nil
	}
	a.miss(namespace)

	payload, err := producer()
	if err != nil {
		return "", err
	}
	a.Write(ctx, key, payload, ttl, true)
	return payload, nil
}

func (a *Accessor) encode(value any, raw bool) (string, error) {
	if raw {
		payload, ok := value.(string)
		if !ok {
			return "", fmt.Errorf("raw write requires a string payload, got %T", value)
		}
		return payload, nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func (a *Accessor) logWriteError(key string, err error) {
	namespace, _, _ := strings.Cut(key, ":")
	logger.GetLogger().
		WithField("namespace", namespace).
		WithField("key", key).
		Errorf("cache write failed: %v", err)
	if a.metrics != nil {
		a.metrics.CacheWriteErrors.WithLabelValues(namespace).Inc()
	}
}

func (a *Accessor) hit(namespace string) {
	if a.metrics != nil {
		a.metrics.CacheHits.WithLabelValues(namespace).Inc()
	}
}

func (a *Accessor) miss(namespace string) {
	if a.metrics != nil {
		a.metrics.CacheMisses.WithLabelValues(namespace).Inc()
	}
}
