package maprender

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"time"

	"gametrack.gg/stats-api/app/domain/statcache"
	"gametrack.gg/stats-api/app/infrastructure/cache"
	"gametrack.gg/stats-api/app/infrastructure/renderer"
)

// Rendered maps only change with the nightly data load; the maps
// namespace bump retires them, the TTL is just a backstop.
const mapTTL = 7 * 24 * time.Hour

const defaultWidth = 1024
const defaultHeight = 1024

type Service struct {
	engine   renderer.Engine
	accessor *statcache.Accessor
}

func NewService(engine renderer.Engine, accessor *statcache.Accessor) *Service {
	return &Service{
		engine:   engine,
		accessor: accessor,
	}
}

func mapParams(server string, kingdom int) string {
	values := url.Values{}
	values.Set("server", server)
	return statcache.Params(fmt.Sprintf("/maps/%d", kingdom), values)
}

// CachedMap tries the cache only; a hit means the route never touches the
// renderer or the admission queue. Payload is base64 PNG.
func (s *Service) CachedMap(ctx context.Context, server string, kingdom int) (string, bool) {
	key := s.accessor.Key(ctx, cache.NamespaceMaps, mapParams(server, kingdom))
	return s.accessor.Read(ctx, key)
}

// RenderMap produces the kingdom map via the headless renderer and caches
// it base64-encoded in raw mode. Runs inside an admission queue job; the
// renderer cannot serve two requests at once.
func (s *Service) RenderMap(ctx context.Context, server string, kingdom int) (string, error) {
	return s.accessor.GetOrComputeRaw(ctx, cache.NamespaceMaps, mapParams(server, kingdom), mapTTL, func() (string, error) {
		handle, err := s.engine.Acquire(ctx)
		if err != nil {
			return "", err
		}
		png, err := handle.RenderMap(ctx, renderer.RenderRequest{
			Server:  server,
			Kingdom: kingdom,
			Width:   defaultWidth,
			Height:  defaultHeight,
		})
		if err != nil {
			return "", err
		}
		return base64.StdEncoding.EncodeToString(png), nil
	})
}

// Decode turns a cached payload back into PNG bytes for the response.
func Decode(payload string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(payload)
}
