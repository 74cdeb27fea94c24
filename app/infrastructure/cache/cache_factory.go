package cache

import (
	"strings"

	"gametrack.gg/stats-api/config/environment_variables"
)

// NewCacheService creates a cache service based on configuration
func NewCacheService() CacheService {
	cacheType := strings.ToLower(environment_variables.EnvironmentVariables.CACHE_TYPE)

	if cacheType == "" {
		cacheType = "redis"
	}

	switch cacheType {
	case "redis":
		return NewRedisCacheService()
	case "none":
		return &NoOpCacheService{}
	default:
		// Fallback to Redis for unknown types
		return NewRedisCacheService()
	}
}
