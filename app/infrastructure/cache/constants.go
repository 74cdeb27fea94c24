package cache

const (
	// Namespaces grouping cache keys under one fill-version counter each.
	NamespaceServers   = "servers"
	NamespacePlayers   = "players"
	NamespaceAlliances = "alliances"
	NamespaceHistory   = "history"
	NamespaceLive      = "live"
	NamespaceMaps      = "maps"

	VersionBumpLockKey     = "lock:fill-version-bump"
	RegistryRefreshLockKey = "lock:registry-refresh"
)

// Namespaces lists every known cache namespace; the admin bump route and
// the nightly cron validate against it.
var Namespaces = []string{
	NamespaceServers,
	NamespacePlayers,
	NamespaceAlliances,
	NamespaceHistory,
	NamespaceLive,
	NamespaceMaps,
}
