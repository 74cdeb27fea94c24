package config

// Version is stamped at build time via -ldflags "-X gametrack.gg/stats-api/config.Version=...".
var Version = "dev"
