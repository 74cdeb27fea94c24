package statcache

import "net/url"

// Params serializes a request path and its query parameters into the
// stable key suffix. url.Values.Encode sorts by key, so two logically
// identical queries always produce the same string.
func Params(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
