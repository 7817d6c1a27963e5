// Package query decodes raw URL query strings into flat parameter maps.
package query

import "strings"

// Map holds query parameters by name. Values are raw, not URL-decoded.
type Map map[string]string

// Parse splits raw on '&' and each token on its first '='. A token without
// '=' maps to the empty string; tokens with an empty name are dropped.
// When a name repeats, the last occurrence wins.
func Parse(raw string) Map {
	out := make(Map)
	if raw == "" {
		return out
	}
	for _, tok := range strings.Split(raw, "&") {
		name, value, _ := strings.Cut(tok, "=")
		if name == "" {
			continue
		}
		out[name] = value
	}
	return out
}

// Lookup returns the value for name and whether it was present.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}
