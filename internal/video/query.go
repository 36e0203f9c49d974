package video

import (
	"encoding/json"
	"net/url"
	"strings"
)

// queryPair is one decoded key=value pair of a query string.
type queryPair struct {
	key, value string
}

// query holds decoded pairs in the order they appear on the wire.
type query []queryPair

// Get returns the first value for key, matched exactly.
func (q query) Get(key string) string {
	for _, p := range q {
		if p.key == key {
			return p.value
		}
	}
	return ""
}

// parseQuery decodes a raw query string. Malformed pairs are skipped, the
// same pairs url.ParseQuery rejects.
func parseQuery(raw string) query {
	var q query
	for _, part := range strings.Split(raw, "&") {
		if part == "" || strings.Contains(part, ";") {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			continue
		}
		q = append(q, queryPair{key: key, value: value})
	}
	return q
}

// splitSource separates the path and query of a URL string. The fragment is
// dropped. Malformed query pairs are skipped rather than reported.
func splitSource(src string) (string, query) {
	s := strings.TrimSpace(src)
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}

	path, rawQuery, _ := strings.Cut(s, "?")
	return path, parseQuery(rawQuery)
}

// lastSegments returns the last n "/"-separated segments of path, oldest
// first. Missing segments come back empty.
func lastSegments(path string, n int) []string {
	parts := strings.Split(path, "/")
	out := make([]string, n)
	for i := 0; i < n && i < len(parts); i++ {
		out[n-1-i] = parts[len(parts)-1-i]
	}
	return out
}

// queryValue looks up key ignoring case, so "autoPlay" and "autoplay" are the
// same parameter. An exact match wins; otherwise the first case-insensitive
// match in query order is used.
func queryValue(q query, key string) (string, bool) {
	for _, p := range q {
		if p.key == key {
			return p.value, true
		}
	}
	for _, p := range q {
		if strings.EqualFold(p.key, key) {
			return p.value, true
		}
	}
	return "", false
}

// literalBool decodes v as a JSON literal. ok is false unless v is exactly a
// boolean (surrounding whitespace allowed), so "1" or "yes" are rejected.
func literalBool(v string) (b bool, ok bool) {
	var x any
	if err := json.Unmarshal([]byte(v), &x); err != nil {
		return false, false
	}
	b, ok = x.(bool)
	return b, ok
}

// flagTrue reports whether the parameter is present and literally true.
func flagTrue(q query, key string) bool {
	v, ok := queryValue(q, key)
	if !ok {
		return false
	}
	b, ok := literalBool(v)
	return ok && b
}

// flagNotFalse reports true unless the parameter is literally false.
func flagNotFalse(q query, key string) bool {
	v, ok := queryValue(q, key)
	if !ok {
		return true
	}
	b, ok := literalBool(v)
	return !ok || b
}

// numericFlag reads the "1"/"0" style flags YouTube and Vimeo use. JSON
// booleans are accepted too. Anything else yields def.
func numericFlag(q query, key string, def bool) bool {
	v, ok := queryValue(q, key)
	if !ok {
		return def
	}
	switch strings.TrimSpace(v) {
	case "1":
		return true
	case "0":
		return false
	}
	if b, ok := literalBool(v); ok {
		return b
	}
	return def
}

// joinQuery appends the non-empty fragments to base, separated by "&" and
// introduced by "?".
func joinQuery(base string, fragments ...string) string {
	var set []string
	for _, f := range fragments {
		if f != "" {
			set = append(set, f)
		}
	}
	if len(set) == 0 {
		return base
	}
	return base + "?" + strings.Join(set, "&")
}
