package jobs

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Provider payloads are opaque semi-structured values. Every field access
// goes through a total lookup that yields the caller's default instead of
// failing, so one missing nested key never sinks the rest of the response.
// Raw payload values stop at the adapter boundary: only canonical listings
// leave this package.

// arrayAt returns the array at path inside body, or nil when the value
// there is missing or not an array. Result.Array would wrap a scalar into
// a one-element array, which would fabricate a listing out of a malformed
// payload.
func arrayAt(body []byte, path string) []gjson.Result {
	r := gjson.GetBytes(body, path)
	if !r.IsArray() {
		return nil
	}
	return r.Array()
}

// strAt returns the trimmed string at path inside v, or def when the path
// is absent, blank, or not a scalar value.
func strAt(v gjson.Result, path, def string) string {
	r := v.Get(path)
	if !r.Exists() || r.IsObject() || r.IsArray() {
		return def
	}
	s := strings.TrimSpace(r.String())
	if s == "" {
		return def
	}
	return s
}

// firstOr returns the first non-blank element of vals, or def.
func firstOr(vals []string, def string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return def
}

// joinedOr returns vals joined with spaces, or def when that comes out blank.
func joinedOr(vals []string, def string) string {
	s := strings.TrimSpace(strings.Join(vals, " "))
	if s == "" {
		return def
	}
	return s
}
