package query

import (
	"net/url"
	"slices"
	"strings"
)

// Build renders the query as a URL query fragment (the part after the
// question mark). Keys are emitted in ascending lexicographic order so
// that equal queries always build identical strings. Spaces are
// percent-encoded as %20, never as '+'.
func (q *Query) Build() string {
	keys := make([]string, 0, len(q.params))
	for k := range q.params {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(escape(k))
		sb.WriteByte('=')
		sb.WriteString(escape(q.params[k]))
	}
	return sb.String()
}

// escape percent-encodes s with a literal space as %20. QueryEscape
// emits '+' for spaces but also escapes a literal '+' to %2B, so the
// replacement below is unambiguous.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Parse decodes a URL query fragment produced by Build (or by any
// other seekd SDK). Malformed segments are skipped rather than
// failing the whole parse: a fragment with some bad segments yields a
// query holding the valid ones. Parse never returns an error.
//
// A segment without '=' carries no value; since an absent value is
// the same as an absent key, such segments are dropped.
func Parse(fragment string) *Query {
	q := New()
	for _, segment := range strings.Split(fragment, "&") {
		parts := strings.Split(segment, "=")
		if len(parts) != 2 {
			continue
		}
		name, err := url.QueryUnescape(parts[0])
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(parts[1])
		if err != nil {
			continue
		}
		q.Set(name, value)
	}
	return q
}
