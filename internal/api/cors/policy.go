// Package cors decides which cross-origin requests may read API responses.
package cors

import "strings"

// Wildcard is the header value used for requests without an Origin header.
const Wildcard = "*"

// Decision is the outcome of evaluating one request's declared origin
// against the allow-set.
type Decision struct {
	RequestOrigin string
	Allowed       bool
	HeaderValue   string // never empty
}

// Policy holds the ordered set of origins permitted to receive credentialed
// cross-origin responses. It is built once at startup and read-only after.
type Policy struct {
	allowed []string
}

// NewPolicy builds a policy from candidate origins. Candidates are normalized
// by stripping a single trailing slash (Origin headers never carry one),
// deduplicated preserving order, and empty entries are dropped.
func NewPolicy(candidates ...string) *Policy {
	seen := make(map[string]struct{}, len(candidates))
	var allowed []string
	for _, c := range candidates {
		origin := strings.TrimSuffix(c, "/")
		if origin == "" {
			continue
		}
		if _, ok := seen[origin]; ok {
			continue
		}
		seen[origin] = struct{}{}
		allowed = append(allowed, origin)
	}
	return &Policy{allowed: allowed}
}

// AllowedOrigins returns a copy of the allow-set in evaluation order.
func (p *Policy) AllowedOrigins() []string {
	out := make([]string, len(p.allowed))
	copy(out, p.allowed)
	return out
}

// Evaluate decides whether the declared origin may read responses.
//
// A request without an Origin header comes from a non-browser client (curl,
// server-to-server) and is allowed with the wildcard. A member origin is
// echoed back exactly, never the wildcard, because credentials are permitted.
// A non-member origin is reported as not allowed but the header value falls
// back to the first allow-set entry: the request itself proceeds, the browser
// just refuses to expose the response to calling script.
func (p *Policy) Evaluate(requestOrigin string) Decision {
	if requestOrigin == "" {
		return Decision{Allowed: true, HeaderValue: Wildcard}
	}

	for _, origin := range p.allowed {
		if origin == requestOrigin {
			return Decision{RequestOrigin: requestOrigin, Allowed: true, HeaderValue: requestOrigin}
		}
	}

	fallback := Wildcard
	if len(p.allowed) > 0 {
		fallback = p.allowed[0]
	}
	return Decision{RequestOrigin: requestOrigin, Allowed: false, HeaderValue: fallback}
}
