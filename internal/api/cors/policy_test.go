package cors

import (
	"reflect"
	"testing"
)

func TestNewPolicy_NormalizesAndDeduplicates(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       []string
	}{
		{
			name:       "trailing slash stripped",
			candidates: []string{"https://gaiapac.ae/"},
			want:       []string{"https://gaiapac.ae"},
		},
		{
			name:       "empty entries dropped",
			candidates: []string{"", "https://gaiapac.ae", ""},
			want:       []string{"https://gaiapac.ae"},
		},
		{
			name:       "duplicates keep first position",
			candidates: []string{"https://gaiapac.ae/", "https://www.gaiapac.ae", "https://gaiapac.ae"},
			want:       []string{"https://gaiapac.ae", "https://www.gaiapac.ae"},
		},
		{
			name:       "order preserved",
			candidates: []string{"https://a.example", "https://b.example", "http://localhost:5173"},
			want:       []string{"https://a.example", "https://b.example", "http://localhost:5173"},
		},
		{
			name:       "all empty",
			candidates: []string{"", ""},
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPolicy(tt.candidates...).AllowedOrigins()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AllowedOrigins() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_NoOriginHeader(t *testing.T) {
	p := NewPolicy("https://gaiapac.ae")

	d := p.Evaluate("")
	if !d.Allowed {
		t.Error("request without Origin header must be allowed")
	}
	if d.HeaderValue != Wildcard {
		t.Errorf("HeaderValue = %q, want wildcard", d.HeaderValue)
	}
}

func TestEvaluate_MemberOriginEchoedExactly(t *testing.T) {
	p := NewPolicy("https://gaiapac.ae/", "https://www.gaiapac.ae")

	for _, origin := range []string{"https://gaiapac.ae", "https://www.gaiapac.ae"} {
		d := p.Evaluate(origin)
		if !d.Allowed {
			t.Errorf("Evaluate(%q).Allowed = false, want true", origin)
		}
		// Credentials are permitted, so the exact origin must come back,
		// never the wildcard.
		if d.HeaderValue != origin {
			t.Errorf("Evaluate(%q).HeaderValue = %q, want exact echo", origin, d.HeaderValue)
		}
	}
}

func TestEvaluate_NonMemberFallsBackToFirstEntry(t *testing.T) {
	p := NewPolicy("https://gaiapac.ae", "https://www.gaiapac.ae")

	d := p.Evaluate("https://evil.example")
	if d.Allowed {
		t.Error("non-member origin must be reported as not allowed")
	}
	if d.HeaderValue != "https://gaiapac.ae" {
		t.Errorf("HeaderValue = %q, want first allow-set entry", d.HeaderValue)
	}
	if d.RequestOrigin != "https://evil.example" {
		t.Errorf("RequestOrigin = %q, want the declared origin", d.RequestOrigin)
	}
}

func TestEvaluate_NonMemberEmptyPolicyUsesWildcard(t *testing.T) {
	p := NewPolicy()

	d := p.Evaluate("https://evil.example")
	if d.Allowed {
		t.Error("non-member origin must be reported as not allowed")
	}
	if d.HeaderValue != Wildcard {
		t.Errorf("HeaderValue = %q, want wildcard for empty allow-set", d.HeaderValue)
	}
}

func TestEvaluate_HeaderValueNeverEmpty(t *testing.T) {
	policies := []*Policy{
		NewPolicy(),
		NewPolicy("https://gaiapac.ae"),
	}
	origins := []string{"", "https://gaiapac.ae", "https://evil.example"}

	for _, p := range policies {
		for _, origin := range origins {
			if d := p.Evaluate(origin); d.HeaderValue == "" {
				t.Errorf("Evaluate(%q) produced empty HeaderValue", origin)
			}
		}
	}
}
