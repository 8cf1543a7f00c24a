package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/go-draft-service/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    map[string]string
	}{
		{
			name:    "empty",
			headers: http.Header{},
			want:    map[string]string{},
		},
		{
			name: "credentials redacted",
			headers: http.Header{
				"Authorization": {"Bearer secret-token"},
				"X-Api-Key":     {"my-api-key-value"},
				"Cookie":        {"session=abc123"},
			},
			want: map[string]string{
				"Authorization": "[REDACTED]",
				"X-Api-Key":     "[REDACTED]",
				"Cookie":        "[REDACTED]",
			},
		},
		{
			name: "stream headers pass through",
			headers: http.Header{
				"Accept":        {"text/event-stream"},
				"Last-Event-Id": {"42"},
			},
			want: map[string]string{
				"Accept":        "text/event-stream",
				"Last-Event-Id": "42",
			},
		},
		{
			name: "multi-value joined",
			headers: http.Header{
				"Accept": {"application/json", "application/problem+json"},
			},
			want: map[string]string{
				"Accept": "application/json,application/problem+json",
			},
		},
		{
			name: "mixed",
			headers: http.Header{
				"Authorization": {"Bearer secret"},
				"Content-Type":  {"application/json"},
			},
			want: map[string]string{
				"Authorization": "[REDACTED]",
				"Content-Type":  "application/json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(tt.headers)
			if len(attrs) != len(tt.want) {
				t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(tt.want))
			}
			for _, a := range attrs {
				if got := a.Value.String(); got != tt.want[a.Key] {
					t.Errorf("%s = %q, want %q", a.Key, got, tt.want[a.Key])
				}
			}
		})
	}
}
