package acl

import (
	"errors"
	"io"
	"net/http"
	"slices"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-draft-service/internal/domain"
)

// problemResponse builds a downstream response. A body starting with "{" is
// labelled application/problem+json.
func problemResponse(status int, body string) *http.Response {
	header := http.Header{}
	if strings.HasPrefix(strings.TrimSpace(body), "{") {
		header.Set("Content-Type", "application/problem+json")
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, domain.ErrValidation},
		{http.StatusUnprocessableEntity, domain.ErrValidation},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusGone, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusPreconditionFailed, domain.ErrConflict},
		{http.StatusUnauthorized, domain.ErrForbidden},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusTooManyRequests, domain.ErrUnavailable},
		{http.StatusInternalServerError, domain.ErrUnavailable},
		{http.StatusBadGateway, domain.ErrUnavailable},
		{http.StatusServiceUnavailable, domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			got := TranslateHTTPError(problemResponse(tt.status, ""))
			if !errors.Is(got, tt.wantErr) {
				t.Errorf("TranslateHTTPError(%d) = %v, want errors.Is %v", tt.status, got, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{
			name:   "detail preferred",
			status: http.StatusNotFound,
			body:   `{"title":"Not Found","status":404,"detail":"todo 42 not found"}`,
			want:   "todo 42 not found",
		},
		{
			name:   "title when no detail",
			status: http.StatusPreconditionFailed,
			body:   `{"title":"todo 42 was modified","status":412}`,
			want:   "todo 42 was modified",
		},
		{
			name:   "status text for plain body",
			status: http.StatusNotFound,
			body:   "gone fishing",
			want:   "Not Found",
		},
		{
			name:   "status text for empty body",
			status: http.StatusConflict,
			want:   "Conflict",
		},
		{
			name:   "status text for malformed problem",
			status: http.StatusConflict,
			body:   `{"detail":`,
			want:   "Conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TranslateHTTPError(problemResponse(tt.status, tt.body))
			if !strings.HasPrefix(got.Error(), tt.want) {
				t.Errorf("error = %q, want prefix %q", got.Error(), tt.want)
			}
		})
	}
}

func TestTranslateHTTPError_ValidationFields(t *testing.T) {
	t.Parallel()

	body := `{
		"detail": "validation failed",
		"errors": [
			{"location": "body.title", "message": "too long"},
			{"location": "body.group_id", "message": "no such group"},
			{"location": "body.title", "message": "contains a banned word"},
			{"location": "body", "message": "duplicate todo"},
			{"location": "", "message": "quota reached"},
			{"location": "status", "message": "cannot reopen"}
		]
	}`

	got := TranslateHTTPError(problemResponse(http.StatusUnprocessableEntity, body))
	if !errors.Is(got, domain.ErrValidation) {
		t.Fatalf("error is not ErrValidation: %v", got)
	}
	var verr *domain.ValidationError
	if !errors.As(got, &verr) {
		t.Fatalf("error is not *ValidationError: %v", got)
	}

	want := map[string][]string{
		"title":      {"too long", "contains a banned word"},
		"project_id": {"no such group"},
		"":           {"duplicate todo", "quota reached"},
		"status":     {"cannot reopen"},
	}
	if len(verr.Fields) != len(want) {
		t.Fatalf("Fields = %v, want %d keys", verr.Fields, len(want))
	}
	for field, msgs := range want {
		if !slices.Equal(verr.Fields[field], msgs) {
			t.Errorf("Fields[%q] = %v, want %v", field, verr.Fields[field], msgs)
		}
	}
}

func TestTranslateHTTPError_ValidationWithoutDetails(t *testing.T) {
	t.Parallel()

	got := TranslateHTTPError(problemResponse(http.StatusBadRequest, `{"detail":"malformed"}`))

	var verr *domain.ValidationError
	if errors.As(got, &verr) {
		t.Errorf("got *ValidationError %v, want a plain ErrValidation", verr.Fields)
	}
	if !errors.Is(got, domain.ErrValidation) {
		t.Errorf("error is not ErrValidation: %v", got)
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	got := TranslateHTTPError(problemResponse(http.StatusTeapot, ""))

	for _, sentinel := range []error{
		domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict,
		domain.ErrForbidden, domain.ErrUnavailable,
	} {
		if errors.Is(got, sentinel) {
			t.Errorf("error %v matches %v, want no domain error", got, sentinel)
		}
	}
	if !strings.Contains(got.Error(), "418") {
		t.Errorf("error = %q, want status code 418 in message", got.Error())
	}
}

func TestTranslateHTTPError_NilBody(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusGone,
		Header:     http.Header{"Content-Type": []string{"application/problem+json"}},
	}

	if got := TranslateHTTPError(resp); !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("error is not ErrNotFound: %v", got)
	}
}
