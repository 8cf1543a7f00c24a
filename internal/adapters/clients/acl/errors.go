// Package acl is the anti-corruption layer in front of the downstream TODO
// API. It implements ports.TodoStore; the acl/todo and acl/project
// subpackages translate payloads and this package maps HTTP failures to
// domain errors.
package acl

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-draft-service/internal/domain"
	"github.com/jsamuelsen11/go-draft-service/internal/domain/todo"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// problemDetail represents an RFC 7807 Problem Details response from the
// downstream API.
type problemDetail struct {
	Title  string        `json:"title"`
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

// errorDetail represents a single field-level error within an RFC 7807 response.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a downstream failure response to a domain error.
// The problem+json detail (or title) becomes the message. A 400 or 422 that
// lists field errors becomes a *domain.ValidationError, which a commit
// reports as rejection reasons instead of failing.
//
// Statuses a draft commit can meet while the entity changes underneath it
// map as follows: 409 and 412 are conflicts, 404 and 410 are not found, 429
// and 5xx mean the store is unavailable.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := cmp.Or(pd.Detail, pd.Title, http.StatusText(resp.StatusCode))

	switch code := resp.StatusCode; {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case code == http.StatusNotFound || code == http.StatusGone:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case code == http.StatusConflict || code == http.StatusPreconditionFailed:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", code, detail)
	}
}

// parseProblemDetail attempts to read and parse an RFC 7807 body from the
// response. Returns an empty problemDetail if parsing fails.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// downstreamFields renames downstream field names that differ from ours.
var downstreamFields = map[string]string{
	"group_id": todo.FieldProjectID,
}

// toValidationError converts RFC 7807 error details to a domain
// ValidationError keyed by our field names. Several details for one field
// keep their order. A detail located at "body" or nowhere describes the whole
// entity and is keyed by the empty string.
func toValidationError(details []errorDetail) *domain.ValidationError {
	v := domain.Violations{}
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		if field == "body" {
			field = ""
		}
		if renamed, ok := downstreamFields[field]; ok {
			field = renamed
		}
		v.Add(field, d.Message)
	}
	return &domain.ValidationError{Fields: v}
}
