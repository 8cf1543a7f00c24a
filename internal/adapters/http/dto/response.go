// Package dto provides the JSON bodies of the draft API and RFC 9457 Problem
// Details error responses.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-draft-service/internal/domain/draft"
)

// DraftResponse is the JSON form of a draft snapshot.
type DraftResponse struct {
	ID        string              `json:"id"`
	Kind      string              `json:"kind"`
	EntityID  *int64              `json:"entity_id"`
	Values    map[string]any      `json:"values"`
	Committed bool                `json:"committed"`
	CanCommit bool                `json:"can_commit"`
	HasErrors bool                `json:"has_errors"`
	Errors    map[string][]string `json:"errors"`
	Changed   []string            `json:"changed"`
	UpdatedAt string              `json:"updated_at"`
}

// ToDraftResponse converts a snapshot. A draft of an entity that has not
// been created yet has a null entity_id.
func ToDraftResponse(s *draft.Snapshot) DraftResponse {
	resp := DraftResponse{
		ID:        s.ID,
		Kind:      string(s.Kind),
		Values:    s.Values,
		Committed: s.Committed,
		CanCommit: s.CanCommit,
		HasErrors: s.HasErrors,
		Errors:    s.Errors,
		Changed:   s.Changed,
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.EntityID != 0 {
		id := s.EntityID
		resp.EntityID = &id
	}
	if resp.Errors == nil {
		resp.Errors = map[string][]string{}
	}
	if resp.Changed == nil {
		resp.Changed = []string{}
	}
	return resp
}

// CommitResponse is the JSON body of POST /api/v1/drafts/{id}/commit.
type CommitResponse struct {
	Committed bool          `json:"committed"`
	Draft     DraftResponse `json:"draft"`
}

// ToCommitResponse converts a commit result.
func ToCommitResponse(r *draft.CommitResult) CommitResponse {
	return CommitResponse{
		Committed: r.Committed,
		Draft:     ToDraftResponse(r.Snapshot),
	}
}

// PropertyErrorsResponse is the JSON body of GET /api/v1/drafts/{id}/errors.
type PropertyErrorsResponse struct {
	Property string   `json:"property"`
	Errors   []string `json:"errors"`
}

// NewPropertyErrorsResponse builds the response for property. A nil message
// list becomes an empty array.
func NewPropertyErrorsResponse(property string, msgs []string) PropertyErrorsResponse {
	if msgs == nil {
		msgs = []string{}
	}
	return PropertyErrorsResponse{Property: property, Errors: msgs}
}

// EventResponse is the data of one server-sent draft event.
type EventResponse struct {
	Type      string `json:"type"`
	DraftID   string `json:"draft_id"`
	Property  string `json:"property,omitempty"`
	CanCommit *bool  `json:"can_commit,omitempty"`
	At        string `json:"at"`
}

// ToEventResponse converts an event. can_commit is present only on
// can_commit_changed events.
func ToEventResponse(ev draft.Event) EventResponse {
	resp := EventResponse{
		Type:     string(ev.Type),
		DraftID:  ev.DraftID,
		Property: ev.Property,
		At:       ev.At.UTC().Format(time.RFC3339Nano),
	}
	if ev.Type == draft.EventCanCommitChanged {
		can := ev.CanCommit
		resp.CanCommit = &can
	}
	return resp
}
