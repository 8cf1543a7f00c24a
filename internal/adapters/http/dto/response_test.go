package dto_test

import (
	"encoding/json"
	"slices"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-draft-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-draft-service/internal/domain/draft"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func todoSnapshot() *draft.Snapshot {
	return &draft.Snapshot{
		ID:       "3f1c9a52-6d0e-4a7b-9a43-2b8f0c1d5e77",
		EntityID: 12,
		Kind:     draft.KindTodo,
		Values: map[string]any{
			"title":  "",
			"status": "done",
		},
		HasErrors: true,
		Errors: map[string][]string{
			"title":         {"is required"},
			draft.EntityKey: {"todo limit reached"},
		},
		Changed:   []string{"title", "status"},
		UpdatedAt: testTime,
	}
}

func TestToDraftResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		snap   *draft.Snapshot
		verify func(t *testing.T, got dto.DraftResponse)
	}{
		{
			name: "maps all fields",
			snap: todoSnapshot(),
			verify: func(t *testing.T, got dto.DraftResponse) {
				t.Helper()
				if got.ID != "3f1c9a52-6d0e-4a7b-9a43-2b8f0c1d5e77" || got.Kind != "todo" {
					t.Errorf("ID, Kind = %q, %q", got.ID, got.Kind)
				}
				if got.EntityID == nil || *got.EntityID != 12 {
					t.Errorf("EntityID = %v, want 12", got.EntityID)
				}
				if got.Committed || got.CanCommit || !got.HasErrors {
					t.Errorf("Committed, CanCommit, HasErrors = %v, %v, %v", got.Committed, got.CanCommit, got.HasErrors)
				}
				if !slices.Equal(got.Errors[draft.EntityKey], []string{"todo limit reached"}) {
					t.Errorf("Errors = %v", got.Errors)
				}
				if !slices.Equal(got.Changed, []string{"title", "status"}) {
					t.Errorf("Changed = %v", got.Changed)
				}
				if got.UpdatedAt != "2026-02-12T15:04:05Z" {
					t.Errorf("UpdatedAt = %q", got.UpdatedAt)
				}
			},
		},
		{
			name: "new clean draft",
			snap: &draft.Snapshot{ID: "d", Kind: draft.KindProject, Committed: true, UpdatedAt: testTime},
			verify: func(t *testing.T, got dto.DraftResponse) {
				t.Helper()
				if got.EntityID != nil {
					t.Errorf("EntityID = %d, want nil", *got.EntityID)
				}
				if got.Errors == nil || len(got.Errors) != 0 {
					t.Errorf("Errors = %v, want empty map", got.Errors)
				}
				if got.Changed == nil || len(got.Changed) != 0 {
					t.Errorf("Changed = %v, want empty slice", got.Changed)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.verify(t, dto.ToDraftResponse(tt.snap))
		})
	}
}

func TestDraftResponse_JSONShape(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dto.ToDraftResponse(&draft.Snapshot{ID: "d", Kind: draft.KindTodo, UpdatedAt: testTime}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"id", "kind", "entity_id", "values", "committed", "can_commit", "has_errors", "errors", "changed", "updated_at"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("JSON missing key %q: %s", key, b)
		}
	}
	if raw["entity_id"] != nil {
		t.Errorf("entity_id = %v, want null", raw["entity_id"])
	}
}

func TestToCommitResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToCommitResponse(&draft.CommitResult{Committed: false, Snapshot: todoSnapshot()})
	if got.Committed {
		t.Error("Committed = true, want false")
	}
	if got.Draft.ID != todoSnapshot().ID {
		t.Errorf("Draft.ID = %q", got.Draft.ID)
	}
}

func TestNewPropertyErrorsResponse(t *testing.T) {
	t.Parallel()

	got := dto.NewPropertyErrorsResponse("title", nil)
	if got.Errors == nil || len(got.Errors) != 0 {
		t.Errorf("Errors = %v, want empty slice", got.Errors)
	}

	got = dto.NewPropertyErrorsResponse("name", []string{"a", "b"})
	if !slices.Equal(got.Errors, []string{"a", "b"}) {
		t.Errorf("Errors = %v, want [a b]", got.Errors)
	}
}

func TestToEventResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		ev            draft.Event
		wantCanCommit *bool
	}{
		{
			name: "property event has no can_commit",
			ev:   draft.Event{Type: draft.EventPropertyChanged, DraftID: "d", Property: "title", At: testTime},
		},
		{
			name:          "can_commit_changed carries false",
			ev:            draft.Event{Type: draft.EventCanCommitChanged, DraftID: "d", CanCommit: false, At: testTime},
			wantCanCommit: new(bool),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dto.ToEventResponse(tt.ev)
			if got.Type != string(tt.ev.Type) || got.Property != tt.ev.Property {
				t.Errorf("got %+v", got)
			}
			switch {
			case tt.wantCanCommit == nil && got.CanCommit != nil:
				t.Errorf("CanCommit = %v, want nil", *got.CanCommit)
			case tt.wantCanCommit != nil && (got.CanCommit == nil || *got.CanCommit != *tt.wantCanCommit):
				t.Errorf("CanCommit = %v, want %v", got.CanCommit, *tt.wantCanCommit)
			}
		})
	}
}
