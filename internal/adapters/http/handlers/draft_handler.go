package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-draft-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-draft-service/internal/domain/draft"
	"github.com/jsamuelsen11/go-draft-service/internal/ports"
)

// DraftHandler handles the /api/v1/drafts endpoints.
type DraftHandler struct {
	svc  ports.DraftService
	opts eventOptions
}

// NewDraftHandler creates a DraftHandler backed by svc.
func NewDraftHandler(svc ports.DraftService, opts ...EventOption) *DraftHandler {
	h := &DraftHandler{svc: svc, opts: defaultEventOptions()}
	for _, opt := range opts {
		opt(&h.opts)
	}
	return h
}

// OpenTodo handles POST /api/v1/drafts/todos. The body is optional; without
// todo_id the draft edits a new todo.
func (h *DraftHandler) OpenTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenTodoDraftRequest
	if !decodeAndValidate(w, r, &req, true) {
		return
	}

	var (
		snap *draft.Snapshot
		err  error
	)
	if req.TodoID != nil {
		snap, err = h.svc.OpenTodo(r.Context(), *req.TodoID)
	} else {
		snap, err = h.svc.NewTodo(r.Context())
	}
	h.writeCreated(w, r, snap, err)
}

// OpenProject handles POST /api/v1/drafts/projects. The body is optional;
// without project_id the draft edits a new project.
func (h *DraftHandler) OpenProject(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenProjectDraftRequest
	if !decodeAndValidate(w, r, &req, true) {
		return
	}

	var (
		snap *draft.Snapshot
		err  error
	)
	if req.ProjectID != nil {
		snap, err = h.svc.OpenProject(r.Context(), *req.ProjectID)
	} else {
		snap, err = h.svc.NewProject(r.Context())
	}
	h.writeCreated(w, r, snap, err)
}

func (h *DraftHandler) writeCreated(w http.ResponseWriter, r *http.Request, snap *draft.Snapshot, err error) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/drafts/"+snap.ID)
	writeJSON(w, http.StatusCreated, dto.ToDraftResponse(snap))
}

// GetDraft handles GET /api/v1/drafts/{id}.
func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToDraftResponse(snap))
}

// UpdateDraft handles PATCH /api/v1/drafts/{id}. Values that break a rule
// are accepted and show up in the returned errors; unknown properties and
// wrongly typed values reject the whole request.
func (h *DraftHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDraftRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	snap, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req.Changes)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToDraftResponse(snap))
}

// GetErrors handles GET /api/v1/drafts/{id}/errors?property=name. Without
// property it returns the errors about the draft as a whole.
func (h *DraftHandler) GetErrors(w http.ResponseWriter, r *http.Request) {
	property := r.URL.Query().Get("property")

	msgs, err := h.svc.Errors(r.Context(), chi.URLParam(r, "id"), property)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if property == "" {
		property = draft.EntityKey
	}
	writeJSON(w, http.StatusOK, dto.NewPropertyErrorsResponse(property, msgs))
}

// CommitDraft handles POST /api/v1/drafts/{id}/commit. A commit the rules
// reject answers 422 with the draft and its errors.
func (h *DraftHandler) CommitDraft(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Commit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status := http.StatusOK
	if !res.Committed {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, dto.ToCommitResponse(res))
}

// DiscardDraft handles DELETE /api/v1/drafts/{id}.
func (h *DraftHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Discard(r.Context(), chi.URLParam(r, "id")); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
