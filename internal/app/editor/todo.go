package editor

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-draft-service/internal/domain/draft"
	"github.com/jsamuelsen11/go-draft-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-draft-service/internal/ports"
	"github.com/jsamuelsen11/go-draft-service/internal/viewmodel"
)

// Todo property names. They equal the domain field names so rule failures
// land on the property that caused them.
const (
	PropTitle           viewmodel.PropertyName = todo.FieldTitle
	PropDescription     viewmodel.PropertyName = todo.FieldDescription
	PropStatus          viewmodel.PropertyName = todo.FieldStatus
	PropCategory        viewmodel.PropertyName = todo.FieldCategory
	PropProgressPercent viewmodel.PropertyName = todo.FieldProgressPercent
	PropProjectID       viewmodel.PropertyName = todo.FieldProjectID
)

// Compile-time interface check.
var _ Editor = (*TodoEditor)(nil)

// TodoEditor is the editable view model of a todo.
type TodoEditor struct {
	*viewmodel.Entity

	store ports.TodoStore

	id          int64
	title       string
	description string
	status      todo.Status
	category    todo.Category
	progress    int
	projectID   *int64
}

// NewTodoEditor returns an editor over t, or over a blank pending todo when
// t is nil. The editor starts committed with no errors.
func NewTodoEditor(store ports.TodoStore, t *todo.Todo, logger *slog.Logger) *TodoEditor {
	ed := &TodoEditor{
		store:    store,
		status:   todo.StatusPending,
		category: todo.CategoryOther,
	}
	ed.Entity = viewmodel.New(
		viewmodel.WithValidator(ed.validate),
		viewmodel.WithCommitHook(ed.persist),
		viewmodel.WithLogger(logger),
	)
	if t != nil {
		ed.load(t)
	}
	return ed
}

// Kind implements Editor.
func (ed *TodoEditor) Kind() draft.Kind { return draft.KindTodo }

// EntityID implements Editor.
func (ed *TodoEditor) EntityID() int64 { return ed.id }

// Title returns the current title.
func (ed *TodoEditor) Title() string { return ed.title }

// Description returns the current description.
func (ed *TodoEditor) Description() string { return ed.description }

// Status returns the current status.
func (ed *TodoEditor) Status() todo.Status { return ed.status }

// Category returns the current category.
func (ed *TodoEditor) Category() todo.Category { return ed.category }

// ProgressPercent returns the current progress.
func (ed *TodoEditor) ProgressPercent() int { return ed.progress }

// ProjectID returns the owning project, if any.
func (ed *TodoEditor) ProjectID() (int64, bool) { return derefID(ed.projectID) }

func derefID(id *int64) (int64, bool) {
	if id == nil {
		return 0, false
	}
	return *id, true
}

// SetTitle assigns the title and revalidates it.
func (ed *TodoEditor) SetTitle(v string) {
	if viewmodel.SetProperty(ed.Entity, &ed.title, v, PropTitle) {
		setViolations(ed.Entity, PropTitle, todo.TitleViolations(v))
	}
}

// SetDescription assigns the description and revalidates it.
func (ed *TodoEditor) SetDescription(v string) {
	if viewmodel.SetProperty(ed.Entity, &ed.description, v, PropDescription) {
		setViolations(ed.Entity, PropDescription, todo.DescriptionViolations(v))
	}
}

// SetStatus assigns the status. Progress is revalidated too because a done
// todo must be complete.
func (ed *TodoEditor) SetStatus(v todo.Status) {
	if viewmodel.SetProperty(ed.Entity, &ed.status, v, PropStatus) {
		setViolations(ed.Entity, PropStatus, todo.StatusViolations(v))
		setViolations(ed.Entity, PropProgressPercent, todo.ProgressViolations(ed.progress, v))
	}
}

// SetCategory assigns the category and revalidates it.
func (ed *TodoEditor) SetCategory(v todo.Category) {
	if viewmodel.SetProperty(ed.Entity, &ed.category, v, PropCategory) {
		setViolations(ed.Entity, PropCategory, todo.CategoryViolations(v))
	}
}

// SetProgressPercent assigns the progress and revalidates it.
func (ed *TodoEditor) SetProgressPercent(v int) {
	if viewmodel.SetProperty(ed.Entity, &ed.progress, v, PropProgressPercent) {
		setViolations(ed.Entity, PropProgressPercent, todo.ProgressViolations(v, ed.status))
	}
}

// SetProjectID assigns the owning project; nil leaves the todo ungrouped.
func (ed *TodoEditor) SetProjectID(v *int64) {
	cur, curOK := derefID(ed.projectID)
	next, nextOK := derefID(v)
	if cur == next && curOK == nextOK {
		return
	}
	if nextOK {
		ed.projectID = &next
	} else {
		ed.projectID = nil
	}
	ed.RaisePropertyChanged(PropProjectID)
	setViolations(ed.Entity, PropProjectID, todo.ProjectIDViolations(ed.projectID))
}

// Values implements Editor. An ungrouped todo has a nil project_id.
func (ed *TodoEditor) Values() map[string]any {
	var projectID any
	if id, ok := ed.ProjectID(); ok {
		projectID = id
	}
	return map[string]any{
		todo.FieldTitle:           ed.title,
		todo.FieldDescription:     ed.description,
		todo.FieldStatus:          string(ed.status),
		todo.FieldCategory:        string(ed.category),
		todo.FieldProgressPercent: ed.progress,
		todo.FieldProjectID:       projectID,
	}
}

// Apply implements Editor.
func (ed *TodoEditor) Apply(changes map[string]any) error {
	return apply(changes, map[string]converter{
		todo.FieldTitle:       stringSetter(ed.SetTitle),
		todo.FieldDescription: stringSetter(ed.SetDescription),
		todo.FieldStatus:      stringSetter(func(s string) { ed.SetStatus(todo.Status(s)) }),
		todo.FieldCategory:    stringSetter(func(s string) { ed.SetCategory(todo.Category(s)) }),
		todo.FieldProgressPercent: intSetter(func(n int64) {
			ed.SetProgressPercent(int(n))
		}),
		todo.FieldProjectID: optionalIntSetter(ed.SetProjectID),
	})
}

// Commit implements Editor.
func (ed *TodoEditor) Commit(ctx context.Context) (bool, error) {
	return commit(ctx, ed.Entity)
}

// Todo returns the edited values as a domain todo.
func (ed *TodoEditor) Todo() *todo.Todo {
	t := &todo.Todo{
		ID:              ed.id,
		Title:           ed.title,
		Description:     ed.description,
		Status:          ed.status,
		Category:        ed.category,
		ProgressPercent: ed.progress,
	}
	if id, ok := ed.ProjectID(); ok {
		t.ProjectID = &id
	}
	return t
}

func (ed *TodoEditor) validate(_ context.Context) error {
	return recordViolations(ed.Entity, ed.Todo().Violations())
}

func (ed *TodoEditor) persist(ctx context.Context) error {
	var (
		saved *todo.Todo
		err   error
	)
	if ed.id == 0 {
		saved, err = ed.store.CreateTodo(ctx, ed.Todo())
	} else {
		saved, err = ed.store.UpdateTodo(ctx, ed.id, ed.Todo())
	}
	if err != nil {
		return recordStoreError(ed.Entity, err)
	}
	ed.load(saved)
	return nil
}

// load copies t into the editor without raising notifications, so loading
// never marks the editor dirty.
func (ed *TodoEditor) load(t *todo.Todo) {
	ed.id = t.ID
	ed.title = t.Title
	ed.description = t.Description
	ed.status = t.Status
	ed.category = t.Category
	ed.progress = t.ProgressPercent
	ed.projectID = nil
	if t.ProjectID != nil {
		id := *t.ProjectID
		ed.projectID = &id
	}
}
