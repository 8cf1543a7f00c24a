package editor

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-draft-service/internal/domain/draft"
	"github.com/jsamuelsen11/go-draft-service/internal/domain/project"
	"github.com/jsamuelsen11/go-draft-service/internal/ports"
	"github.com/jsamuelsen11/go-draft-service/internal/viewmodel"
)

// Project property names.
const (
	PropName               viewmodel.PropertyName = project.FieldName
	PropProjectDescription viewmodel.PropertyName = project.FieldDescription
)

// Compile-time interface check.
var _ Editor = (*ProjectEditor)(nil)

// ProjectEditor is the editable view model of a project.
type ProjectEditor struct {
	*viewmodel.Entity

	store ports.TodoStore

	id          int64
	name        string
	description string
}

// NewProjectEditor returns an editor over p, or over a blank project when p
// is nil.
func NewProjectEditor(store ports.TodoStore, p *project.Project, logger *slog.Logger) *ProjectEditor {
	ed := &ProjectEditor{store: store}
	ed.Entity = viewmodel.New(
		viewmodel.WithValidator(ed.validate),
		viewmodel.WithCommitHook(ed.persist),
		viewmodel.WithLogger(logger),
	)
	if p != nil {
		ed.load(p)
	}
	return ed
}

// Kind implements Editor.
func (ed *ProjectEditor) Kind() draft.Kind { return draft.KindProject }

// EntityID implements Editor.
func (ed *ProjectEditor) EntityID() int64 { return ed.id }

// Name returns the current name.
func (ed *ProjectEditor) Name() string { return ed.name }

// Description returns the current description.
func (ed *ProjectEditor) Description() string { return ed.description }

// SetName assigns the name and revalidates it.
func (ed *ProjectEditor) SetName(v string) {
	if viewmodel.SetProperty(ed.Entity, &ed.name, v, PropName) {
		setViolations(ed.Entity, PropName, project.NameViolations(v))
	}
}

// SetDescription assigns the description and revalidates it.
func (ed *ProjectEditor) SetDescription(v string) {
	if viewmodel.SetProperty(ed.Entity, &ed.description, v, PropProjectDescription) {
		setViolations(ed.Entity, PropProjectDescription, project.DescriptionViolations(v))
	}
}

// Values implements Editor.
func (ed *ProjectEditor) Values() map[string]any {
	return map[string]any{
		project.FieldName:        ed.name,
		project.FieldDescription: ed.description,
	}
}

// Apply implements Editor.
func (ed *ProjectEditor) Apply(changes map[string]any) error {
	return apply(changes, map[string]converter{
		project.FieldName:        stringSetter(ed.SetName),
		project.FieldDescription: stringSetter(ed.SetDescription),
	})
}

// Commit implements Editor.
func (ed *ProjectEditor) Commit(ctx context.Context) (bool, error) {
	return commit(ctx, ed.Entity)
}

// Project returns the edited values as a domain project.
func (ed *ProjectEditor) Project() *project.Project {
	return &project.Project{ID: ed.id, Name: ed.name, Description: ed.description}
}

func (ed *ProjectEditor) validate(_ context.Context) error {
	return recordViolations(ed.Entity, ed.Project().Violations())
}

func (ed *ProjectEditor) persist(ctx context.Context) error {
	var (
		saved *project.Project
		err   error
	)
	if ed.id == 0 {
		saved, err = ed.store.CreateProject(ctx, ed.Project())
	} else {
		saved, err = ed.store.UpdateProject(ctx, ed.id, ed.Project())
	}
	if err != nil {
		return recordStoreError(ed.Entity, err)
	}
	ed.load(saved)
	return nil
}

func (ed *ProjectEditor) load(p *project.Project) {
	ed.id = p.ID
	ed.name = p.Name
	ed.description = p.Description
}
