package viewmodel_test

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-draft-service/internal/viewmodel"
)

const propTitle viewmodel.PropertyName = "Title"

// noteEditor is a minimal view model built the way domain editors are.
type noteEditor struct {
	*viewmodel.Entity
	title string
	saved []string
}

func newNoteEditor(logger *slog.Logger) *noteEditor {
	n := &noteEditor{}
	n.Entity = viewmodel.New(
		viewmodel.WithValidator(n.validateAll),
		viewmodel.WithCommitHook(n.save),
		viewmodel.WithLogger(logger),
	)
	return n
}

func (n *noteEditor) SetTitle(v string) {
	if viewmodel.SetProperty(n.Entity, &n.title, v, propTitle) {
		n.validateTitle()
	}
}

func (n *noteEditor) validateTitle() {
	if len(n.title) < 3 {
		_ = n.SetError(propTitle, "must be at least 3 characters")
		return
	}
	n.ClearErrors(propTitle)
}

func (n *noteEditor) validateAll(context.Context) error {
	n.validateTitle()
	return nil
}

func (n *noteEditor) save(context.Context) error {
	n.saved = append(n.saved, n.title)
	return nil
}

func TestSetProperty_RaisesOnlyOnChange(t *testing.T) {
	t.Parallel()

	n := newNoteEditor(nil)
	rec := &recorder{}
	n.SubscribePropertyChanged(rec.listen("p"))

	n.SetTitle("hello")
	n.SetTitle("hello")

	want := []string{"p:Committed", "p:Title"}
	if !slices.Equal(rec.got, want) {
		t.Errorf("notifications = %v, want %v", rec.got, want)
	}
}

func TestEntity_EditValidateCommit(t *testing.T) {
	t.Parallel()

	n := newNoteEditor(nil)
	ctx := context.Background()

	n.SetTitle("hi")
	if n.CanCommit() {
		t.Fatal("CanCommit() = true with a short title, want false")
	}
	if ok, err := n.Commit(ctx); ok || err != nil {
		t.Fatalf("Commit() = %v, %v; want false, nil", ok, err)
	}

	n.SetTitle("hello")
	if !n.CanCommit() {
		t.Fatal("CanCommit() = false with a valid title, want true")
	}
	if ok, err := n.Commit(ctx); !ok || err != nil {
		t.Fatalf("Commit() = %v, %v; want true, nil", ok, err)
	}

	if want := []string{"hello"}; !slices.Equal(n.saved, want) {
		t.Errorf("saved = %v, want %v", n.saved, want)
	}
}

func TestEntity_CommitWhileClean(t *testing.T) {
	t.Parallel()

	n := newNoteEditor(nil)
	n.title = "already valid"

	ok, err := n.Commit(context.Background())
	if err != nil || !ok {
		t.Fatalf("Commit() = %v, %v; want true, nil", ok, err)
	}
	if !n.Committed() {
		t.Error("Committed() = false, want true")
	}
}

func TestEntity_LogsRejectedCommit(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n := newNoteEditor(logger)

	n.SetTitle("x")
	if _, err := n.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"msg":"commit rejected"`) {
		t.Errorf("output = %q, want commit rejected entry", out)
	}
	if !strings.Contains(out, `"error_count":1`) {
		t.Errorf("output = %q, want error_count 1", out)
	}
}

func TestEntity_AllErrorsIsCopy(t *testing.T) {
	t.Parallel()

	n := newNoteEditor(nil)
	n.SetTitle("x")

	all := n.AllErrors()
	all[propTitle][0] = "mutated"
	delete(all, propTitle)

	if got := n.Errors(propTitle); len(got) != 1 || got[0] == "mutated" {
		t.Errorf("Errors(Title) = %v, want original message", got)
	}
	if n.ErrorCount() != 1 {
		t.Errorf("ErrorCount() = %d, want 1", n.ErrorCount())
	}
}
