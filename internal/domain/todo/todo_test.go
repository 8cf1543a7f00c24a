package todo

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-draft-service/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

// requireValidationField asserts err wraps domain.ErrValidation and carries
// at least one message for field.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Validate() = %v, want ErrValidation", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if len(verr.Fields[field]) == 0 {
		t.Errorf("ValidationError.Fields[%q] empty, got %v", field, verr.Fields)
	}
}

func TestEnums_IsValid(t *testing.T) {
	t.Parallel()

	statuses := map[Status]bool{
		StatusPending: true, StatusInProgress: true, StatusDone: true,
		"": false, "completed": false, "Pending": false,
	}
	for s, want := range statuses {
		if got := s.IsValid(); got != want {
			t.Errorf("Status(%q).IsValid() = %v, want %v", s, got, want)
		}
	}

	categories := map[Category]bool{
		CategoryPersonal: true, CategoryWork: true, CategoryOther: true,
		"": false, "hobby": false, "Personal": false,
	}
	for c, want := range categories {
		if got := c.IsValid(); got != want {
			t.Errorf("Category(%q).IsValid() = %v, want %v", c, got, want)
		}
	}
}

func TestEnumViolations_ListAllowedValues(t *testing.T) {
	t.Parallel()

	if got := StatusViolations("completed"); !slices.Equal(got, []string{"must be one of: pending, in_progress, done"}) {
		t.Errorf("StatusViolations() = %v", got)
	}
	if got := CategoryViolations(""); !slices.Equal(got, []string{"must be one of: personal, work, other"}) {
		t.Errorf("CategoryViolations() = %v", got)
	}
	if got := StatusViolations(StatusDone); got != nil {
		t.Errorf("StatusViolations(done) = %v, want nil", got)
	}
}

func TestStatuses_ReturnsCopy(t *testing.T) {
	t.Parallel()

	s := Statuses()
	s[0] = "tampered"
	if Statuses()[0] != StatusPending {
		t.Error("Statuses() exposed the package slice")
	}
	if len(Categories()) != 3 {
		t.Errorf("len(Categories()) = %d, want 3", len(Categories()))
	}
}

func validTodo() Todo {
	return Todo{
		ID:              1,
		Title:           "Buy groceries",
		Description:     "Milk, eggs, bread",
		Status:          StatusPending,
		Category:        CategoryPersonal,
		ProgressPercent: 0,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

func TestTodo_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Todo)
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid todo passes",
			modify:  func(_ *Todo) {},
			wantErr: false,
		},
		{
			name:      "empty title fails",
			modify:    func(td *Todo) { td.Title = "" },
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "whitespace-only title fails",
			modify:    func(td *Todo) { td.Title = "   " },
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "empty description fails",
			modify:    func(td *Todo) { td.Description = "" },
			wantErr:   true,
			wantField: "description",
		},
		{
			name:      "whitespace-only description fails",
			modify:    func(td *Todo) { td.Description = "\t\n" },
			wantErr:   true,
			wantField: "description",
		},
		{
			name:      "invalid status fails",
			modify:    func(td *Todo) { td.Status = "completed" },
			wantErr:   true,
			wantField: "status",
		},
		{
			name:      "empty status fails",
			modify:    func(td *Todo) { td.Status = "" },
			wantErr:   true,
			wantField: "status",
		},
		{
			name:      "invalid category fails",
			modify:    func(td *Todo) { td.Category = "urgent" },
			wantErr:   true,
			wantField: "category",
		},
		{
			name:      "negative progress fails",
			modify:    func(td *Todo) { td.ProgressPercent = -1 },
			wantErr:   true,
			wantField: "progress_percent",
		},
		{
			name:      "progress over 100 fails",
			modify:    func(td *Todo) { td.ProgressPercent = 101 },
			wantErr:   true,
			wantField: "progress_percent",
		},
		{
			name:    "progress at boundary 0 passes",
			modify:  func(td *Todo) { td.ProgressPercent = 0 },
			wantErr: false,
		},
		{
			name: "progress at boundary 100 passes",
			modify: func(td *Todo) {
				td.ProgressPercent = 100
				td.Status = StatusDone
			},
			wantErr: false,
		},
		{
			name: "done with partial progress fails",
			modify: func(td *Todo) {
				td.Status = StatusDone
				td.ProgressPercent = 80
			},
			wantErr:   true,
			wantField: "progress_percent",
		},
		{
			name:    "all valid statuses accepted",
			modify:  func(td *Todo) { td.Status = StatusInProgress },
			wantErr: false,
		},
		{
			name:    "all valid categories accepted",
			modify:  func(td *Todo) { td.Category = CategoryWork },
			wantErr: false,
		},
		{
			name:    "nil project ID passes (ungrouped)",
			modify:  func(td *Todo) { td.ProjectID = nil },
			wantErr: false,
		},
		{
			name:    "positive project ID passes",
			modify:  func(td *Todo) { td.ProjectID = int64Ptr(1) },
			wantErr: false,
		},
		{
			name:      "zero project ID fails",
			modify:    func(td *Todo) { td.ProjectID = int64Ptr(0) },
			wantErr:   true,
			wantField: "project_id",
		},
		{
			name:      "negative project ID fails",
			modify:    func(td *Todo) { td.ProjectID = int64Ptr(-5) },
			wantErr:   true,
			wantField: "project_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			td := validTodo()
			tt.modify(&td)
			err := td.Validate()

			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestTodo_Validate_MultipleErrors(t *testing.T) {
	t.Parallel()

	td := Todo{
		Title:           "",
		Description:     "",
		Status:          "bad",
		Category:        "bad",
		ProgressPercent: 200,
		ProjectID:       int64Ptr(0),
	}

	err := td.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error with multiple failures")
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}

	expectedFields := []string{"title", "description", "status", "category", "progress_percent", "project_id"}
	for _, field := range expectedFields {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
		}
	}

	if len(verr.Fields) != len(expectedFields) {
		t.Errorf("ValidationError.Fields has %d entries, want %d", len(verr.Fields), len(expectedFields))
	}
}

func TestProgressViolations_Order(t *testing.T) {
	t.Parallel()

	got := ProgressViolations(150, StatusDone)
	want := []string{"must be 0-100, got 150", "must be 100 when status is done"}
	if !slices.Equal(got, want) {
		t.Errorf("ProgressViolations(150, done) = %v, want %v", got, want)
	}

	if got := ProgressViolations(100, StatusDone); got != nil {
		t.Errorf("ProgressViolations(100, done) = %v, want nil", got)
	}
}

func TestTitleViolations_Length(t *testing.T) {
	t.Parallel()

	if got := TitleViolations(strings.Repeat("é", MaxTitleLength)); got != nil {
		t.Errorf("TitleViolations(max runes) = %v, want nil", got)
	}
	if got := TitleViolations(strings.Repeat("a", MaxTitleLength+1)); len(got) != 1 {
		t.Errorf("TitleViolations(max+1) = %v, want one message", got)
	}
}
