// Package drafts implements ports.DraftService: an in-memory registry of
// editors that callers open, edit, watch and commit by draft ID.
package drafts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-draft-service/internal/app/editor"
	"github.com/jsamuelsen11/go-draft-service/internal/domain"
	"github.com/jsamuelsen11/go-draft-service/internal/domain/draft"
	"github.com/jsamuelsen11/go-draft-service/internal/platform/config"
	"github.com/jsamuelsen11/go-draft-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-draft-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-draft-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-draft-service/internal/ports"
)

// Commit results recorded on the commits counter.
const (
	resultCommitted = "committed"
	resultRejected  = "rejected"
	resultFailed    = "failed"
	resultUnchanged = "unchanged"
)

// Compile-time interface checks.
var (
	_ ports.DraftService  = (*Service)(nil)
	_ ports.HealthChecker = (*Service)(nil)
)

// errShutDown is returned once Shutdown has run.
var errShutDown = errors.New("draft service shut down")

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service holds open drafts. Each draft is used by one caller at a time;
// calls for different drafts run in parallel. Drafts idle for longer than
// the configured TTL are dropped by a background sweep unless someone is
// watching them.
type Service struct {
	store   ports.TodoStore
	cfg     config.DraftsConfig
	metrics *telemetry.Metrics // nil when telemetry is disabled
	logger  *slog.Logger
	now     func() time.Time

	mu     sync.Mutex
	drafts map[string]*entry
	down   bool

	stop     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

// New creates a Service and starts its expiry sweep. Call Shutdown to stop
// the sweep and close every draft.
func New(store ports.TodoStore, cfg config.DraftsConfig, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:   store,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
		drafts:  make(map[string]*entry),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.sweepLoop()
	return s
}

// OpenTodo implements ports.DraftService.
func (s *Service) OpenTodo(ctx context.Context, id int64) (*draft.Snapshot, error) {
	t, err := s.store.GetTodo(ctx, id)
	if err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "failed to load todo",
			slog.String("operation", "OpenTodo"),
			slog.Int64("todo_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return s.open(ctx, editor.NewTodoEditor(s.store, t, s.logger))
}

// NewTodo implements ports.DraftService.
func (s *Service) NewTodo(ctx context.Context) (*draft.Snapshot, error) {
	return s.open(ctx, editor.NewTodoEditor(s.store, nil, s.logger))
}

// OpenProject implements ports.DraftService.
func (s *Service) OpenProject(ctx context.Context, id int64) (*draft.Snapshot, error) {
	p, err := s.store.GetProject(ctx, id)
	if err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "failed to load project",
			slog.String("operation", "OpenProject"),
			slog.Int64("project_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return s.open(ctx, editor.NewProjectEditor(s.store, p, s.logger))
}

// NewProject implements ports.DraftService.
func (s *Service) NewProject(ctx context.Context) (*draft.Snapshot, error) {
	return s.open(ctx, editor.NewProjectEditor(s.store, nil, s.logger))
}

func (s *Service) open(ctx context.Context, ed editor.Editor) (*draft.Snapshot, error) {
	e := newEntry(uuid.NewString(), ed, s.now)

	s.mu.Lock()
	switch {
	case s.down:
		s.mu.Unlock()
		return nil, errShutDown
	case len(s.drafts) >= s.cfg.MaxOpen:
		s.mu.Unlock()
		logging.FromContext(ctx).WarnContext(ctx, "draft limit reached",
			slog.String("operation", "open"),
			slog.Int("max_open", s.cfg.MaxOpen),
		)
		return nil, fmt.Errorf("%d drafts already open: %w", s.cfg.MaxOpen, domain.ErrConflict)
	}
	s.drafts[e.id] = e
	s.mu.Unlock()

	kind := metric.WithAttributes(telemetry.AttrDraftKind.String(string(ed.Kind())))
	if s.metrics != nil {
		s.metrics.DraftsOpened.Add(ctx, 1, kind)
		s.metrics.DraftsActive.Add(ctx, 1, kind)
	}

	logging.FromContext(ctx).InfoContext(ctx, "draft opened",
		slog.String("draft_id", e.id),
		slog.String("kind", string(ed.Kind())),
		slog.Int64("entity_id", ed.EntityID()),
	)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot(), nil
}

// acquire returns the draft id with its lock held.
func (s *Service) acquire(id string) (*entry, error) {
	s.mu.Lock()
	e, ok := s.drafts[id]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}
	e.touch()
	return e, nil
}

// Get implements ports.DraftService.
func (s *Service) Get(_ context.Context, id string) (*draft.Snapshot, error) {
	e, err := s.acquire(id)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()
	return e.snapshot(), nil
}

// Update implements ports.DraftService.
func (s *Service) Update(ctx context.Context, id string, changes map[string]any) (*draft.Snapshot, error) {
	e, err := s.acquire(id)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()

	if err := e.ed.Apply(changes); err != nil {
		logging.FromContext(ctx).DebugContext(ctx, "update rejected",
			slog.String("operation", "Update"),
			slog.String("draft_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	e.updatedAt = s.now()
	logging.FromContext(ctx).DebugContext(ctx, "draft updated",
		slog.String("draft_id", id),
		slog.Any("properties", slices.Sorted(maps.Keys(changes))),
	)
	return e.snapshot(), nil
}

// Errors implements ports.DraftService. Asking about a property the draft
// does not have is a validation error.
func (s *Service) Errors(_ context.Context, id, property string) ([]string, error) {
	e, err := s.acquire(id)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()

	name := propertyName(property)
	if name != "" {
		if _, ok := e.ed.Values()[property]; !ok {
			return nil, domain.NewFieldError(property, editor.MsgUnknownProperty)
		}
	}
	return e.ed.Errors(name), nil
}

// Commit implements ports.DraftService. The lock is held across the store
// call, so edits to the same draft wait for the commit to finish. A stored
// draft with no edits since its last commit is reported committed without
// calling the store.
func (s *Service) Commit(ctx context.Context, id string) (*draft.CommitResult, error) {
	e, err := s.acquire(id)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()

	ctx = httpclient.WithDraftID(ctx, id)
	ctx = logging.With(ctx, slog.String("draft_id", id))
	logger := logging.FromContext(ctx)
	kind := telemetry.AttrDraftKind.String(string(e.ed.Kind()))

	if e.ed.Committed() && e.ed.EntityID() != 0 {
		s.recordCommit(ctx, kind, resultUnchanged)
		logger.DebugContext(ctx, "nothing to commit",
			slog.Int64("entity_id", e.ed.EntityID()),
		)
		return &draft.CommitResult{Committed: true, Snapshot: e.snapshot()}, nil
	}

	ok, err := e.ed.Commit(ctx)
	if err != nil {
		s.recordCommit(ctx, kind, resultFailed)
		logger.ErrorContext(ctx, "commit failed",
			slog.String("operation", "Commit"),
			slog.Int64("entity_id", e.ed.EntityID()),
			slog.Any("error", err),
		)
		return nil, err
	}

	e.updatedAt = s.now()
	if !ok {
		s.recordCommit(ctx, kind, resultRejected)
		if s.metrics != nil {
			s.metrics.DraftValidationErrors.Record(ctx, int64(e.ed.ErrorCount()), metric.WithAttributes(kind))
		}
		logger.InfoContext(ctx, "commit rejected",
			slog.Int("error_count", e.ed.ErrorCount()),
		)
		return &draft.CommitResult{Committed: false, Snapshot: e.snapshot()}, nil
	}

	s.recordCommit(ctx, kind, resultCommitted)
	logger.InfoContext(ctx, "draft committed",
		slog.Int64("entity_id", e.ed.EntityID()),
	)
	return &draft.CommitResult{Committed: true, Snapshot: e.snapshot()}, nil
}

func (s *Service) recordCommit(ctx context.Context, kind attribute.KeyValue, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.DraftCommits.Add(ctx, 1, metric.WithAttributes(kind, telemetry.AttrResult.String(result)))
}

// Discard implements ports.DraftService.
func (s *Service) Discard(ctx context.Context, id string) error {
	s.mu.Lock()
	e, ok := s.drafts[id]
	delete(s.drafts, id)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}

	s.closeEntry(ctx, e)
	logging.FromContext(ctx).InfoContext(ctx, "draft discarded", slog.String("draft_id", id))
	return nil
}

// closeEntry ends a draft that is no longer in the registry.
func (s *Service) closeEntry(ctx context.Context, e *entry) {
	e.mu.Lock()
	kind := e.ed.Kind()
	e.close()
	e.mu.Unlock()

	if s.metrics != nil {
		s.metrics.DraftsActive.Add(ctx, -1, metric.WithAttributes(telemetry.AttrDraftKind.String(string(kind))))
	}
}

// Watch implements ports.DraftService. Events are buffered per stream; a
// stream that falls behind by more than the buffer misses events and should
// re-read the draft. The channel is closed after EventClosed, when stop is
// called, or when ctx is done.
func (s *Service) Watch(ctx context.Context, id string) (<-chan draft.Event, func(), error) {
	e, err := s.acquire(id)
	if err != nil {
		return nil, nil, err
	}
	wid, w := e.addWatcher(s.cfg.EventBuffer)
	e.mu.Unlock()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			e.mu.Lock()
			e.removeWatcher(wid)
			e.touch()
			e.mu.Unlock()
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			stop()
		case <-w.done:
		}
	}()

	return w.ch, stop, nil
}

// Len returns the number of open drafts.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

// Name implements ports.HealthChecker.
func (s *Service) Name() string {
	return "draft-store"
}

// HealthCheck implements ports.HealthChecker. The store is unhealthy when
// it is shut down or cannot accept another draft.
func (s *Service) HealthCheck(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.down {
		return errShutDown
	}
	if len(s.drafts) >= s.cfg.MaxOpen {
		return fmt.Errorf("draft store full: %d of %d drafts open", len(s.drafts), s.cfg.MaxOpen)
	}
	return nil
}

// Shutdown stops the expiry sweep and closes every open draft. Later opens
// fail. It is safe to call more than once.
func (s *Service) Shutdown() error {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.stopped

	s.mu.Lock()
	s.down = true
	open := make([]*entry, 0, len(s.drafts))
	for _, e := range s.drafts {
		open = append(open, e)
	}
	clear(s.drafts)
	s.mu.Unlock()

	for _, e := range open {
		s.closeEntry(context.Background(), e)
	}

	s.logger.Info("draft service stopped", slog.Int("closed", len(open)))
	return nil
}
