package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-draft-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-draft-service/internal/domain/draft"
	"github.com/jsamuelsen11/go-draft-service/internal/platform/logging"
)

const defaultHeartbeat = 15 * time.Second

type eventOptions struct {
	heartbeat time.Duration
}

func defaultEventOptions() eventOptions {
	return eventOptions{heartbeat: defaultHeartbeat}
}

// EventOption configures the draft event stream.
type EventOption func(*eventOptions)

// WithHeartbeat sets how often an idle stream sends a comment line so
// proxies keep the connection open. Zero disables heartbeats.
func WithHeartbeat(d time.Duration) EventOption {
	return func(o *eventOptions) {
		o.heartbeat = d
	}
}

// Events handles GET /api/v1/drafts/{id}/events as a server-sent event
// stream. Each draft event is written with its type as the event name and
// its JSON form as data. The stream ends after a closed event or when the
// client goes away.
func (h *DraftHandler) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	events, stop, err := h.svc.Watch(ctx, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	defer stop()

	logger := logging.FromContext(ctx).With(slog.String("draft_id", id))
	rc := http.NewResponseController(w)

	// The server write timeout would cut the stream; writers that cannot
	// change deadlines are left as they are.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		logger.WarnContext(ctx, "event stream cannot flush", slog.Any("error", err))
		return
	}

	var heartbeat <-chan time.Time
	if h.opts.heartbeat > 0 {
		ticker := time.NewTicker(h.opts.heartbeat)
		defer ticker.Stop()
		heartbeat = ticker.C
	}

	var seq uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat:
			if _, err := io.WriteString(w, ": keep-alive\n\n"); err != nil {
				return
			}
		case ev, ok := <-events:
			if !ok {
				return
			}
			seq++
			if err := writeEvent(w, seq, ev); err != nil {
				logger.DebugContext(ctx, "event stream write failed", slog.Any("error", err))
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

func writeEvent(w io.Writer, seq uint64, ev draft.Event) error {
	data, err := json.Marshal(dto.ToEventResponse(ev))
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}
	_, err = fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", seq, ev.Type, data)
	return err
}
