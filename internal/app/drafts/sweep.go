package drafts

import (
	"context"
	"log/slog"
	"time"
)

func (s *Service) sweepLoop() {
	defer close(s.stopped)

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep(context.Background())
		}
	}
}

// sweep closes drafts that have been idle for longer than the TTL. Drafts
// with an open Watch stream never expire. It returns how many were closed.
func (s *Service) sweep(ctx context.Context) int {
	cutoff := s.now().Add(-s.cfg.IdleTTL)

	s.mu.Lock()
	var expired []*entry
	for id, e := range s.drafts {
		if e.watching.Load() > 0 || !e.idleSince().Before(cutoff) {
			continue
		}
		expired = append(expired, e)
		delete(s.drafts, id)
	}
	s.mu.Unlock()

	for _, e := range expired {
		s.closeEntry(ctx, e)
		s.logger.InfoContext(ctx, "draft expired",
			slog.String("draft_id", e.id),
			slog.Time("idle_since", e.idleSince()),
		)
	}
	return len(expired)
}
