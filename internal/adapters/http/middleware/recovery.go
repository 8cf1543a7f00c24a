package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-draft-service/internal/adapters/http/dto"
)

// errInternalServer is the generic error returned to clients when a panic is
// recovered. The panic value and stack trace are logged, never sent.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that recovers from panics in downstream handlers
// and answers with an RFC 9457 500.
//
// A panic after the response has started (an event stream, or a body half
// written) cannot be answered any more. It is logged and re-raised as
// [http.ErrAbortHandler] so the server drops the connection and the client
// sees a broken stream rather than a truncated one that looks complete.
// ErrAbortHandler raised by a handler passes through untouched.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				attrs := []any{
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}
				if route, draftID := routeInfo(r); draftID != "" {
					attrs = append(attrs, slog.String("route", route), slog.String("draft_id", draftID))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				if rw.headerWritten {
					panic(http.ErrAbortHandler)
				}
				dto.WriteErrorResponse(rw, r, errInternalServer)
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
