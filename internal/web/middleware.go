package web

import (
	"context"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/llehouerou/chorus/internal/logging"
)

const sessionCookie = "chorus_session"

type ctxKey struct{}

// requestLogger logs one line per request once it has been served.
func requestLogger() func(http.Handler) http.Handler {
	log := logging.With("web")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			ev := log.Info()
			if status >= http.StatusInternalServerError {
				ev = log.Error()
			}
			ev.Str("request_id", chimiddleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

// withSession attaches the visitor's session, creating one (and its cookie)
// when the request carries none or an expired one.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			e  *entry
			ok bool
		)
		if c, err := r.Cookie(sessionCookie); err == nil {
			e, ok = s.store.Get(c.Value)
		}
		if !ok {
			id, created, err := s.store.Create()
			if err != nil {
				s.log.Error().Err(err).Msg("create session")
				http.Error(w, "session unavailable", http.StatusInternalServerError)
				return
			}
			e = created
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, e)))
	})
}

func sessionFrom(ctx context.Context) *entry {
	e, _ := ctx.Value(ctxKey{}).(*entry)
	return e
}
