package mw

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
)

// Recover превращает панику обработчика в 500 с плоским конвертом.
func Recover(l *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				l.Printf("lvl=error req_id=%s msg=\"panic\" err=%q\n%s",
					RequestIDFromCtx(r.Context()), rec, debug.Stack())

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(domain.Fail(domain.MsgInternal))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
