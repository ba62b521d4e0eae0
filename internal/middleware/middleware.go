// Package middleware holds the http.Handler wrappers shared by every route.
// They sit on top of chi's middleware package.
package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-Id"

// RequestID tags every request with a uuid, reusing an incoming X-Request-Id
// when it is one. The id is stored by chi's RequestID and echoed in the response.
func RequestID(next http.Handler) http.Handler {
	tagged := chimw.RequestID(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		tagged.ServeHTTP(w, r)
	})
}

// GetRequestID returns the id assigned by RequestID, or ""
func GetRequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// Logger logs one line per request
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.Printf("%s %s %d %dB %s [%s]", r.Method, r.URL.RequestURI(), status, ww.BytesWritten(),
				time.Since(start).Round(time.Microsecond), GetRequestID(r.Context()))
		}()

		next.ServeHTTP(ww, r)
	})
}

// Recovery turns a panicking handler into a 500 and prints the stack
func Recovery(next http.Handler) http.Handler {
	return chimw.Recoverer(next)
}
