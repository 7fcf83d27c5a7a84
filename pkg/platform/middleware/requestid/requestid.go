// Package requestid assigns every request a correlation ID.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"idcheck/pkg/requestcontext"
)

// Header carries the request ID on both requests and responses.
const Header = "X-Request-ID"

// Middleware takes the caller-supplied request ID or mints a UUID, stores it
// in the context, and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
