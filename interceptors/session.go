package interceptors

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/log"

	"github.com/medishuttle/bookings.api.medishuttle.kr/helpers"
)

// SessionIntercept checks the X-Session-Id header and adds the session id to
// the request context. Booking state is keyed on this id, so a request
// without one cannot be served.
func SessionIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.Header.Get("X-Session-Id"))
		if sessionID == "" {
			log.Error(fmt.Errorf("session interceptor unauthorised: no session id header"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeySessionID, sessionID)

		// Call the next handler
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
