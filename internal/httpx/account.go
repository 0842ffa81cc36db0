package httpx

import (
	"context"
	"net/http"

	"churchapp/internal/domains"
	"churchapp/internal/storage/providers"

	"github.com/gorilla/mux"
)

const accountContextKey contextKey = "account"

// Account loads the authenticated account into the request context. Handlers
// that snapshot the generator's display name sit behind this middleware.
func Account(provider *providers.AuthProvider) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sub, ok := UserIdFromContext(r.Context())
			if !ok {
				Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			account, err := provider.GetUserByID(r.Context(), sub)
			if err != nil {
				Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), accountContextKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AccountFromContext(ctx context.Context) (domains.Account, bool) {
	account, ok := ctx.Value(accountContextKey).(domains.Account)
	return account, ok
}
