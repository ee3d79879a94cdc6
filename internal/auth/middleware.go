package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	// SessionName is the cookie holding the admin flag. MaxAge 0 makes
	// it a session cookie, matching the reload-within-a-tab semantics.
	SessionName = "admin_session"

	authenticatedKey = "authenticated"
)

// NewStore builds the cookie session store the admin flag lives in.
func NewStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(0)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	return store
}

// AdminOnly gates a route tree on the session's authenticated flag.
func AdminOnly(store sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAuthenticated(store, r) {
				http.Error(w, "Not Authorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsAuthenticated reads the flag without mutating the session.
func IsAuthenticated(store sessions.Store, r *http.Request) bool {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return false
	}
	authenticated, ok := session.Values[authenticatedKey].(bool)
	return ok && authenticated
}
