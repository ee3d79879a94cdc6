package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
)

// WrongPasswordMessage is the fixed inline error for a failed login.
const WrongPasswordMessage = "Yanlış şifre!"

type loginRequest struct {
	Password string `json:"password"`
}

// LoginHandler compares the submitted password against the configured
// secret and, on a match, marks the session authenticated.
func LoginHandler(w http.ResponseWriter, r *http.Request, store sessions.Store, adminPassword string) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(adminPassword)) != 1 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"error": WrongPasswordMessage})
		return
	}

	session, _ := store.Get(r, SessionName)
	session.Values[authenticatedKey] = true
	if err := session.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"message": "Giriş başarılı"})
}

// LogoutHandler clears the authenticated flag and expires the cookie.
func LogoutHandler(w http.ResponseWriter, r *http.Request, store sessions.Store) {
	session, _ := store.Get(r, SessionName)
	session.Values[authenticatedKey] = false
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"message": "Çıkış yapıldı"})
}
