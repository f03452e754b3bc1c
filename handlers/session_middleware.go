package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"newsportal/models"
)

const sessionCookie = "session_token"

// currentSession returns the active session when the request carries a
// cookie matching the stored session token, nil otherwise.
func (h *Handler) currentSession(r *http.Request) *models.Session {
	sess := h.app.Session()
	if sess == nil {
		return nil
	}
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value != sess.Token {
		return nil
	}
	return sess
}

// requireSession writes an unauthorized response when no session is
// active and returns the session otherwise.
func (h *Handler) requireSession(w http.ResponseWriter, r *http.Request) *models.Session {
	sess := h.currentSession(r)
	if sess == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "You need to log in first."})
		return nil
	}
	return sess
}

// requireAdmin is requireSession plus an admin-role check.
func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) *models.Session {
	sess := h.currentSession(r)
	if sess == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "You need to log in first."})
		return nil
	}
	if sess.User.Role != models.RoleAdmin {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "Admin access required."})
		return nil
	}
	return sess
}

// CheckSession reports whether a session is active.
func (h *Handler) CheckSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sess := h.currentSession(r)
	if sess == nil {
		json.NewEncoder(w).Encode(map[string]interface{}{"loggedIn": false})
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"loggedIn": true,
		"user":     sess.User.Public(),
	})
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:    sessionCookie,
		Value:   token,
		Path:    "/",
		Expires: time.Now().Add(24 * time.Hour),
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:    sessionCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Now().Add(-1 * time.Hour),
	})
}
