package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"newsportal/models"
	"newsportal/utils"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Method not allowed"})
		return
	}

	identifier := utils.EscapeString(r.FormValue("identifier"))
	password := r.FormValue("password")

	const maxIdentifier = 100
	const maxPassword = 100

	if len(identifier) > maxIdentifier {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf("Name/Email cannot be longer than %d characters", maxIdentifier)})
		return
	}
	if len(password) > maxPassword {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf("Password cannot be longer than %d characters", maxPassword)})
		return
	}

	if !h.app.Login(identifier, password) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid name/email or password"})
		return
	}

	sess := h.app.Session()
	setSessionCookie(w, sess.Token)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Login successful!",
		"user":    sess.User.Public(),
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Method not allowed"})
		return
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to parse form data"})
		return
	}

	name := utils.EscapeString(r.FormValue("name"))
	email := utils.EscapeString(r.FormValue("email"))
	password := r.FormValue("password")

	errs, valid := ValidateRegistration(name, email, password)
	if !valid {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":  "Validation error",
			"fields": errs,
		})
		return
	}

	user := models.User{Name: name, Email: email, Role: models.RoleRegular}
	if !h.app.Register(user, password) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Email already exists",
			"field": "email",
		})
		return
	}

	// Registration implies login.
	sess := h.app.Session()
	setSessionCookie(w, sess.Token)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Registration successful!",
		"user":    sess.User.Public(),
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Method not allowed"})
		return
	}

	h.app.Logout()
	clearSessionCookie(w)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "You have been logged out."})
}
