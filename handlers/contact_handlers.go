package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"newsportal/models"
	"newsportal/utils"
)

// ContactSubmit records a message from the contact form.
func (h *Handler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	name := utils.EscapeString(r.FormValue("name"))
	email := utils.EscapeString(r.FormValue("email"))
	subject := utils.EscapeString(r.FormValue("subject"))
	content := utils.EscapeString(r.FormValue("content"))

	if strings.TrimSpace(name) == "" || strings.TrimSpace(content) == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Name and message are required."})
		return
	}
	if !ValidateEmail(email) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid email format"})
		return
	}

	h.app.AddContactMessage(models.ContactMessage{
		ID:        newID(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Content:   content,
		CreatedAt: time.Now(),
	})

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Message sent. We'll get back to you soon."})
}

// ContactMessages lists received contact messages, newest first.
func (h *Handler) ContactMessages(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.requireAdmin(w, r) == nil {
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	if err := json.NewEncoder(w).Encode(h.app.ContactMessages()); err != nil {
		log.Printf("Error encoding contact messages response: %v", err)
	}
}
