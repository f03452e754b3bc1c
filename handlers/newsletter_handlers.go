package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"newsportal/utils"
)

// NewsletterSubscribe adds an email to the subscriber directory.
// Subscribing twice with the same address is rejected.
func (h *Handler) NewsletterSubscribe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	email := utils.EscapeString(r.FormValue("email"))
	if !ValidateEmail(email) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid email format"})
		return
	}

	if !h.app.SubscribeToNewsletter(email) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Email is already subscribed"})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Thanks for subscribing!"})
}

// NewsletterSend dispatches a newsletter to every subscriber. Delivery
// runs through the store's notifier; this handler only reports how many
// subscribers were addressed.
func (h *Handler) NewsletterSend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.requireAdmin(w, r) == nil {
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	subject := utils.EscapeString(r.FormValue("subject"))
	content := utils.EscapeString(r.FormValue("content"))
	postID := r.FormValue("post_id")

	if strings.TrimSpace(subject) == "" || strings.TrimSpace(content) == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Subject and content are required."})
		return
	}

	count := h.app.SendNewsletter(subject, content, postID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":     fmt.Sprintf("Newsletter sent to %d subscribers!", count),
		"subscribers": count,
	})
}
