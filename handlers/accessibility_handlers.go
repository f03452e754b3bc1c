package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Accessibility returns the current accessibility preferences.
func (h *Handler) Accessibility(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	json.NewEncoder(w).Encode(h.app.Accessibility())
}

// AccessibilityToggle flips one boolean preference. The font size is
// set through its own endpoint and is rejected here.
func (h *Handler) AccessibilityToggle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	option := r.FormValue("option")
	if !h.app.ToggleOption(option) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Unknown accessibility option."})
		return
	}

	json.NewEncoder(w).Encode(h.app.Accessibility())
}

// AccessibilityFontSize sets the discrete font level.
func (h *Handler) AccessibilityFontSize(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	level, err := strconv.Atoi(r.FormValue("level"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid font level."})
		return
	}

	h.app.SetFontSize(level)
	json.NewEncoder(w).Encode(h.app.Accessibility())
}

// AccessibilityReset restores the default preferences.
func (h *Handler) AccessibilityReset(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	h.app.ResetAccessibility()
	json.NewEncoder(w).Encode(h.app.Accessibility())
}
