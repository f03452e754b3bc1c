package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"newsportal/models"
	"newsportal/utils"
)

// Ads lists all ads.
func (h *Handler) Ads(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	if err := json.NewEncoder(w).Encode(h.app.Ads()); err != nil {
		log.Printf("Error encoding ads response: %v", err)
	}
}

// AdCreate appends a new ad.
func (h *Handler) AdCreate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.requireAdmin(w, r) == nil {
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	title := utils.EscapeString(r.FormValue("title"))
	placement := utils.EscapeString(r.FormValue("placement"))
	if title == "" || placement == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Title and placement are required."})
		return
	}

	ad := models.Ad{
		ID:        newID(),
		Title:     title,
		ImageURL:  utils.EscapeString(r.FormValue("image_url")),
		LinkURL:   utils.EscapeString(r.FormValue("link_url")),
		Placement: placement,
		Active:    r.FormValue("active") != "false",
	}
	h.app.CreateAd(ad)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Ad created.",
		"ad":      ad,
	})
}

// AdUpdate shallow-merges the submitted fields into an existing ad.
// Only fields present in the form end up in the patch.
func (h *Handler) AdUpdate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.requireAdmin(w, r) == nil {
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to parse form data"})
		return
	}

	id := r.FormValue("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Ad id is required."})
		return
	}

	var patch models.AdPatch
	if vals, ok := r.PostForm["title"]; ok {
		v := utils.EscapeString(vals[0])
		patch.Title = &v
	}
	if vals, ok := r.PostForm["image_url"]; ok {
		v := utils.EscapeString(vals[0])
		patch.ImageURL = &v
	}
	if vals, ok := r.PostForm["link_url"]; ok {
		v := utils.EscapeString(vals[0])
		patch.LinkURL = &v
	}
	if vals, ok := r.PostForm["placement"]; ok {
		v := utils.EscapeString(vals[0])
		patch.Placement = &v
	}
	if vals, ok := r.PostForm["active"]; ok {
		active, err := strconv.ParseBool(vals[0])
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid active value."})
			return
		}
		patch.Active = &active
	}

	h.app.UpdateAd(id, patch)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Ad updated."})
}

// AdDelete removes an ad by id.
func (h *Handler) AdDelete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.requireAdmin(w, r) == nil {
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	id := r.FormValue("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Ad id is required."})
		return
	}

	h.app.DeleteAd(id)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Ad deleted."})
}
