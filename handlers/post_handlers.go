package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"newsportal/models"
	"newsportal/utils"
)

var validCategories = map[models.Category]bool{
	models.CategoryFlash:      true,
	models.CategorySports:     true,
	models.CategoryRealEstate: true,
	models.CategoryCulture:    true,
	models.CategoryCommunity:  true,
	models.CategoryOther:      true,
}

// Posts lists posts, newest first, with optional category and text
// filters.
func (h *Handler) Posts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	category := r.URL.Query().Get("category")
	query := strings.ToLower(r.URL.Query().Get("q"))

	posts := h.app.Posts()
	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if category != "" && category != "all" && string(p.Category) != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Content), query) {
			continue
		}
		filtered = append(filtered, p)
	}

	if err := json.NewEncoder(w).Encode(filtered); err != nil {
		log.Printf("Error encoding posts response: %v", err)
	}
}

// PostSubmit publishes a new post. Admin only: regular readers do not
// write articles on this portal.
func (h *Handler) PostSubmit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sess := h.requireAdmin(w, r)
	if sess == nil {
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	title := utils.EscapeString(r.FormValue("title"))
	content := utils.EscapeString(r.FormValue("content"))
	category := models.Category(r.FormValue("category"))
	imageURL := utils.EscapeString(r.FormValue("image_url"))

	const maxTitle = 100
	const maxContent = 10000

	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Title and content are required."})
		return
	}
	if len(title) > maxTitle {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf("Title cannot be longer than %d characters.", maxTitle)})
		return
	}
	if len(content) > maxContent {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf("Content cannot be longer than %d characters.", maxContent)})
		return
	}
	if !validCategories[category] {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf("Category '%s' not found.", category)})
		return
	}

	post := models.Post{
		ID:        newID(),
		Title:     title,
		Content:   content,
		Author:    sess.User.Name,
		Category:  category,
		ImageURL:  imageURL,
		CreatedAt: time.Now(),
	}
	h.app.AddPost(post)

	if category == models.CategoryFlash {
		h.hub.PostPublished(post)
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Post published.",
		"post":    post,
	})
}

// PostDelete removes a post by id. Deleting an absent id is a no-op.
func (h *Handler) PostDelete(w http.ResponseWriter, r *http.Request) {
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
		json.NewEncoder(w).Encode(map[string]string{"error": "Post id is required."})
		return
	}

	h.app.DeletePost(id)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Post deleted."})
}

// PostView bumps a post's view counter. Called by the article page on
// load; unknown ids are ignored.
func (h *Handler) PostView(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	id := r.FormValue("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Post id is required."})
		return
	}

	h.app.IncrementViews(id)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "View recorded."})
}
