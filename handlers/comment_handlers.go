package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"newsportal/models"
	"newsportal/utils"
)

// Comments lists the comments for one post.
func (h *Handler) Comments(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	postID := r.URL.Query().Get("post_id")
	if postID == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Post id is required."})
		return
	}

	comments := make([]models.Comment, 0)
	for _, c := range h.app.Comments() {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}

	if err := json.NewEncoder(w).Encode(comments); err != nil {
		log.Printf("Error encoding comments response: %v", err)
	}
}

// CommentSubmit adds a comment to an existing post on behalf of the
// signed-in user.
func (h *Handler) CommentSubmit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sess := h.requireSession(w, r)
	if sess == nil {
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	content := utils.EscapeString(r.FormValue("comment"))
	postID := r.FormValue("post_id")

	if content == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Comment field is empty"})
		return
	}
	if _, ok := h.app.Post(postID); !ok {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Post ID does not exist"})
		return
	}

	comment := models.Comment{
		ID:        newID(),
		PostID:    postID,
		AuthorID:  sess.User.ID,
		Author:    sess.User.Name,
		Content:   content,
		CreatedAt: time.Now(),
	}
	h.app.AddComment(comment)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Comment submitted successfully"})
}

// CommentLike toggles the signed-in user's like on a comment.
func (h *Handler) CommentLike(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.requireSession(w, r) == nil {
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request method."})
		return
	}

	commentID := r.FormValue("comment_id")
	if commentID == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Comment id is required."})
		return
	}

	h.app.ToggleLikeComment(commentID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Like toggled."})
}
