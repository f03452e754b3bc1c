package store

import (
	"time"

	"newsportal/models"
	"newsportal/storage"
)

// AddComment appends a comment. Like state is normalized here rather
// than trusted from the caller: every comment starts with zero likes
// and an empty likedBy set.
func (a *App) AddComment(c models.Comment) {
	a.mu.Lock()
	defer a.mu.Unlock()

	c.Likes = 0
	c.LikedBy = []string{}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	a.comments = append(a.comments, c)
	a.persist(storage.KeyComments, a.comments)
}

// ToggleLikeComment flips the current user's like on a comment. It is a
// no-op without an active session. The counter and the likedBy set are
// updated in the same mutation, so len(likedBy) == likes always holds.
func (a *App) ToggleLikeComment(commentID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return
	}
	userID := a.session.User.ID

	next := make([]models.Comment, len(a.comments))
	for i, c := range a.comments {
		if c.ID == commentID {
			liked := false
			for _, id := range c.LikedBy {
				if id == userID {
					liked = true
					break
				}
			}
			if liked {
				likedBy := make([]string, 0, len(c.LikedBy)-1)
				for _, id := range c.LikedBy {
					if id != userID {
						likedBy = append(likedBy, id)
					}
				}
				c.LikedBy = likedBy
				c.Likes--
			} else {
				c.LikedBy = append(append([]string(nil), c.LikedBy...), userID)
				c.Likes++
			}
		}
		next[i] = c
	}
	a.comments = next
	a.persist(storage.KeyComments, a.comments)
}

// AddContactMessage prepends a contact message, newest first.
func (a *App) AddContactMessage(msg models.ContactMessage) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	a.contactMessages = append([]models.ContactMessage{msg}, a.contactMessages...)
	a.persist(storage.KeyMessages, a.contactMessages)
}
