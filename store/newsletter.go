package store

import (
	"log"
	"time"

	"newsportal/models"
	"newsportal/storage"
)

// SubscribeToNewsletter adds an email to the subscriber directory.
// Subscribing an email that is already present reports false and
// changes nothing.
func (a *App) SubscribeToNewsletter(email string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, s := range a.subscribers {
		if s.Email == email {
			return false
		}
	}

	a.subscribers = append(a.subscribers, models.NewsletterSubscriber{
		ID:         newID(),
		Email:      email,
		JoinedDate: time.Now().Format("02/01/2006"),
		IsActive:   true,
	})
	a.persist(storage.KeySubscribers, a.subscribers)
	return true
}

// SendNewsletter records the dispatch intent, hands it to the notifier
// and returns the subscriber count. Fire-and-forget: there is no queue,
// no retry and no delivery guarantee.
func (a *App) SendNewsletter(subject, content, postID string) int {
	a.mu.Lock()
	count := len(a.subscribers)
	a.mu.Unlock()

	log.Printf("Sending newsletter %q to %d subscribers", subject, count)
	a.notifier.NewsletterSent(subject, content, postID, count)
	return count
}
