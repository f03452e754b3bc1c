// Package store holds the portal's application state: posts, ads, the
// current session, the registered-user directory, comments, contact
// messages, newsletter subscribers and accessibility preferences. Every
// mutating operation replaces the affected collection and writes its
// snapshot through the storage gateway.
package store

import (
	"log"
	"sync"

	"newsportal/models"
	"newsportal/storage"
)

// Notifier receives newsletter dispatch events. The store only records
// intent and reports the subscriber count; real delivery is the
// collaborator's concern.
type Notifier interface {
	NewsletterSent(subject, content, postID string, subscribers int)
}

// LogNotifier writes dispatch events to the process log.
type LogNotifier struct{}

func (LogNotifier) NewsletterSent(subject, content, postID string, subscribers int) {
	log.Printf("Newsletter %q dispatched to %d subscribers", subject, subscribers)
	if postID != "" {
		log.Printf("Newsletter linked post: %s", postID)
	}
}

type Options struct {
	AdminUser string
	AdminPass string
	Notifier  Notifier
}

// App is the portal state container. Operations are synchronous; each
// mutation happens under the lock as a single replace-the-collection
// step, so readers observe either the pre- or post-mutation snapshot.
type App struct {
	mu       sync.Mutex
	gw       *storage.Store
	notifier Notifier

	adminUser string
	adminPass string

	posts           []models.Post
	ads             []models.Ad
	session         *models.Session
	comments        []models.Comment
	registeredUsers []models.User
	contactMessages []models.ContactMessage
	subscribers     []models.NewsletterSubscriber
	accessibility   models.AccessibilitySettings
}

// New builds the state container, restoring every collection from its
// snapshot and seeding the ones that have none.
func New(gw *storage.Store, opts Options) *App {
	a := &App{
		gw:        gw,
		notifier:  opts.Notifier,
		adminUser: opts.AdminUser,
		adminPass: opts.AdminPass,
	}
	if a.notifier == nil {
		a.notifier = LogNotifier{}
	}
	a.loadAll()
	return a
}

// loadAll restores each collection independently: a missing or corrupt
// snapshot for one collection falls back to its seed without affecting
// the others.
func (a *App) loadAll() {
	if !a.load(storage.KeyPosts, &a.posts) {
		a.posts = seedPosts()
	}
	if !a.load(storage.KeyAds, &a.ads) {
		a.ads = seedAds()
	}
	if !a.load(storage.KeyComments, &a.comments) {
		a.comments = seedComments()
	}
	if !a.load(storage.KeyUsers, &a.registeredUsers) {
		a.registeredUsers = seedUsers()
	}
	if !a.load(storage.KeyMessages, &a.contactMessages) {
		a.contactMessages = seedContactMessages()
	}
	if !a.load(storage.KeySubscribers, &a.subscribers) {
		a.subscribers = seedSubscribers()
	}

	var sess models.Session
	if a.load(storage.KeySession, &sess) {
		a.session = &sess
	}
}

func (a *App) load(key string, v interface{}) bool {
	ok, err := a.gw.Load(key, v)
	if err != nil {
		log.Printf("Error loading %q: %v", key, err)
		return false
	}
	return ok
}

// persist writes one collection snapshot. Write failures are logged and
// otherwise ignored; a full storage must not take the portal down.
func (a *App) persist(key string, v interface{}) {
	if err := a.gw.Save(key, v); err != nil {
		log.Printf("Error saving %q: %v", key, err)
	}
}

// Posts returns a copy of the post collection, newest first.
func (a *App) Posts() []models.Post {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Post(nil), a.posts...)
}

// Post looks up a single post by id.
func (a *App) Post(id string) (models.Post, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, p := range a.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// Ads returns a copy of the ad collection.
func (a *App) Ads() []models.Ad {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Ad(nil), a.ads...)
}

// Comments returns a copy of the comment collection.
func (a *App) Comments() []models.Comment {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Comment(nil), a.comments...)
}

// RegisteredUsers returns a copy of the registered-user directory.
func (a *App) RegisteredUsers() []models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.User(nil), a.registeredUsers...)
}

// ContactMessages returns a copy of the contact-message collection,
// newest first.
func (a *App) ContactMessages() []models.ContactMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.ContactMessage(nil), a.contactMessages...)
}

// Subscribers returns a copy of the newsletter subscriber directory.
func (a *App) Subscribers() []models.NewsletterSubscriber {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.NewsletterSubscriber(nil), a.subscribers...)
}
