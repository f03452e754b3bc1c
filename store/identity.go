package store

import (
	"log"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"newsportal/models"
	"newsportal/storage"
)

// Login authenticates against the configured admin credential pair
// first, then against the registered-user directory. A registered user
// matches on a case-sensitive email or display name together with the
// right password. If two users share a display name the first one in
// registration order wins.
func (a *App) Login(identifier, password string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if identifier == a.adminUser && password == a.adminPass {
		a.setSession(models.User{ID: "admin1", Name: "Site Admin", Role: models.RoleAdmin})
		return true
	}

	for _, u := range a.registeredUsers {
		if u.Email != identifier && u.Name != identifier {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			a.setSession(u)
			return true
		}
	}
	return false
}

// Register adds a user to the directory and signs them in. It reports
// false without touching any state when the email is already taken.
// The password is stored only as a bcrypt hash.
func (a *App) Register(u models.User, password string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, existing := range a.registeredUsers {
		if existing.Email == u.Email {
			return false
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return false
	}
	u.PasswordHash = string(hash)
	if u.Role == "" {
		u.Role = models.RoleRegular
	}
	if u.ID == "" {
		u.ID = newID()
	}

	a.registeredUsers = append(a.registeredUsers, u)
	a.persist(storage.KeyUsers, a.registeredUsers)
	a.setSession(u)
	return true
}

// Logout clears the session unconditionally, including its snapshot.
func (a *App) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.session = nil
	if err := a.gw.Delete(storage.KeySession); err != nil {
		log.Printf("Error clearing session snapshot: %v", err)
	}
}

// Session returns a copy of the current session, or nil when nobody is
// signed in.
func (a *App) Session() *models.Session {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return nil
	}
	sess := *a.session
	return &sess
}

// setSession replaces the current session. Callers hold the lock.
func (a *App) setSession(u models.User) {
	sess := models.Session{User: u, Token: newID(), LoggedInAt: time.Now()}
	a.session = &sess
	a.persist(storage.KeySession, sess)
}

func newID() string {
	id, err := uuid.NewV4()
	if err != nil {
		log.Printf("Error generating uuid: %v", err)
		return ""
	}
	return id.String()
}
