package models

import "time"

type Category string

const (
	CategoryFlash      Category = "flash"
	CategorySports     Category = "sports"
	CategoryRealEstate Category = "real-estate"
	CategoryCulture    Category = "culture"
	CategoryCommunity  Category = "community"
	CategoryOther      Category = "other"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleRegular Role = "regular"
)

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  Category  `json:"category"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
}

type Ad struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl,omitempty"`
	LinkURL   string `json:"linkUrl,omitempty"`
	Placement string `json:"placement"`
	Active    bool   `json:"active"`
}

// AdPatch carries a partial ad update; nil fields are left untouched.
type AdPatch struct {
	Title     *string `json:"title,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	LinkURL   *string `json:"linkUrl,omitempty"`
	Placement *string `json:"placement,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Role         Role   `json:"role"`
}

// Public returns a copy safe to hand back in HTTP responses.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// Session is the currently authenticated identity, distinct from the
// registered-user directory. At most one session exists at a time.
type Session struct {
	User       User      `json:"user"`
	Token      string    `json:"token"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	AuthorID  string    `json:"authorId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	LikedBy   []string  `json:"likedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewsletterSubscriber struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	JoinedDate string `json:"joinedDate"`
	IsActive   bool   `json:"isActive"`
}

type AccessibilitySettings struct {
	FontSize       int  `json:"fontSize"`
	HighContrast   bool `json:"highContrast"`
	Grayscale      bool `json:"grayscale"`
	HighlightLinks bool `json:"highlightLinks"`
	StopAnimations bool `json:"stopAnimations"`
}
