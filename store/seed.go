package store

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"newsportal/models"
)

// Built-in defaults, used whenever a collection has no usable snapshot.

func seedPosts() []models.Post {
	now := time.Now()
	return []models.Post{
		{
			ID:        "post-welcome",
			Title:     "Welcome to the new city portal",
			Content:   "The portal has relaunched with a faster site, live flash news and a community section. Tell us what you think through the contact page.",
			Author:    "Editorial Desk",
			Category:  models.CategoryFlash,
			Views:     112,
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:        "post-bridge-reopening",
			Title:     "Old town bridge reopens after renovation",
			Content:   "Two years of restoration work ended this morning when the municipality reopened the old town bridge to pedestrians.",
			Author:    "Noa Peretz",
			Category:  models.CategoryCommunity,
			Views:     87,
			CreatedAt: now.Add(-36 * time.Hour),
		},
		{
			ID:        "post-housing-plan",
			Title:     "Council approves 400 new housing units",
			Content:   "The district planning committee approved a new neighborhood on the northern slope, with construction expected to begin next spring.",
			Author:    "Avi Shalev",
			Category:  models.CategoryRealEstate,
			Views:     203,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        "post-derby-result",
			Title:     "Local derby ends in a 2-2 draw",
			Content:   "A stoppage-time equalizer kept the city derby level in front of a sold-out stadium.",
			Author:    "Sports Desk",
			Category:  models.CategorySports,
			Views:     154,
			CreatedAt: now.Add(-12 * time.Hour),
		},
		{
			ID:        "post-festival-lineup",
			Title:     "Summer festival lineup announced",
			Content:   "The annual arts festival returns in August with street theater, open-air concerts and a late-night gallery route.",
			Author:    "Culture Desk",
			Category:  models.CategoryCulture,
			Views:     61,
			CreatedAt: now.Add(-6 * time.Hour),
		},
	}
}

func seedAds() []models.Ad {
	return []models.Ad{
		{
			ID:        "ad-home-banner",
			Title:     "Advertise with us",
			Placement: "home-banner",
			LinkURL:   "/contact",
			Active:    true,
		},
		{
			ID:        "ad-sidebar",
			Title:     "Galilee Realty - new listings weekly",
			Placement: "sidebar",
			LinkURL:   "https://example.com/galilee-realty",
			Active:    true,
		},
	}
}

func seedComments() []models.Comment {
	return []models.Comment{
		{
			ID:        "comment-1",
			PostID:    "post-bridge-reopening",
			AuthorID:  "user-dana",
			Author:    "Dana Levi",
			Content:   "Finally! Walked across this morning, it looks great.",
			Likes:     0,
			LikedBy:   []string{},
			CreatedAt: time.Now().Add(-30 * time.Hour),
		},
	}
}

func seedUsers() []models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("Dana1234!"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing seed password: %v", err)
		return []models.User{}
	}
	return []models.User{
		{
			ID:           "user-dana",
			Name:         "Dana Levi",
			Email:        "dana@example.com",
			PasswordHash: string(hash),
			Role:         models.RoleRegular,
		},
	}
}

func seedContactMessages() []models.ContactMessage {
	return []models.ContactMessage{
		{
			ID:        "msg-1",
			Name:      "Yossi Mizrahi",
			Email:     "yossi@example.com",
			Subject:   "Ad pricing",
			Content:   "Hi, I'd like a price quote for a sidebar ad for my bakery.",
			CreatedAt: time.Now().Add(-72 * time.Hour),
		},
	}
}

func seedSubscribers() []models.NewsletterSubscriber {
	return []models.NewsletterSubscriber{
		{
			ID:         "sub-1",
			Email:      "dana@example.com",
			JoinedDate: "01/06/2026",
			IsActive:   true,
		},
	}
}
