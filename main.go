package main

import (
	"log"
	"net/http"

	"newsportal/config"
	"newsportal/handlers"
	"newsportal/storage"
	"newsportal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	gw, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Storage initialization failed: %v", err)
	}
	defer gw.Close()

	hub := handlers.NewHub()
	app := store.New(gw, store.Options{
		AdminUser: cfg.AdminUser,
		AdminPass: cfg.AdminPass,
		Notifier:  hub,
	})
	h := handlers.New(app, hub)

	http.HandleFunc("/login", h.Login)
	http.HandleFunc("/register", h.Register)
	http.HandleFunc("/logout", h.Logout)
	http.HandleFunc("/check-session", h.CheckSession)
	http.HandleFunc("/posts", h.Posts)
	http.HandleFunc("/post_submit", h.PostSubmit)
	http.HandleFunc("/post_delete", h.PostDelete)
	http.HandleFunc("/post_view", h.PostView)
	http.HandleFunc("/ads", h.Ads)
	http.HandleFunc("/ad_create", h.AdCreate)
	http.HandleFunc("/ad_update", h.AdUpdate)
	http.HandleFunc("/ad_delete", h.AdDelete)
	http.HandleFunc("/comments", h.Comments)
	http.HandleFunc("/comment_submit", h.CommentSubmit)
	http.HandleFunc("/comment_like", h.CommentLike)
	http.HandleFunc("/contact_submit", h.ContactSubmit)
	http.HandleFunc("/contact_messages", h.ContactMessages)
	http.HandleFunc("/newsletter_subscribe", h.NewsletterSubscribe)
	http.HandleFunc("/newsletter_send", h.NewsletterSend)
	http.HandleFunc("/accessibility", h.Accessibility)
	http.HandleFunc("/accessibility_toggle", h.AccessibilityToggle)
	http.HandleFunc("/accessibility_fontsize", h.AccessibilityFontSize)
	http.HandleFunc("/accessibility_reset", h.AccessibilityReset)
	http.HandleFunc("/ws", hub.Serve)

	log.Printf("http://localhost:%s/", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, nil))
}
