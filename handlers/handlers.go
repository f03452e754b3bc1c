package handlers

import (
	"log"

	"github.com/gofrs/uuid/v5"

	"newsportal/store"
)

// Handler exposes the state container over HTTP. The presentation layer
// only reads collections and invokes operations through these routes;
// it never mutates state directly.
type Handler struct {
	app *store.App
	hub *Hub
}

func New(app *store.App, hub *Hub) *Handler {
	return &Handler{app: app, hub: hub}
}

// newID generates the unique ids the content operations expect their
// callers to supply.
func newID() string {
	id, err := uuid.NewV4()
	if err != nil {
		log.Printf("Error generating uuid: %v", err)
		return ""
	}
	return id.String()
}
