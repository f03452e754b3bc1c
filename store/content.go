package store

import (
	"newsportal/models"
	"newsportal/storage"
)

// AddPost prepends a post so the collection stays newest-first. The
// caller must supply a unique id; no duplicate check is performed here.
func (a *App) AddPost(p models.Post) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.posts = append([]models.Post{p}, a.posts...)
	a.persist(storage.KeyPosts, a.posts)
}

// DeletePost removes every post with the given id. A second call with
// the same id is a no-op.
func (a *App) DeletePost(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := make([]models.Post, 0, len(a.posts))
	for _, p := range a.posts {
		if p.ID != id {
			next = append(next, p)
		}
	}
	a.posts = next
	a.persist(storage.KeyPosts, a.posts)
}

// IncrementViews bumps the view counter of one post. Unknown ids are
// ignored.
func (a *App) IncrementViews(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := make([]models.Post, len(a.posts))
	for i, p := range a.posts {
		if p.ID == id {
			p.Views++
		}
		next[i] = p
	}
	a.posts = next
	a.persist(storage.KeyPosts, a.posts)
}

// CreateAd appends an ad to the collection.
func (a *App) CreateAd(ad models.Ad) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.ads = append(a.ads, ad)
	a.persist(storage.KeyAds, a.ads)
}

// UpdateAd shallow-merges the patch into the matching ad. Unknown ids
// are ignored.
func (a *App) UpdateAd(id string, patch models.AdPatch) {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := make([]models.Ad, len(a.ads))
	for i, ad := range a.ads {
		if ad.ID == id {
			if patch.Title != nil {
				ad.Title = *patch.Title
			}
			if patch.ImageURL != nil {
				ad.ImageURL = *patch.ImageURL
			}
			if patch.LinkURL != nil {
				ad.LinkURL = *patch.LinkURL
			}
			if patch.Placement != nil {
				ad.Placement = *patch.Placement
			}
			if patch.Active != nil {
				ad.Active = *patch.Active
			}
		}
		next[i] = ad
	}
	a.ads = next
	a.persist(storage.KeyAds, a.ads)
}

// DeleteAd removes an ad by id.
func (a *App) DeleteAd(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := make([]models.Ad, 0, len(a.ads))
	for _, ad := range a.ads {
		if ad.ID != id {
			next = append(next, ad)
		}
	}
	a.ads = next
	a.persist(storage.KeyAds, a.ads)
}
