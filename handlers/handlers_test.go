package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"newsportal/storage"
	"newsportal/store"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	gw, err := storage.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Error opening storage: %v", err)
	}
	t.Cleanup(func() { gw.Close() })

	hub := NewHub()
	app := store.New(gw, store.Options{AdminUser: "SMULIK8181", AdminPass: "8181", Notifier: hub})
	return New(app, hub)
}

func postForm(handler http.HandlerFunc, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestLoginEndpointAdmin(t *testing.T) {
	h := newTestHandler(t)

	w := postForm(h.Login, url.Values{"identifier": {"SMULIK8181"}, "password": {"8181"}}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Login status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Error decoding response: %v", err)
	}
	if resp.User.Role != "admin" {
		t.Errorf("Role = %q, want admin", resp.User.Role)
	}
	if len(w.Result().Cookies()) == 0 {
		t.Error("Expected a session cookie")
	}
}

func TestLoginEndpointBadPassword(t *testing.T) {
	h := newTestHandler(t)

	w := postForm(h.Login, url.Values{"identifier": {"SMULIK8181"}, "password": {"nope"}}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Login status = %d, want 401", w.Code)
	}
}

func TestRegisterThenCheckSession(t *testing.T) {
	h := newTestHandler(t)

	w := postForm(h.Register, url.Values{
		"name":     {"Alma"},
		"email":    {"alma@example.com"},
		"password": {"longenough"},
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Register status = %d, body %s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/check-session", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.CheckSession(rec, req)

	var resp struct {
		LoggedIn bool `json:"loggedIn"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Error decoding response: %v", err)
	}
	if !resp.LoggedIn {
		t.Error("Expected an active session after registration")
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	h := newTestHandler(t)
	form := url.Values{"name": {"Alma"}, "email": {"alma@example.com"}, "password": {"longenough"}}

	postForm(h.Register, form, nil)
	w := postForm(h.Register, form, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("Duplicate register status = %d, want 409", w.Code)
	}
}

func TestNewsletterSubscribeDuplicate(t *testing.T) {
	h := newTestHandler(t)
	form := url.Values{"email": {"reader@example.com"}}

	if w := postForm(h.NewsletterSubscribe, form, nil); w.Code != http.StatusOK {
		t.Fatalf("First subscribe status = %d", w.Code)
	}
	if w := postForm(h.NewsletterSubscribe, form, nil); w.Code != http.StatusConflict {
		t.Errorf("Second subscribe status = %d, want 409", w.Code)
	}
}

func TestPostSubmitRequiresAdmin(t *testing.T) {
	h := newTestHandler(t)

	w := postForm(h.PostSubmit, url.Values{"title": {"T"}, "content": {"C"}, "category": {"flash"}}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("PostSubmit without session status = %d, want 401", w.Code)
	}
}

func TestPostSubmitAndView(t *testing.T) {
	h := newTestHandler(t)

	login := postForm(h.Login, url.Values{"identifier": {"SMULIK8181"}, "password": {"8181"}}, nil)
	cookies := login.Result().Cookies()

	w := postForm(h.PostSubmit, url.Values{
		"title":    {"Road closure downtown"},
		"content":  {"Main street is closed until noon."},
		"category": {"flash"},
	}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("PostSubmit status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Post struct {
			ID string `json:"id"`
		} `json:"post"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Error decoding response: %v", err)
	}
	if resp.Post.ID == "" {
		t.Fatal("Expected a generated post id")
	}

	if w := postForm(h.PostView, url.Values{"id": {resp.Post.ID}}, nil); w.Code != http.StatusOK {
		t.Errorf("PostView status = %d", w.Code)
	}
}
