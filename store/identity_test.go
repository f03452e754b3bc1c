package store

import (
	"testing"

	"newsportal/models"
)

func TestRegisterFreshEmail(t *testing.T) {
	app := newTestApp(t)
	before := len(app.RegisteredUsers())

	ok := app.Register(models.User{Name: "A", Email: "a@x.com"}, "p")
	if !ok {
		t.Fatal("Expected registration to succeed")
	}
	if len(app.RegisteredUsers()) != before+1 {
		t.Errorf("Expected exactly one new directory entry")
	}

	sess := app.Session()
	if sess == nil {
		t.Fatal("Registration must sign the user in")
	}
	if sess.User.Email != "a@x.com" {
		t.Errorf("Session user email = %q, want a@x.com", sess.User.Email)
	}
	if sess.User.Role != models.RoleRegular {
		t.Errorf("Session user role = %q, want regular", sess.User.Role)
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	app := newTestApp(t)
	app.Register(models.User{Name: "A", Email: "a@x.com"}, "p")

	for _, u := range app.RegisteredUsers() {
		if u.Email != "a@x.com" {
			continue
		}
		if u.PasswordHash == "" || u.PasswordHash == "p" {
			t.Errorf("Password must be stored hashed, got %q", u.PasswordHash)
		}
		return
	}
	t.Fatal("Registered user missing from directory")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	app.Register(models.User{Name: "A", Email: "a@x.com"}, "p")
	app.Logout()

	dirBefore := len(app.RegisteredUsers())

	if app.Register(models.User{Name: "B", Email: "a@x.com"}, "other") {
		t.Fatal("Expected duplicate email registration to fail")
	}
	if len(app.RegisteredUsers()) != dirBefore {
		t.Error("Failed registration must leave the directory unchanged")
	}
	if app.Session() != nil {
		t.Error("Failed registration must leave the session unchanged")
	}
}

func TestLoginScenario(t *testing.T) {
	app := newTestApp(t)

	if !app.Register(models.User{Name: "A", Email: "a@x.com"}, "p") {
		t.Fatal("Registration failed")
	}
	if got := app.Session().User.Email; got != "a@x.com" {
		t.Fatalf("Session email = %q, want a@x.com", got)
	}

	app.Logout()
	if app.Session() != nil {
		t.Fatal("Logout must clear the session")
	}

	if !app.Login("a@x.com", "p") {
		t.Error("Login with correct password must succeed")
	}
	app.Logout()

	if app.Login("a@x.com", "wrong") {
		t.Error("Login with wrong password must fail")
	}
	if app.Session() != nil {
		t.Error("Failed login must leave the session unchanged")
	}
}

func TestLoginByDisplayName(t *testing.T) {
	app := newTestApp(t)
	app.Register(models.User{Name: "Alma", Email: "alma@x.com"}, "secret12")
	app.Logout()

	if !app.Login("Alma", "secret12") {
		t.Error("Login by display name must succeed")
	}
}

func TestLoginIsCaseSensitive(t *testing.T) {
	app := newTestApp(t)
	app.Register(models.User{Name: "Alma", Email: "alma@x.com"}, "secret12")
	app.Logout()

	if app.Login("ALMA@x.com", "secret12") {
		t.Error("Email match must be case sensitive")
	}
}

func TestLoginDisplayNameCollisionFirstWins(t *testing.T) {
	app := newTestApp(t)
	app.Register(models.User{Name: "Sam", Email: "sam1@x.com"}, "password1")
	app.Logout()
	app.Register(models.User{Name: "Sam", Email: "sam2@x.com"}, "password1")
	app.Logout()

	if !app.Login("Sam", "password1") {
		t.Fatal("Login by shared display name must succeed")
	}
	if got := app.Session().User.Email; got != "sam1@x.com" {
		t.Errorf("Expected first registered user to win, got %q", got)
	}
}

func TestAdminLogin(t *testing.T) {
	app := newTestApp(t)

	if !app.Login(testAdminUser, testAdminPass) {
		t.Fatal("Admin credential pair must authenticate regardless of directory contents")
	}
	sess := app.Session()
	if sess.User.Role != models.RoleAdmin {
		t.Errorf("Admin session role = %q, want admin", sess.User.Role)
	}
}

func TestAdminWrongPassword(t *testing.T) {
	app := newTestApp(t)

	if app.Login(testAdminUser, "wrong") {
		t.Error("Admin login with wrong password must fail")
	}
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	path := t.TempDir() + "/state.db"
	app, gw := newTestAppAt(t, path)

	app.Register(models.User{Name: "A", Email: "a@x.com"}, "p")
	app.Logout()
	gw.Close()

	reloaded, _ := newTestAppAt(t, path)
	if reloaded.Session() != nil {
		t.Error("Logged-out session must not come back after restart")
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	path := t.TempDir() + "/state.db"
	app, gw := newTestAppAt(t, path)

	app.Register(models.User{Name: "A", Email: "a@x.com"}, "p")
	gw.Close()

	reloaded, _ := newTestAppAt(t, path)
	sess := reloaded.Session()
	if sess == nil || sess.User.Email != "a@x.com" {
		t.Error("Active session must survive restart")
	}
}
