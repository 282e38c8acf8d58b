package pantry_test

import (
	"errors"
	"testing"

	"github.com/smartpantry/pantry/internal/validation"
	"github.com/smartpantry/pantry/pantry"
	"github.com/smartpantry/pantry/storage"
	"github.com/smartpantry/pantry/types"
)

func newPantry(t *testing.T) (*pantry.Pantry, storage.Dual) {
	t.Helper()
	dual := storage.Dual{Session: storage.NewMemory(), Persistent: storage.NewMemory()}
	p, err := pantry.New(dual)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p, dual
}

func TestSignUpThenSignIn(t *testing.T) {
	p, _ := newPantry(t)

	if err := p.SignUp("a", "a@x.com", "p"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	sess, err := p.SignIn("a@x.com", "p")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if !sess.IsLoggedIn {
		t.Error("session not marked logged in")
	}
	if sess.Email != "a@x.com" || sess.Username != "a" {
		t.Errorf("unexpected session %+v", sess)
	}
	if !p.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after sign-in")
	}
}

func TestSignInWrongPassword(t *testing.T) {
	p, _ := newPantry(t)

	if err := p.SignUp("a", "a@x.com", "p"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	_, err := p.SignIn("a@x.com", "wrong")
	if !errors.Is(err, pantry.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if p.IsAuthenticated() {
		t.Error("failed sign-in still created a session")
	}
}

func TestSignInUnknownEmail(t *testing.T) {
	p, _ := newPantry(t)

	// No users registered at all.
	_, err := p.SignIn("ghost@x.com", "p")
	if !errors.Is(err, pantry.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// Same error whether the email or the password is wrong.
	if err := p.SignUp("a", "a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	_, unknownErr := p.SignIn("b@x.com", "p")
	_, wrongPwErr := p.SignIn("a@x.com", "nope")
	if unknownErr.Error() != wrongPwErr.Error() {
		t.Errorf("error messages differ: %q vs %q", unknownErr, wrongPwErr)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	p, dual := newPantry(t)

	if err := p.SignUp("a", "a@x.com", "p"); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}
	err := p.SignUp("other", "a@x.com", "different")
	if !errors.Is(err, pantry.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// Exactly one record for the email survives.
	var users []types.User
	if _, err := storage.GetJSON(dual.Persistent, types.KeyUsers, &users); err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, u := range users {
		if u.Email == "a@x.com" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("found %d records for the email, want 1", count)
	}
	if users[0].Username != "a" || users[0].Password != "p" {
		t.Errorf("original record was modified: %+v", users[0])
	}
}

func TestSignUpValidation(t *testing.T) {
	p, _ := newPantry(t)

	tests := []struct {
		name                      string
		username, email, password string
	}{
		{"missing username", "", "a@x.com", "p"},
		{"missing email", "a", "", "p"},
		{"not an email", "a", "nope", "p"},
		{"missing password", "a", "a@x.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.SignUp(tt.username, tt.email, tt.password)
			if !validation.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestSignOut(t *testing.T) {
	p, dual := newPantry(t)

	if err := p.SignUp("a", "a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	if _, err := p.SignIn("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	if err := p.SignOut(); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	if p.IsAuthenticated() {
		t.Error("still authenticated after sign-out")
	}
	for _, scope := range []storage.Scope{storage.ScopeSession, storage.ScopePersistent} {
		if _, ok, _ := dual.For(scope).Get(types.KeySession); ok {
			t.Errorf("session record still present in %s scope", scope)
		}
	}

	// Signing out twice is a no-op.
	if err := p.SignOut(); err != nil {
		t.Errorf("second SignOut: %v", err)
	}
}

func TestSessionWrittenToBothScopes(t *testing.T) {
	p, dual := newPantry(t)

	if err := p.SignUp("a", "a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	if _, err := p.SignIn("a@x.com", "p"); err != nil {
		t.Fatal(err)
	}

	for _, scope := range []storage.Scope{storage.ScopeSession, storage.ScopePersistent} {
		var sess types.Session
		ok, err := storage.GetJSON(dual.For(scope), types.KeySession, &sess)
		if err != nil || !ok {
			t.Fatalf("%s scope: ok=%v err=%v", scope, ok, err)
		}
		if !sess.IsLoggedIn || sess.Email != "a@x.com" {
			t.Errorf("%s scope holds %+v", scope, sess)
		}
	}
}

func TestReconcileMirrorsAcrossScopes(t *testing.T) {
	sess := types.Session{Email: "a@x.com", Username: "a", IsLoggedIn: true}

	t.Run("persistent only", func(t *testing.T) {
		p, dual := newPantry(t)
		if err := storage.SetJSON(dual.Persistent, types.KeySession, sess); err != nil {
			t.Fatal(err)
		}

		got, ok, err := p.CurrentUser()
		if err != nil || !ok {
			t.Fatalf("CurrentUser: ok=%v err=%v", ok, err)
		}
		if got.Email != sess.Email {
			t.Errorf("got %+v", got)
		}
		// Echoed into the session scope.
		if _, ok, _ := dual.Session.Get(types.KeySession); !ok {
			t.Error("session scope was not populated")
		}
	})

	t.Run("session only", func(t *testing.T) {
		p, dual := newPantry(t)
		if err := storage.SetJSON(dual.Session, types.KeySession, sess); err != nil {
			t.Fatal(err)
		}

		if !p.IsAuthenticated() {
			t.Fatal("not authenticated from session scope alone")
		}
		if _, ok, _ := dual.Persistent.Get(types.KeySession); !ok {
			t.Error("persistent scope was not populated")
		}
	})

	t.Run("session scope wins", func(t *testing.T) {
		p, dual := newPantry(t)
		other := types.Session{Email: "b@x.com", Username: "b", IsLoggedIn: true}
		if err := storage.SetJSON(dual.Session, types.KeySession, other); err != nil {
			t.Fatal(err)
		}
		if err := storage.SetJSON(dual.Persistent, types.KeySession, sess); err != nil {
			t.Fatal(err)
		}

		got, ok, err := p.CurrentUser()
		if err != nil || !ok {
			t.Fatalf("CurrentUser: ok=%v err=%v", ok, err)
		}
		if got.Email != "b@x.com" {
			t.Errorf("wrong scope won: %+v", got)
		}
	})

	t.Run("logged-out record does not authenticate", func(t *testing.T) {
		p, dual := newPantry(t)
		out := types.Session{Email: "a@x.com", IsLoggedIn: false}
		if err := storage.SetJSON(dual.Persistent, types.KeySession, out); err != nil {
			t.Fatal(err)
		}
		if p.IsAuthenticated() {
			t.Error("authenticated from a logged-out record")
		}
	})

	t.Run("malformed session record is ignored", func(t *testing.T) {
		p, dual := newPantry(t)
		if err := dual.Session.Set(types.KeySession, []byte(`{broken`)); err != nil {
			t.Fatal(err)
		}
		if err := storage.SetJSON(dual.Persistent, types.KeySession, sess); err != nil {
			t.Fatal(err)
		}
		if !p.IsAuthenticated() {
			t.Error("valid persistent record should win over a malformed session one")
		}
	})
}
