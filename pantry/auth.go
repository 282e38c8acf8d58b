package pantry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smartpantry/pantry/types"
)

// Auth failures deliberately carry no detail about which part of the
// credentials was wrong.
var (
	// ErrInvalidCredentials covers unknown email and wrong password
	// alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDuplicateEmail rejects a sign-up for an email that already
	// has an account.
	ErrDuplicateEmail = errors.New("an account with this email already exists")
)

// SignUp registers a new account. The email must be unused; the check
// happens before anything is written. Sign-up does not create a
// session, the new user still signs in.
func (p *Pantry) SignUp(username, email, password string) error {
	user := types.User{
		Username:   strings.TrimSpace(username),
		Email:      strings.TrimSpace(email),
		Password:   password,
		Registered: p.now(),
	}
	if err := user.Validate(); err != nil {
		return err
	}

	users, err := p.users.LoadAll()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	return p.users.SaveAll(append(users, user))
}

// SignIn checks the credentials against the registered users and, on
// success, writes a logged-in session to both scopes. The password
// comparison is exact string equality: accounts are local plain-text
// records, not real credentials.
func (p *Pantry) SignIn(email, password string) (types.Session, error) {
	email = strings.TrimSpace(email)

	users, err := p.users.LoadAll()
	if err != nil {
		return types.Session{}, err
	}
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if u.Password != password {
			return types.Session{}, ErrInvalidCredentials
		}

		sess := types.Session{
			Email:      u.Email,
			Username:   u.Username,
			IsLoggedIn: true,
		}
		if sess.Username == "" {
			// Old records may predate usernames; fall back to the
			// email's local part.
			sess.Username, _, _ = strings.Cut(u.Email, "@")
		}
		if err := p.sessions.save(sess); err != nil {
			return types.Session{}, fmt.Errorf("persist session: %w", err)
		}
		return sess, nil
	}
	return types.Session{}, ErrInvalidCredentials
}

// SignOut clears the session from both scopes. Signing out while
// signed out is a no-op.
func (p *Pantry) SignOut() error {
	return p.sessions.clear()
}

// CurrentUser reconciles the two session scopes and returns the active
// session, if any.
func (p *Pantry) CurrentUser() (types.Session, bool, error) {
	return p.sessions.reconcile()
}

// IsAuthenticated is the router-facing yes/no: guarded views render
// only when it reports true.
func (p *Pantry) IsAuthenticated() bool {
	_, ok, err := p.sessions.reconcile()
	return err == nil && ok
}
