package pantry

import (
	"github.com/smartpantry/pantry/storage"
	"github.com/smartpantry/pantry/types"
)

// sessionStore keeps the current-user record in both storage scopes, so
// the session outlives the process (persistent scope) while staying
// cheap to read (session scope). The two copies are reconciled on every
// check: first scope holding a logged-in record wins and is mirrored
// into the other.
type sessionStore struct {
	store storage.Dual
}

// scopeOrder is the reconciliation policy: session scope is consulted
// before the persistent one.
var scopeOrder = [2]storage.Scope{storage.ScopeSession, storage.ScopePersistent}

// save writes the session record to both scopes.
func (s *sessionStore) save(sess types.Session) error {
	for _, scope := range scopeOrder {
		if err := storage.SetJSON(s.store.For(scope), types.KeySession, sess); err != nil {
			return err
		}
	}
	return nil
}

// clear removes the session record from both scopes.
func (s *sessionStore) clear() error {
	for _, scope := range scopeOrder {
		if err := s.store.For(scope).Delete(types.KeySession); err != nil {
			return err
		}
	}
	return nil
}

// reconcile finds the first scope with a logged-in session, mirrors it
// into the other scope, and returns it. Malformed records in one scope
// are ignored; a valid copy in the other scope still wins.
func (s *sessionStore) reconcile() (types.Session, bool, error) {
	for i, scope := range scopeOrder {
		var sess types.Session
		ok, err := storage.GetJSON(s.store.For(scope), types.KeySession, &sess)
		if err != nil {
			return types.Session{}, false, err
		}
		if !ok || !sess.IsLoggedIn {
			continue
		}

		other := scopeOrder[1-i]
		if err := storage.SetJSON(s.store.For(other), types.KeySession, sess); err != nil {
			return types.Session{}, false, err
		}
		return sess, true, nil
	}
	return types.Session{}, false, nil
}
