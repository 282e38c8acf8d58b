// Package storage provides the persistence layer for the pantry: a
// small key-value contract over raw JSON values, available in two
// durability scopes. The persistent scope is a JSON file on disk that
// survives restarts; the session scope lives only as long as the
// process, the way browser sessionStorage lives only as long as a tab.
//
// Serialization, key naming, and reconciliation between the scopes are
// the caller's responsibility. There are no transactions: concurrent
// writers race and the last write wins.
package storage

import (
	"encoding/json"
	"reflect"
)

// Scope identifies a durability tier.
type Scope int

const (
	// ScopeSession data lasts for the current process only.
	ScopeSession Scope = iota

	// ScopePersistent data survives restarts.
	ScopePersistent
)

func (s Scope) String() string {
	switch s {
	case ScopeSession:
		return "session"
	case ScopePersistent:
		return "persistent"
	default:
		return "unknown"
	}
}

// KV is the record store contract. Values are raw JSON. Get reports
// ok=false for absent keys; malformed stored state never surfaces as an
// error from Get, it surfaces as absence.
type KV interface {
	// Get returns the raw value for key, if present.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys returns all present keys in unspecified order.
	Keys() ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}

// Dual bundles one store per scope. The session/auth gate writes the
// session record through both; collections use the persistent side.
type Dual struct {
	Session    KV
	Persistent KV
}

// For returns the store for the given scope.
func (d Dual) For(s Scope) KV {
	if s == ScopeSession {
		return d.Session
	}
	return d.Persistent
}

// Close closes both stores, returning the first error.
func (d Dual) Close() error {
	err := d.Session.Close()
	if perr := d.Persistent.Close(); err == nil {
		err = perr
	}
	return err
}

// GetJSON decodes the value under key into out, which must be a
// non-nil pointer. Absent or malformed values leave out untouched and
// report ok=false, so callers fall back to their default. Decoding
// goes through a scratch value: a blob that fails partway (say, one
// well-formed record followed by a type mismatch) must not leak its
// partial result into out.
func GetJSON(kv KV, key string, out any) (bool, error) {
	raw, ok, err := kv.Get(key)
	if err != nil || !ok {
		return false, err
	}
	tmp := reflect.New(reflect.TypeOf(out).Elem())
	if json.Unmarshal(raw, tmp.Interface()) != nil {
		return false, nil
	}
	reflect.ValueOf(out).Elem().Set(tmp.Elem())
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(kv KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(key, raw)
}
