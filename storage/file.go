package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"
)

// fileData is the complete on-disk document: one JSON object holding
// every record blob plus a little metadata.
type fileData struct {
	Meta    fileMeta                   `json:"meta"`
	Records map[string]json.RawMessage `json:"records"`
}

type fileMeta struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const storeVersion = "1"

const (
	lockTimeout    = 3 * time.Second
	lockRetryDelay = 100 * time.Millisecond
)

// File is a KV backed by a single JSON file. Writes go to a temp file
// followed by a rename, under a flock-based cross-process lock. A
// missing, empty, or unparseable file opens as an empty store: corrupt
// state degrades to defaults rather than failing the caller.
type File struct {
	path     string
	fs       FileSystem
	fileLock FileLock
	timeFunc func() time.Time

	mu   sync.RWMutex
	data fileData
}

// FileOption configures a File store.
type FileOption func(*File)

// WithFileSystem replaces the file system implementation, for tests.
func WithFileSystem(fsys FileSystem) FileOption {
	return func(f *File) { f.fs = fsys }
}

// WithLockFactory replaces the lock factory, for tests.
func WithLockFactory(factory FileLockFactory) FileOption {
	return func(f *File) { f.fileLock = factory.New(f.path + ".lock") }
}

// WithTimeFunc replaces the clock used for metadata timestamps.
func WithTimeFunc(fn func() time.Time) FileOption {
	return func(f *File) { f.timeFunc = fn }
}

// NewFile opens (or initializes) the store at path.
func NewFile(path string, opts ...FileOption) (*File, error) {
	f := &File{
		path:     path,
		timeFunc: time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.fs == nil {
		f.fs = OSFileSystem{}
	}
	if f.fileLock == nil {
		f.fileLock = FlockFactory{}.New(path + ".lock")
	}

	now := f.timeFunc()
	f.data = fileData{
		Meta:    fileMeta{Version: storeVersion, CreatedAt: now, UpdatedAt: now},
		Records: map[string]json.RawMessage{},
	}

	if err := f.withLock(f.load); err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// withLock runs fn while holding the cross-process file lock.
func (f *File) withLock(fn func() error) error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := f.fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("acquire lock: timed out after %s", lockTimeout)
	}
	defer func() { _ = f.fileLock.Unlock() }()

	return fn()
}

// load reads the file into memory. Caller must hold the file lock.
func (f *File) load() error {
	raw, err := f.fs.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}

	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		// Unparseable state is treated as absent; the next save
		// replaces it with a valid document.
		return nil
	}
	if data.Records == nil {
		data.Records = map[string]json.RawMessage{}
	}
	f.data = data
	return nil
}

// save writes the in-memory data back to disk atomically. Caller must
// hold the file lock and the write mutex.
func (f *File) save() error {
	f.data.Meta.UpdatedAt = f.timeFunc()

	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := f.fs.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.fs.Rename(tmp, f.path); err != nil {
		_ = f.fs.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Get implements KV.
func (f *File) Get(key string) ([]byte, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	raw, ok := f.data.Records[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

// Set implements KV.
func (f *File) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.data.Records[key]
	f.data.Records[key] = append([]byte(nil), value...)
	if err := f.withLock(f.save); err != nil {
		// Restore the previous in-memory state so memory and disk
		// do not diverge after a failed write.
		if had {
			f.data.Records[key] = prev
		} else {
			delete(f.data.Records, key)
		}
		return err
	}
	return nil
}

// Delete implements KV.
func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.data.Records[key]
	if !had {
		return nil
	}
	delete(f.data.Records, key)
	if err := f.withLock(f.save); err != nil {
		f.data.Records[key] = prev
		return err
	}
	return nil
}

// Keys implements KV.
func (f *File) Keys() ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	keys := make([]string, 0, len(f.data.Records))
	for k := range f.data.Records {
		keys = append(keys, k)
	}
	return keys, nil
}

// Close implements KV. The file store holds no open handles between
// operations, so Close has nothing to release.
func (f *File) Close() error { return nil }
