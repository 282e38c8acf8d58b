package storage

import (
	"context"
	"time"

	"github.com/gofrs/flock"
)

// FileLock is the cross-process exclusion the file store takes around
// every write, so two invocations sharing a pantry file cannot
// interleave a read-modify-write.
type FileLock interface {
	// TryLockContext attempts to acquire an exclusive lock, retrying
	// until the context is done.
	TryLockContext(ctx context.Context, retryInterval time.Duration) (bool, error)

	// Unlock releases the lock.
	Unlock() error
}

// FileLockFactory creates FileLock instances for a lock file path.
type FileLockFactory interface {
	New(path string) FileLock
}

// FlockFactory is the default factory using github.com/gofrs/flock.
type FlockFactory struct{}

func (FlockFactory) New(path string) FileLock {
	return flock.New(path)
}
