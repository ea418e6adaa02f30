package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/calpuzzle/calpuzzle/internal/puzzle"
)

// DefaultLockTimeout is the short, non-blocking window a worker waits before
// giving up on a contested configuration and moving on to the next one.
const DefaultLockTimeout = 200 * time.Millisecond

// Lock is the advisory, filesystem-based exclusive lock for one configuration,
// the idiomatic Go counterpart of the original program's portalocker.
type Lock struct {
	path string
	fl   *flock.Flock
}

// NewLock returns the lock sentinel for cfg within dir. Acquiring it does not
// create dir; callers must ensure it exists first (Store.Write does this).
func NewLock(dir string, cfg puzzle.Configuration) *Lock {
	path := filepath.Join(dir, cfg.String()+".lock")
	return &Lock{path: path, fl: flock.New(path)}
}

// TryAcquire attempts to take the lock within timeout, returning false (not an
// error) on contention — lock contention is normal control flow, not failure.
func (l *Lock) TryAcquire(ctx context.Context, timeout time.Duration) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ok, err := l.fl.TryLockContext(ctx, 10*time.Millisecond)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return false, nil // still held by another worker when timeout elapsed
		}
		return false, fmt.Errorf("%w: acquiring lock %s: %v", ErrStoreIO, l.path, err)
	}
	return ok, nil
}

// Release drops the lock and removes its sentinel file. Errors here are
// logged by the caller and otherwise ignored — a stale sentinel left behind by
// a crashed worker is cleaned up opportunistically by CleanStaleLocks.
func (l *Lock) Release() error {
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("%w: releasing lock %s: %v", ErrStoreIO, l.path, err)
	}
	return os.Remove(l.path)
}

// CleanStaleLocks best-effort removes any lock sentinel in dir that nothing
// currently holds: a worker that crashed mid-solve leaves its sentinel behind,
// and a survivor can safely claim and delete it since the OS released the
// advisory lock when the crashed process exited. Errors for individual files
// are swallowed; the caller logs and moves on per SPEC_FULL.md §7.
func CleanStaleLocks(dir string) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.lock"))
	if err != nil {
		return
	}
	for _, path := range matches {
		fl := flock.New(path)
		ok, err := fl.TryLock()
		if err != nil || !ok {
			continue // still held by a live worker
		}
		_ = fl.Unlock()
		_ = os.Remove(path)
	}
}
