package logs

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrFollowerRunning is returned when another process already follows the log.
var ErrFollowerRunning = errors.New("another follower is attached to this log")

// FollowLock is an advisory lock held for the lifetime of a follow session.
type FollowLock struct {
	path string
	lock *flock.Flock
}

// LockPath returns the lock file used for logPath under stateDir.
func LockPath(stateDir, logPath string) (string, error) {
	abs, err := filepath.Abs(logPath)
	if err != nil {
		return "", fmt.Errorf("resolve log path: %w", err)
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(stateDir, hex.EncodeToString(sum[:])[:16]+".lock"), nil
}

// AcquireFollowLock takes the follow lock for logPath without blocking.
func AcquireFollowLock(stateDir, logPath string) (*FollowLock, error) {
	lockPath, err := LockPath(stateDir, logPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	fl := flock.New(lockPath)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire follow lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFollowerRunning, logPath)
	}
	return &FollowLock{path: lockPath, lock: fl}, nil
}

// Path returns the lock file location.
func (l *FollowLock) Path() string {
	return l.path
}

// Release unlocks. It is safe to call more than once.
func (l *FollowLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release follow lock: %w", err)
	}
	return nil
}
