package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/footprint-tools/consoleapp/internal/paths"
)

const (
	lockFileName     = ".consolerc.lock"
	staleLockAge     = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

// lockTimeout bounds how long a config command waits for another shell.
var lockTimeout = 5 * time.Second

// ErrLockTimeout is returned when the lock cannot be acquired in time.
var ErrLockTimeout = errors.New("config: lock timeout")

// fileLock is an O_EXCL lock file beside the dotfile, holding the owner's pid.
type fileLock struct {
	path string
	file *os.File
}

// WithLock runs fn while holding the dotfile lock, so that two shells
// editing settings at once do not lose each other's writes.
func WithLock(fn func() error) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	lock := &fileLock{path: filepath.Join(filepath.Dir(configPath), lockFileName)}
	if err := lock.acquire(time.Now().Add(lockTimeout)); err != nil {
		return err
	}
	defer lock.release()

	return fn()
}

func (l *fileLock) acquire(deadline time.Time) error {
	for {
		l.clearStale()

		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			l.file = f
			return nil
		}
		if !errors.Is(err, os.ErrExist) {
			return fmt.Errorf("config: create lock %s: %w", l.path, err)
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("%w: %s held by another shell", ErrLockTimeout, l.path)
		}
		time.Sleep(lockPollInterval)
	}
}

// clearStale drops a lock left behind by a shell that died holding it.
func (l *fileLock) clearStale() {
	if info, err := os.Stat(l.path); err == nil && time.Since(info.ModTime()) > staleLockAge {
		_ = os.Remove(l.path)
	}
}

func (l *fileLock) release() {
	if l.file != nil {
		_ = l.file.Close()
	}
	_ = os.Remove(l.path)
}
