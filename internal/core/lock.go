//go:build !nofs

package core

import (
	"os"
	"syscall"
	"time"

	"github.com/cenkalti/backoff"

	"github.com/Fuabioo/tzkit/internal/errors"
)

// lockTimeout bounds how long Pack waits for another writer of the same
// archive.
const lockTimeout = 5 * time.Second

// Lock represents a file-based lock using flock.
type Lock struct {
	file *os.File
	path string
}

// AcquireExclusive acquires an exclusive lock on the given path, retrying
// with exponential backoff until the lock is acquired or timeout is
// reached. A zero timeout tries once.
func AcquireExclusive(path string, timeout time.Duration) (*Lock, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, errors.FS(path, err)
	}

	var retry backoff.BackOff = &backoff.StopBackOff{}
	if timeout > 0 {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = 25 * time.Millisecond
		b.MaxInterval = 250 * time.Millisecond
		b.MaxElapsedTime = timeout
		retry = b
	}

	err = backoff.Retry(func() error {
		err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
		if err != nil && err != syscall.EWOULDBLOCK {
			return backoff.Permanent(err)
		}
		return err
	}, retry)
	if err != nil {
		file.Close()
		if err == syscall.EWOULDBLOCK {
			return nil, errors.IO(err).Context(errors.Adhocf("lock not acquired within %s", timeout)).Path(path)
		}
		return nil, errors.FS(path, err)
	}

	return &Lock{file: file, path: path}, nil
}

// Release releases the lock and closes the lock file. The file stays in
// place: a waiter may already hold a descriptor for it, and a new file at
// the same path would let a later caller lock a different inode.
func (l *Lock) Release() error {
	if l.file == nil {
		return errors.Adhoc("lock already released").Path(l.path)
	}

	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		l.file.Close()
		return errors.FS(l.path, err)
	}

	err := l.file.Close()
	l.file = nil
	if err != nil {
		return errors.FS(l.path, err)
	}
	return nil
}
