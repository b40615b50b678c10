package jsondb

import (
	"sync"
	"time"
)

var (
	idMu     sync.Mutex
	idLastMs int64
)

// NewID generates a new time-based record identifier: the current Unix
// time in milliseconds, bumped by one when the clock has not advanced
// since the previous call. IDs are strictly monotonic within a process;
// collisions with writers in other processes are not guarded here, Create
// re-draws against the loaded document instead.
func NewID() ID {
	idMu.Lock()
	defer idMu.Unlock()

	ms := time.Now().UnixMilli()
	if ms <= idLastMs {
		ms = idLastMs + 1
	}
	idLastMs = ms
	return ID(ms)
}
