// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"sync"
	"time"
)

// Memory keeps runs in process memory, newest first on ListRuns.
type Memory struct {
	mu     sync.RWMutex
	runs   []Run
	nextID int64
	closed bool
	now    func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{nextID: 1, now: time.Now}
}

// SaveRun stores a copy of r and returns its ID.
func (m *Memory) SaveRun(ctx context.Context, r *Run) (int64, error) {
	if r == nil {
		return 0, ErrNilRun
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrClosed
	}

	c := copyRun(*r)
	c.ID = m.nextID
	c.CreatedAt = m.now()
	m.nextID++
	m.runs = append(m.runs, c)

	return c.ID, nil
}

// ListRuns returns up to limit runs, newest first. limit <= 0 returns all.
func (m *Memory) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}

	n := len(m.runs)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Run, 0, n)
	for i := len(m.runs) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, copyRun(m.runs[i]))
	}

	return out, nil
}

// Close marks the store closed. Later calls return ErrClosed.
func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	return nil
}

func copyRun(r Run) Run {
	if r.XGenerated != nil {
		r.XGenerated = append([]complex128(nil), r.XGenerated...)
	}
	if r.XFound != nil {
		r.XFound = append([]complex128(nil), r.XFound...)
	}

	return r
}
