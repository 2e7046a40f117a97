// Package playertest provides an in-memory player handle for loop tests.
package playertest

import (
	"sync"

	"displaybot/internal/player"
)

type Handle struct {
	mu    sync.Mutex
	sent  []string
	stops int

	once sync.Once
	done chan struct{}
}

func NewHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

func (h *Handle) Send(cmd string) error {
	if !h.Running() {
		return player.ErrNotRunning
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sent = append(h.sent, cmd)
	return nil
}

func (h *Handle) Stop() error {
	h.mu.Lock()
	h.stops++
	h.mu.Unlock()
	h.Exit()
	return nil
}

// Exit simulates the player process ending on its own.
func (h *Handle) Exit() {
	h.once.Do(func() { close(h.done) })
}

func (h *Handle) Running() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

func (h *Handle) Done() <-chan struct{} {
	return h.done
}

func (h *Handle) Sent() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.sent...)
}

func (h *Handle) Stops() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stops
}
