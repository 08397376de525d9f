// internal/notify/notify.go
// Notifikasi transient: auto-expire, bisa di-dismiss.
// Dipakai controller untuk menampilkan error/info fetch ke user.

package notify

import (
	"sync"
	"time"

	"pdp-dashboard/internal/util"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Notice struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Center menyimpan notice aktif secara thread-safe.
type Center struct {
	mu      sync.Mutex
	clock   util.Clock
	ttl     time.Duration
	notices []Notice
}

func NewCenter(ttl time.Duration, clock util.Clock) *Center {
	if clock == nil {
		clock = util.RealClock{}
	}
	return &Center{clock: clock, ttl: ttl}
}

// Add menambahkan notice baru dan mengembalikan ID-nya.
func (c *Center) Add(level Level, message string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clock.Now()
	n := Notice{
		ID:        util.NewID(),
		Level:     level,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	c.notices = append(c.notices, n)
	return n.ID
}

func (c *Center) Info(message string) string  { return c.Add(LevelInfo, message) }
func (c *Center) Error(message string) string { return c.Add(LevelError, message) }

// Dismiss menghapus notice berdasarkan ID. Tidak error jika tidak ada.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.notices {
		if n.ID == id {
			c.notices = append(c.notices[:i], c.notices[i+1:]...)
			return
		}
	}
}

// Active mengembalikan notice yang belum kedaluwarsa,
// sekaligus membuang yang sudah lewat ExpiresAt.
func (c *Center) Active() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clock.Now()
	kept := c.notices[:0]
	for _, n := range c.notices {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	c.notices = kept
	out := make([]Notice, len(kept))
	copy(out, kept)
	return out
}
