package core

import (
	"sync"
	"time"
)

// Throttle 最小间隔限流，间隔内的调用直接跳过
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	called   bool
}

func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Allow 允许调用时记录本次时间并返回 true
func (t *Throttle) Allow(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.called && t.interval > 0 && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	t.called = true
	return true
}
