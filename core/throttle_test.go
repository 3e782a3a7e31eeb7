package core

import (
	"testing"
	"time"
)

func TestThrottle(t *testing.T) {
	start := time.Date(2021, time.March, 4, 17, 0, 0, 0, time.Local)
	th := NewThrottle(5 * time.Minute)

	if !th.Allow(start) {
		t.Fatal("first call should pass")
	}
	if th.Allow(start.Add(4 * time.Minute)) {
		t.Error("call inside the interval should be blocked")
	}
	if !th.Allow(start.Add(5 * time.Minute)) {
		t.Error("call after the interval should pass")
	}
	if th.Allow(start.Add(6 * time.Minute)) {
		t.Error("interval should restart from the last allowed call")
	}
}

func TestThrottleZeroInterval(t *testing.T) {
	now := time.Now()
	th := NewThrottle(0)
	for i := 0; i < 3; i++ {
		if !th.Allow(now) {
			t.Fatalf("call %d blocked with zero interval", i)
		}
	}
}
