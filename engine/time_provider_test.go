package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestTimeProvider(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(1 * time.Hour)
	mock.Advance(30 * time.Minute)
	expected := newTime.Add(90 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after advances, got %v", expected, now)
	}
}

func TestPausableClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	base := NewMockTimeProvider(start)
	pc := NewPausableClock(base)

	base.Advance(5 * time.Second)
	if got := pc.Now(); !got.Equal(start.Add(5 * time.Second)) {
		t.Fatalf("Expected running clock to follow base, got %v", got)
	}

	pc.Pause()
	base.Advance(3 * time.Second)
	if got := pc.Now(); !got.Equal(start.Add(5 * time.Second)) {
		t.Errorf("Expected paused clock to stand still, got %v", got)
	}
	pc.Pause()

	pc.Resume()
	base.Advance(2 * time.Second)
	if got := pc.Now(); !got.Equal(start.Add(7 * time.Second)) {
		t.Errorf("Expected 7s of race time, got %v", got)
	}
	if pc.PausedTotal() != 3*time.Second {
		t.Errorf("Expected 3s paused, got %v", pc.PausedTotal())
	}

	if !pc.Toggle() || !pc.IsPaused() {
		t.Error("Expected Toggle to pause")
	}
	base.Advance(time.Second)
	if pc.Toggle() || pc.IsPaused() {
		t.Error("Expected Toggle to resume")
	}
	if pc.PausedTotal() != 4*time.Second {
		t.Errorf("Expected 4s paused, got %v", pc.PausedTotal())
	}
}

func TestSchedulerRunsUntilCancelled(t *testing.T) {
	s := NewScheduler(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int64
	var lastTick atomic.Uint64
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, func(tick uint64) {
			calls.Add(1)
			lastTick.Store(tick)
			if tick == 5 {
				cancel()
			}
		})
	}()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		cancel()
		t.Fatal("Scheduler did not stop")
	}

	if calls.Load() != 5 || lastTick.Load() != 5 || s.Ticks() != 5 {
		t.Errorf("Expected exactly 5 ticks, got calls=%d last=%d ticks=%d", calls.Load(), lastTick.Load(), s.Ticks())
	}
}

func TestSchedulerDefaultsInterval(t *testing.T) {
	if NewScheduler(0).Interval() != time.Millisecond {
		t.Error("Expected non-positive interval to fall back to 1ms")
	}
}
