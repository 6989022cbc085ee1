package tui

import (
	"testing"
	"time"
)

func TestCommandSchedulerFiresOnce(t *testing.T) {
	s := NewCommandScheduler()
	calls := 0
	s.AfterFunc(time.Millisecond, func() { calls++ })

	if s.Pending() != 1 {
		t.Fatalf("expected 1 pending task, got %d", s.Pending())
	}
	if !s.Fire(1) {
		t.Fatal("expected first Fire to run the task")
	}
	if s.Fire(1) {
		t.Error("expected second Fire to be a no-op")
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if s.Pending() != 0 {
		t.Errorf("expected no pending tasks, got %d", s.Pending())
	}
}

func TestCommandSchedulerStoppedNeverFires(t *testing.T) {
	s := NewCommandScheduler()
	calls := 0
	timer := s.AfterFunc(time.Millisecond, func() { calls++ })

	if !timer.Stop() {
		t.Fatal("expected Stop to cancel a pending task")
	}
	if timer.Stop() {
		t.Error("expected second Stop to report false")
	}
	if s.Fire(1) {
		t.Error("stopped task must not fire")
	}
	if calls != 0 {
		t.Errorf("expected 0 calls, got %d", calls)
	}
	if cmd := s.Drain(); cmd != nil {
		t.Error("expected Drain to skip stopped tasks")
	}
}

func TestCommandSchedulerDrain(t *testing.T) {
	s := NewCommandScheduler()
	if cmd := s.Drain(); cmd != nil {
		t.Error("expected nil command with nothing queued")
	}

	s.AfterFunc(time.Millisecond, func() {})
	if cmd := s.Drain(); cmd == nil {
		t.Fatal("expected a command for a queued task")
	}
	if cmd := s.Drain(); cmd != nil {
		t.Error("expected queue to be empty after Drain")
	}
	if s.Pending() != 1 {
		t.Errorf("drained task should still be pending, got %d", s.Pending())
	}
}

// fireAll runs due tasks until the scheduler is idle.
func fireAll(t *testing.T, s *CommandScheduler) {
	t.Helper()
	for i := 0; i < 1000 && s.Pending() > 0; i++ {
		for id := range s.tasks {
			s.Fire(id)
		}
	}
	if s.Pending() > 0 {
		t.Fatalf("scheduler did not settle, %d tasks left", s.Pending())
	}
}

func TestCommandSchedulerIgnoresForeignMessages(t *testing.T) {
	old := NewCommandScheduler()
	old.AfterFunc(time.Millisecond, func() {})

	s := NewCommandScheduler()
	calls := 0
	s.AfterFunc(time.Millisecond, func() { calls++ })

	if s.owner == old.owner {
		t.Fatal("schedulers must have distinct identities")
	}
	if s.Deliver(timerMsg{owner: old.owner, id: 1}) {
		t.Error("message from another scheduler must not fire")
	}
	if calls != 0 {
		t.Errorf("expected 0 calls, got %d", calls)
	}
	if !s.Deliver(timerMsg{owner: s.owner, id: 1}) || calls != 1 {
		t.Errorf("own message should fire once, calls = %d", calls)
	}
}
