// Package tui provides the Bubble Tea front end for pearldive.
// It handles the terminal UI loop, input mapping, cue rendering and the SSH
// session flow.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pearldive/internal/progression"
)

// timerMsg is delivered when a scheduled task is due. owner identifies the
// scheduler that issued it; task ids are only unique within one scheduler.
type timerMsg struct {
	owner uint64
	id    uint64
}

// schedulerSeq hands out scheduler identities.
var schedulerSeq atomic.Uint64

// CommandScheduler implements progression.Scheduler with Bubble Tea
// commands. AfterFunc only records the task; Drain turns recorded tasks into
// tea.Tick commands and Fire runs a due task inside Update. Everything runs
// on the program's update goroutine.
type CommandScheduler struct {
	owner  uint64
	nextID uint64
	tasks  map[uint64]*scheduledTask
	queued []*scheduledTask
}

type scheduledTask struct {
	id    uint64
	delay time.Duration
	f     func()
	owner *CommandScheduler
	done  bool
}

// Stop cancels the task. It returns false if the task already ran or was stopped.
func (t *scheduledTask) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	delete(t.owner.tasks, t.id)
	return true
}

// NewCommandScheduler creates an empty scheduler.
func NewCommandScheduler() *CommandScheduler {
	return &CommandScheduler{
		owner: schedulerSeq.Add(1),
		tasks: make(map[uint64]*scheduledTask),
	}
}

// AfterFunc records f to run after d.
func (s *CommandScheduler) AfterFunc(d time.Duration, f func()) progression.Timer {
	s.nextID++
	t := &scheduledTask{id: s.nextID, delay: d, f: f, owner: s}
	s.tasks[t.id] = t
	s.queued = append(s.queued, t)
	return t
}

// Drain returns a command that delivers a timerMsg for every task recorded
// since the last call, or nil when there is none.
func (s *CommandScheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(s.queued))
	for _, t := range s.queued {
		if t.done {
			continue
		}
		msg := timerMsg{owner: s.owner, id: t.id}
		cmds = append(cmds, tea.Tick(t.delay, func(time.Time) tea.Msg {
			return msg
		}))
	}
	s.queued = nil

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Fire runs the task with the given id unless it was stopped or already ran.
func (s *CommandScheduler) Fire(id uint64) bool {
	t, ok := s.tasks[id]
	if !ok || t.done {
		return false
	}
	t.done = true
	delete(s.tasks, id)
	t.f()
	return true
}

// Deliver fires the task a timerMsg refers to. Messages issued by another
// scheduler are ignored.
func (s *CommandScheduler) Deliver(msg timerMsg) bool {
	if msg.owner != s.owner {
		return false
	}
	return s.Fire(msg.id)
}

// Pending returns the number of tasks that have not run or been stopped.
func (s *CommandScheduler) Pending() int {
	return len(s.tasks)
}

var _ progression.Scheduler = (*CommandScheduler)(nil)
