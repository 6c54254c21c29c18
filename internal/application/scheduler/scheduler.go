package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// DefaultMaxCatchUp bounds how many missed runs of one task a single Advance replays
const DefaultMaxCatchUp = 3600

// Task is a named periodic callback. Run receives the scheduled fire time,
// not the wall clock, so replays after a stall see evenly spaced times.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(at time.Time)
}

type entry struct {
	task  Task
	order int
	next  time.Time
	runs  int64
}

// Stats describes one registered task
type Stats struct {
	Name     string
	Interval time.Duration
	Runs     int64
	Next     time.Time
}

// Scheduler fires registered tasks against an injected clock.
// It is not safe for concurrent use; drive it from a single goroutine.
type Scheduler struct {
	clock      shared.Clock
	entries    []*entry
	maxCatchUp int
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithMaxCatchUp caps replays per task per Advance. Runs beyond the cap are dropped.
func WithMaxCatchUp(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.maxCatchUp = n
		}
	}
}

// New creates a scheduler driven by clock
func New(clock shared.Clock, opts ...Option) *Scheduler {
	s := &Scheduler{clock: clock, maxCatchUp: DefaultMaxCatchUp}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register adds a task whose first run is one interval from now
func (s *Scheduler) Register(task Task) error {
	if task.Name == "" {
		return fmt.Errorf("task name cannot be empty")
	}
	if task.Interval <= 0 {
		return fmt.Errorf("task %s: interval must be positive, got %s", task.Name, task.Interval)
	}
	if task.Run == nil {
		return fmt.Errorf("task %s: run function cannot be nil", task.Name)
	}
	for _, e := range s.entries {
		if e.task.Name == task.Name {
			return fmt.Errorf("task %s already registered", task.Name)
		}
	}

	s.entries = append(s.entries, &entry{
		task:  task,
		order: len(s.entries),
		next:  s.clock.Now().Add(task.Interval),
	})
	return nil
}

// Advance fires every task that is due at the clock's current time and returns
// the number of runs. Runs fire in scheduled-time order; ties go to the task
// registered first.
func (s *Scheduler) Advance() int {
	now := s.clock.Now()
	fired := make(map[*entry]int, len(s.entries))
	total := 0

	for {
		due := s.nextDue(now, fired)
		if due == nil {
			break
		}
		at := due.next
		due.next = at.Add(due.task.Interval)
		due.runs++
		fired[due]++
		total++
		due.task.Run(at)
	}

	// Tasks that hit the catch-up cap resume one interval after now
	for e, n := range fired {
		if n >= s.maxCatchUp && !e.next.After(now) {
			e.next = now.Add(e.task.Interval)
		}
	}
	return total
}

func (s *Scheduler) nextDue(now time.Time, fired map[*entry]int) *entry {
	var best *entry
	for _, e := range s.entries {
		if e.next.After(now) || fired[e] >= s.maxCatchUp {
			continue
		}
		if best == nil || e.next.Before(best.next) {
			best = e
		}
	}
	return best
}

// Run calls Advance every resolution until ctx is cancelled
func (s *Scheduler) Run(ctx context.Context, resolution time.Duration) error {
	if resolution <= 0 {
		return fmt.Errorf("resolution must be positive, got %s", resolution)
	}

	ticker := time.NewTicker(resolution)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Advance()
		}
	}
}

// Tasks reports the registered tasks in registration order
func (s *Scheduler) Tasks() []Stats {
	out := make([]Stats, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, Stats{Name: e.task.Name, Interval: e.task.Interval, Runs: e.runs, Next: e.next})
	}
	return out
}
