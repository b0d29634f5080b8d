// Package frame drives per-frame callbacks for the game sessions. It stands in
// for a display refresh loop: a host (ebiten's Update, a terminal ticker, a test)
// calls Once for every refresh and the scheduler fans that out to the registered
// callbacks.
package frame

import (
	"context"
	"sync"
	"time"

	"github.com/kamstrup/intmap"
)

// Frame describes a single display refresh.
type Frame struct {
	Now       time.Time
	DeltaTime float64
}

// Callback is invoked once per frame until its handle is cancelled.
type Callback func(f *Frame)

// Handle identifies a registered callback. The zero Handle is never issued.
type Handle uint64

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	CallbackCount   int
	Frames          int64
	TotalExecutions int64
	Callbacks       []CallbackStats
}

// CallbackStats provides execution statistics for a single callback.
type CallbackStats struct {
	Name           string
	Handle         Handle
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type callbackStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type entry struct {
	handle    Handle
	name      string
	fn        Callback
	cancelled bool
	stats     callbackStatsInternal
}

// Scheduler runs registered callbacks in registration order, once per frame.
// All methods except Defer must be called from the frame goroutine.
type Scheduler struct {
	entries    []*entry
	byHandle   *intmap.Map[Handle, *entry]
	nextHandle Handle
	running    bool
	lastFrame  time.Time
	frames     int64

	mu       sync.Mutex
	deferred []func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		entries:  make([]*entry, 0),
		byHandle: intmap.New[Handle, *entry](16),
	}
}

// Register adds a callback that runs on every subsequent frame. A callback
// registered while a frame is running first runs on the next frame.
func (s *Scheduler) Register(name string, fn Callback) Handle {
	if fn == nil {
		panic("frame: nil callback registered as " + name)
	}

	s.nextHandle++
	e := &entry{
		handle: s.nextHandle,
		name:   name,
		fn:     fn,
		stats: callbackStatsInternal{
			minDuration: time.Duration(1<<63 - 1),
		},
	}
	s.entries = append(s.entries, e)
	s.byHandle.Put(e.handle, e)
	return e.handle
}

// Cancel removes the callback behind h. It reports whether h was live.
// Cancelling from inside a callback is allowed, including a callback
// cancelling itself; the cancelled callback does not run again.
func (s *Scheduler) Cancel(h Handle) bool {
	e, ok := s.byHandle.Get(h)
	if !ok {
		return false
	}

	e.cancelled = true
	s.byHandle.Del(h)
	if !s.running {
		s.compact()
	}
	return true
}

// Active reports whether h refers to a live callback.
func (s *Scheduler) Active(h Handle) bool {
	_, ok := s.byHandle.Get(h)
	return ok
}

// Defer queues fn to run at the start of the next frame, before any callback.
// It is safe to call from any goroutine.
func (s *Scheduler) Defer(fn func()) {
	s.mu.Lock()
	s.deferred = append(s.deferred, fn)
	s.mu.Unlock()
}

// Once executes deferred work and then every live callback with now as the
// frame time.
func (s *Scheduler) Once(now time.Time) {
	s.runDeferred()

	f := &Frame{Now: now}
	if !s.lastFrame.IsZero() {
		f.DeltaTime = now.Sub(s.lastFrame).Seconds()
	}
	s.lastFrame = now
	s.frames++

	s.running = true
	n := len(s.entries)
	for i := 0; i < n; i++ {
		e := s.entries[i]
		if e.cancelled {
			continue
		}

		start := time.Now()
		e.fn(f)
		duration := time.Since(start)

		stats := &e.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
	s.running = false
	s.compact()
}

// Run executes frames at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now)
		}
	}
}

func (s *Scheduler) runDeferred() {
	s.mu.Lock()
	pending := s.deferred
	s.deferred = nil
	s.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

func (s *Scheduler) compact() {
	live := s.entries[:0]
	for _, e := range s.entries {
		if !e.cancelled {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = live
}

// GetStats returns statistics about callback execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		CallbackCount: len(s.entries),
		Frames:        s.frames,
		Callbacks:     make([]CallbackStats, len(s.entries)),
	}

	var totalExecs int64
	for i, e := range s.entries {
		internal := e.stats
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Callbacks[i] = CallbackStats{
			Name:           e.name,
			Handle:         e.handle,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
