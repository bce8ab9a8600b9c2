// Package progress tracks per-file transfer state and hands every change to
// observers, which render it. Tracking knows nothing about rendering.
package progress

import (
	"sort"
	"sync"
	"time"
)

type EventKind int

const (
	Added EventKind = iota
	Updated
	Finished
	Failed
)

func (k EventKind) String() string {
	switch k {
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Snapshot is the state of a task at the time of an event.
type Snapshot struct {
	ID      int
	Name    string
	Total   int64
	Done    int64
	Started time.Time
	Time    time.Time
}

func (s Snapshot) Percent() float64 {
	if s.Total <= 0 {
		return 1
	}
	return float64(s.Done) / float64(s.Total)
}

// Rate is the average speed in bytes per second since the task started.
func (s Snapshot) Rate() float64 {
	elapsed := s.Time.Sub(s.Started).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.Done) / elapsed
}

// Remaining estimates the time left, -1 when unknown.
func (s Snapshot) Remaining() time.Duration {
	if s.Done >= s.Total {
		return 0
	}
	rate := s.Rate()
	if rate <= 0 {
		return -1
	}
	return time.Duration(float64(s.Total-s.Done) / rate * float64(time.Second))
}

type Event struct {
	Kind EventKind
	Task Snapshot
	Err  error
}

type Observer interface {
	OnEvent(ev Event)
}

type ObserverFunc func(ev Event)

func (f ObserverFunc) OnEvent(ev Event) {
	f(ev)
}

// Board owns the active tasks. It is safe for concurrent use, observers
// are called one event at a time, in order.
type Board struct {
	mu        sync.Mutex
	nextID    int
	active    map[int]*Task
	observers []Observer
	now       func() time.Time
}

func NewBoard(observers ...Observer) *Board {
	return &Board{
		active:    make(map[int]*Task),
		observers: observers,
		now:       time.Now,
	}
}

func (b *Board) Subscribe(o Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.observers = append(b.observers, o)
}

// Add starts tracking a transfer of total bytes.
func (b *Board) Add(name string, total int64) *Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	now := b.now()
	t := &Task{
		board: b,
		snap: Snapshot{
			ID:      b.nextID,
			Name:    name,
			Total:   max(total, 0),
			Started: now,
			Time:    now,
		},
	}
	b.active[t.snap.ID] = t
	b.emitLocked(Event{Kind: Added, Task: t.snap})
	return t
}

// Active returns the running tasks ordered by creation.
func (b *Board) Active() []Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Snapshot, 0, len(b.active))
	for _, t := range b.active {
		out = append(out, t.snap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (b *Board) emitLocked(ev Event) {
	for _, o := range b.observers {
		o.OnEvent(ev)
	}
}

// Task is one file transfer. Calls after Finish or Fail are ignored.
type Task struct {
	board *Board
	snap  Snapshot
	ended bool
}

// Update records done bytes. Progress never goes back and is capped at the total.
func (t *Task) Update(done int64) {
	b := t.board
	b.mu.Lock()
	defer b.mu.Unlock()
	if t.ended {
		return
	}
	done = min(done, t.snap.Total)
	if done <= t.snap.Done {
		return
	}
	t.snap.Done = done
	t.snap.Time = b.now()
	b.emitLocked(Event{Kind: Updated, Task: t.snap})
}

func (t *Task) Finish() {
	t.end(Finished, nil)
}

func (t *Task) Fail(err error) {
	t.end(Failed, err)
}

func (t *Task) end(kind EventKind, err error) {
	b := t.board
	b.mu.Lock()
	defer b.mu.Unlock()
	if t.ended {
		return
	}
	t.ended = true
	t.snap.Time = b.now()
	delete(b.active, t.snap.ID)
	b.emitLocked(Event{Kind: kind, Task: t.snap, Err: err})
}

func (t *Task) Snapshot() Snapshot {
	t.board.mu.Lock()
	defer t.board.mu.Unlock()
	return t.snap
}
