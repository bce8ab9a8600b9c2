package progress

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) OnEvent(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []EventKind
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

func fixedClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestBoard_Lifecycle(t *testing.T) {
	rec := &recorder{}
	b := NewBoard(rec)

	task := b.Add("a.txt", 10)
	require.Len(t, b.Active(), 1)
	task.Update(4)
	task.Update(10)
	task.Finish()

	assert.Empty(t, b.Active())
	assert.Equal(t, []EventKind{Added, Updated, Updated, Finished}, rec.kinds())
	assert.Equal(t, int64(10), task.Snapshot().Done)
}

func TestTask_Monotonic(t *testing.T) {
	rec := &recorder{}
	b := NewBoard(rec)
	task := b.Add("a.txt", 10)

	for _, v := range []int64{3, 2, 3, 7, 50, 9, -1} {
		task.Update(v)
	}

	var dones []int64
	for _, ev := range rec.events {
		if ev.Kind == Updated {
			dones = append(dones, ev.Task.Done)
		}
	}
	assert.Equal(t, []int64{3, 7, 10}, dones)
}

func TestTask_EndedIgnoresCalls(t *testing.T) {
	rec := &recorder{}
	b := NewBoard(rec)
	task := b.Add("a.txt", 10)
	boom := errors.New("boom")
	task.Fail(boom)
	task.Update(5)
	task.Finish()
	task.Fail(boom)

	assert.Equal(t, []EventKind{Added, Failed}, rec.kinds())
	assert.ErrorIs(t, rec.events[1].Err, boom)
}

func TestBoard_ManyTasks(t *testing.T) {
	b := NewBoard()
	t1 := b.Add("one", 1)
	t2 := b.Add("two", 2)
	t3 := b.Add("three", 3)

	active := b.Active()
	require.Len(t, active, 3)
	assert.Equal(t, []string{"one", "two", "three"}, []string{active[0].Name, active[1].Name, active[2].Name})

	t2.Finish()
	active = b.Active()
	require.Len(t, active, 2)
	assert.Equal(t, t1.Snapshot().ID, active[0].ID)
	assert.Equal(t, t3.Snapshot().ID, active[1].ID)
}

func TestBoard_Subscribe(t *testing.T) {
	b := NewBoard()
	rec := &recorder{}
	b.Subscribe(rec)
	var called int
	b.Subscribe(ObserverFunc(func(ev Event) { called++ }))

	b.Add("x", 1).Finish()
	assert.Len(t, rec.events, 2)
	assert.Equal(t, 2, called)
}

func TestSnapshot_RateAndRemaining(t *testing.T) {
	b := NewBoard()
	b.now = fixedClock(time.Unix(0, 0), time.Second)
	task := b.Add("a", 100)
	task.Update(50)

	s := task.Snapshot()
	assert.Equal(t, 0.5, s.Percent())
	assert.InDelta(t, 50.0, s.Rate(), 0.001)
	assert.Equal(t, time.Second, s.Remaining())

	task.Update(100)
	assert.Equal(t, time.Duration(0), task.Snapshot().Remaining())
}

func TestSnapshot_Unknown(t *testing.T) {
	s := Snapshot{Total: 10}
	assert.Equal(t, float64(0), s.Rate())
	assert.Equal(t, time.Duration(-1), s.Remaining())
	assert.Equal(t, float64(1), Snapshot{}.Percent())
}
