// Package bench is the comparison harness behind cmd/lvbench.
//
// It times three phases — construction by appending, random access at the
// midpoint, and deletion at the midpoint — for a LinkedVector and for the
// containers it competes with: a plain slice, the stdlib container/list, and
// a ring-buffer deque. Memory estimates accompany each phase so the
// never-shrinks accounting of LinkedVector is visible next to the others.
package bench

import (
	"container/list"
	"log/slog"
	"time"

	"github.com/gammazero/deque"

	"github.com/differental/linkedvec"
)

// Result is one timed phase for one container.
type Result struct {
	Container string
	Op        string
	N         int
	Elapsed   time.Duration
}

// Suite runs the comparison phases for one element type.
type Suite[T any] struct {
	Label   string // suite name used in log output
	N       int    // number of elements to build
	Element T      // value pushed N times
	Logger  *slog.Logger
}

func timed(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// Run executes every phase for every container and returns the timings.
// Results and memory reports are also written to the suite's logger.
func (s *Suite[T]) Run() []Result {
	log := s.Logger
	if log == nil {
		log = slog.Default()
	}

	var results []Result
	record := func(container, op string, d time.Duration) {
		results = append(results, Result{Container: container, Op: op, N: s.N, Elapsed: d})
		log.Info(op, "suite", s.Label, "container", container, "n", s.N, "took", d)
	}
	report := func(r MemReport) {
		log.Info("memory", "suite", s.Label, "container", r.Container,
			"len", r.Len, "used", r.HumanUsed(), "reserved", r.HumanReserved())
	}
	mid := s.N / 2

	// LinkedVector
	lv := linkedvec.NewWithCapacity[T](s.N)
	record("LinkedVector", "construct", timed(func() {
		for i := 0; i < s.N; i++ {
			lv.PushBack(s.Element)
		}
	}))
	report(reportLinkedVector(lv))
	record("LinkedVector", "access-mid", timed(func() {
		if _, err := lv.At(mid); err != nil {
			panic(err)
		}
	}))
	record("LinkedVector", "delete-mid", timed(func() {
		if _, err := lv.Delete(mid); err != nil {
			panic(err)
		}
	}))
	report(reportLinkedVector(lv))

	// slice
	sl := make([]T, 0, s.N)
	record("slice", "construct", timed(func() {
		for i := 0; i < s.N; i++ {
			sl = append(sl, s.Element)
		}
	}))
	report(reportSlice(sl))
	record("slice", "access-mid", timed(func() {
		_ = sl[mid]
	}))
	record("slice", "delete-mid", timed(func() {
		sl = append(sl[:mid], sl[mid+1:]...)
	}))
	report(reportSlice(sl))

	// container/list
	ll := list.New()
	record("container/list", "construct", timed(func() {
		for i := 0; i < s.N; i++ {
			ll.PushBack(s.Element)
		}
	}))
	report(reportList[T](ll))
	record("container/list", "access-mid", timed(func() {
		e := ll.Front()
		for i := 0; i < mid; i++ {
			e = e.Next()
		}
		_ = e.Value
	}))
	record("container/list", "delete-mid", timed(func() {
		e := ll.Front()
		for i := 0; i < mid; i++ {
			e = e.Next()
		}
		ll.Remove(e)
	}))
	report(reportList[T](ll))

	// deque
	var dq deque.Deque[T]
	dq.Grow(s.N)
	record("deque", "construct", timed(func() {
		for i := 0; i < s.N; i++ {
			dq.PushBack(s.Element)
		}
	}))
	report(reportDeque(&dq))
	record("deque", "access-mid", timed(func() {
		_ = dq.At(mid)
	}))
	record("deque", "delete-mid", timed(func() {
		dq.Remove(mid)
	}))
	report(reportDeque(&dq))

	return results
}
