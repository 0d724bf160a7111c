package services

import (
	"sync/atomic"
	"testing"
)

func TestDispatcherRunsTasksAndDrains(t *testing.T) {
	dispatcher := NewDispatcher()

	var ran int32
	for i := 0; i < 5; i++ {
		dispatcher.Dispatch("task", func() {
			atomic.AddInt32(&ran, 1)
		})
	}
	dispatcher.Stop()

	if got := atomic.LoadInt32(&ran); got != 5 {
		t.Fatalf("expected 5 tasks to run, got %d", got)
	}
}

func TestDispatcherDropsTasksAfterStop(t *testing.T) {
	dispatcher := NewDispatcher()
	dispatcher.Stop()

	ran := false
	dispatcher.Dispatch("late", func() { ran = true })

	if ran {
		t.Fatalf("task dispatched after Stop must not run")
	}
}

func TestDispatcherRecoversFromPanic(t *testing.T) {
	dispatcher := NewDispatcher()

	dispatcher.Dispatch("panics", func() { panic("boom") })
	dispatcher.Stop()
}
