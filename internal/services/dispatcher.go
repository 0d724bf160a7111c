package services

import (
	"log"
	"sync"
)

// Dispatcher runs best-effort side effects (report rendering, email) in the
// background so the finalize response does not wait on them. There is no
// queue and no retry; Stop drains in-flight work for a clean shutdown.
type Dispatcher interface {
	Dispatch(name string, fn func())
	Stop()
}

type dispatcher struct {
	wg      sync.WaitGroup
	mu      sync.Mutex
	stopped bool
}

func NewDispatcher() Dispatcher {
	return &dispatcher{}
}

// Dispatch implements Dispatcher.
func (d *dispatcher) Dispatch(name string, fn func()) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		log.Printf("⚠️  Dispatcher stopped, dropping task %s\n", name)
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("❌ Task %s panicked: %v\n", name, r)
			}
		}()
		fn()
	}()
}

// Stop implements Dispatcher.
func (d *dispatcher) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
	d.wg.Wait()
}
