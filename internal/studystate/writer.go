package studystate

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/munhak/internal/store"
)

// writer is a write-behind queue in front of a store.KV.
//
// A single worker drains keys in first-enqueued order, so at most one write
// per key is ever in flight. Enqueueing a key that already has a pending
// value replaces that value; the latest state is what reaches the store.
// Failed writes are logged and dropped.
type writer struct {
	kv  store.KV
	log logrus.FieldLogger

	mu      sync.Mutex
	cond    *sync.Cond
	pending map[string][]byte
	queue   []string
	busy    bool
	closed  bool
	exited  bool
	done    chan struct{}
}

func newWriter(kv store.KV, log logrus.FieldLogger) *writer {
	w := &writer{
		kv:      kv,
		log:     log,
		pending: make(map[string][]byte),
		done:    make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

// enqueue schedules value to be written under key.
func (w *writer) enqueue(key string, value []byte) {
	w.mu.Lock()
	if w.exited {
		w.mu.Unlock()
		w.write(key, value)
		return
	}
	if _, ok := w.pending[key]; !ok {
		w.queue = append(w.queue, key)
	}
	w.pending[key] = value
	w.cond.Broadcast()
	w.mu.Unlock()
}

func (w *writer) run() {
	defer close(w.done)
	for {
		w.mu.Lock()
		for len(w.queue) == 0 && !w.closed {
			w.cond.Wait()
		}
		if len(w.queue) == 0 {
			w.exited = true
			w.cond.Broadcast()
			w.mu.Unlock()
			return
		}
		key := w.queue[0]
		w.queue = w.queue[1:]
		value := w.pending[key]
		delete(w.pending, key)
		w.busy = true
		w.mu.Unlock()

		w.write(key, value)

		w.mu.Lock()
		w.busy = false
		w.cond.Broadcast()
		w.mu.Unlock()
	}
}

func (w *writer) write(key string, value []byte) {
	if err := w.kv.Set(context.Background(), key, value); err != nil {
		w.log.WithError(err).WithField("key", key).Warn("persist failed")
		return
	}
	w.log.WithField("key", key).WithField("bytes", len(value)).Debug("persisted")
}

// flush blocks until every enqueued write has been attempted or ctx ends.
func (w *writer) flush(ctx context.Context) error {
	idle := make(chan struct{})
	var gaveUp bool
	go func() {
		w.mu.Lock()
		for (len(w.queue) > 0 || w.busy) && !w.exited && !gaveUp {
			w.cond.Wait()
		}
		w.mu.Unlock()
		close(idle)
	}()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		// Wake the waiter so it does not outlive the call.
		w.mu.Lock()
		gaveUp = true
		w.cond.Broadcast()
		w.mu.Unlock()
		<-idle
		return ctx.Err()
	}
}

// close drains the queue and stops the worker. Writes enqueued afterwards
// go straight to the store.
func (w *writer) close(ctx context.Context) error {
	w.mu.Lock()
	w.closed = true
	w.cond.Broadcast()
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
