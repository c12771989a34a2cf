package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Writer applies saves in the background so callers never wait on storage.
// Pending writes are coalesced per key: only the latest snapshot of a key is
// written. Failures are logged and dropped.
type Writer struct {
	store   Store
	timeout time.Duration

	mu      sync.Mutex
	pending map[string][]byte // nil value means delete
	closed  bool

	flushMu   sync.Mutex
	wake      chan struct{}
	closing   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func NewWriter(s Store, timeout time.Duration) *Writer {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	w := &Writer{
		store:   s,
		timeout: timeout,
		pending: make(map[string][]byte),
		wake:    make(chan struct{}, 1),
		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

// Save queues v, encoded as JSON now, to be stored under key.
func (w *Writer) Save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("encode %s: %v", key, err)
		return
	}
	w.enqueue(key, data)
}

// Delete queues the removal of key, superseding any pending save.
func (w *Writer) Delete(key string) {
	w.enqueue(key, nil)
}

func (w *Writer) enqueue(key string, data []byte) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		log.Printf("writer closed, dropping %s", key)
		return
	}
	w.pending[key] = data
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *Writer) run() {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
			w.Flush()
		case <-w.closing:
			w.Flush()
			return
		}
	}
}

// Flush writes everything queued so far before returning.
func (w *Writer) Flush() {
	w.flushMu.Lock()
	defer w.flushMu.Unlock()

	w.mu.Lock()
	batch := w.pending
	w.pending = make(map[string][]byte)
	w.mu.Unlock()

	for key, data := range batch {
		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		var err error
		if data == nil {
			err = w.store.Delete(ctx, key)
		} else {
			err = w.store.Save(ctx, key, data)
		}
		cancel()
		if err != nil {
			log.Printf("save %s: %v", key, err)
		}
	}
}

// Close stops accepting writes, drains the queue and waits for the
// background loop to exit.
func (w *Writer) Close() {
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()
		close(w.closing)
	})
	<-w.done
}
