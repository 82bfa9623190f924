package slotlock

import (
	"context"
	"sync"
)

type memorySlot struct {
	ch   chan struct{}
	refs int
}

// MemoryLocker keeps one semaphore per active key inside the process.
type MemoryLocker struct {
	mu    sync.Mutex
	slots map[string]*memorySlot
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{slots: make(map[string]*memorySlot)}
}

func (l *MemoryLocker) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	slot, ok := l.slots[key]
	if !ok {
		slot = &memorySlot{ch: make(chan struct{}, 1)}
		l.slots[key] = slot
	}
	slot.refs++
	l.mu.Unlock()

	select {
	case slot.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, slot)
		return nil, timeoutError(ctx)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-slot.ch
			l.unref(key, slot)
		})
	}, nil
}

func (l *MemoryLocker) unref(key string, slot *memorySlot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot.refs--
	if slot.refs == 0 {
		delete(l.slots, key)
	}
}

// active is the number of keys currently held or waited on.
func (l *MemoryLocker) active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}
