package feed

import (
	"context"
	"sync"
)

type subscriber struct {
	ch chan struct{}
}

// MemoryFeed fans signals out to subscribers of the same process.
type MemoryFeed struct {
	mu     sync.Mutex
	topics map[string]map[*subscriber]struct{}
}

func NewMemoryFeed() *MemoryFeed {
	return &MemoryFeed{topics: make(map[string]map[*subscriber]struct{})}
}

func (f *MemoryFeed) Publish(_ context.Context, restaurantID, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for sub := range f.topics[Topic(restaurantID, date)] {
		notify(sub.ch)
	}
	return nil
}

func (f *MemoryFeed) Subscribe(_ context.Context, restaurantID, date string) (<-chan struct{}, func(), error) {
	topic := Topic(restaurantID, date)
	sub := &subscriber{ch: make(chan struct{}, 1)}

	f.mu.Lock()
	if f.topics[topic] == nil {
		f.topics[topic] = make(map[*subscriber]struct{})
	}
	f.topics[topic][sub] = struct{}{}
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.topics[topic], sub)
			if len(f.topics[topic]) == 0 {
				delete(f.topics, topic)
			}
			close(sub.ch)
		})
	}
	return sub.ch, cancel, nil
}

func (f *MemoryFeed) subscribers(restaurantID, date string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.topics[Topic(restaurantID, date)])
}
