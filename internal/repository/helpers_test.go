package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/whitebay/backoffice/internal/store"
)

var testNow = time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

// --- Counting backend ---

type countingBackend struct {
	*store.MemoryBackend
	mu   sync.Mutex
	sets map[string]int
}

func newCountingBackend() *countingBackend {
	return &countingBackend{MemoryBackend: store.NewMemoryBackend(), sets: map[string]int{}}
}

func (b *countingBackend) Set(ctx context.Context, key, value string) error {
	b.mu.Lock()
	b.sets[key]++
	b.mu.Unlock()
	return b.MemoryBackend.Set(ctx, key, value)
}

func (b *countingBackend) writes(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sets[key]
}

// --- Recording notifier ---

type recordingNotifier struct {
	mu   sync.Mutex
	keys []string
}

func (n *recordingNotifier) Publish(routingKey string, payload any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.keys = append(n.keys, routingKey)
	return nil
}

func newTestRepos(t *testing.T) (*Repositories, *countingBackend, *recordingNotifier) {
	t.Helper()
	backend := newCountingBackend()
	notifier := &recordingNotifier{}
	repos := New(Deps{
		Store:    store.New(backend, nil),
		Notifier: notifier,
		Clock:    func() time.Time { return testNow },
	})
	return repos, backend, notifier
}
