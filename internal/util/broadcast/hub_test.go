package broadcast

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(buffer int) *Hub[string] {
	return NewHub[string]("test", buffer, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_PublishReachesEverySubscriber(t *testing.T) {
	hub := newTestHub(4)
	a := hub.Subscribe()
	b := hub.Subscribe()

	delivered := hub.Publish("sos")

	assert.Equal(t, 2, delivered)
	assert.Equal(t, "sos", <-a.Events())
	assert.Equal(t, "sos", <-b.Events())
}

func TestHub_LateSubscriberSeesNothingEarlier(t *testing.T) {
	hub := newTestHub(4)
	hub.Publish("before")

	late := hub.Subscribe()
	hub.Publish("after")

	assert.Equal(t, "after", <-late.Events())
	assert.Empty(t, late.Events())
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub := newTestHub(1)

	assert.Equal(t, 0, hub.Publish("nobody"))
}

func TestHub_FullQueueDropsWithoutBlocking(t *testing.T) {
	hub := newTestHub(1)
	sub := hub.Subscribe()

	assert.Equal(t, 1, hub.Publish("first"))
	assert.Equal(t, 0, hub.Publish("second"))

	assert.Equal(t, "first", <-sub.Events())
	assert.Empty(t, sub.Events())
}

func TestSubscription_UnsubscribeIsIdempotent(t *testing.T) {
	hub := newTestHub(1)
	sub := hub.Subscribe()

	sub.Unsubscribe()
	sub.Unsubscribe()

	_, ok := <-sub.Events()
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Len())
	assert.Equal(t, 0, hub.Publish("ignored"))
}

func TestHub_CloseReleasesSubscribers(t *testing.T) {
	hub := newTestHub(1)
	a := hub.Subscribe()
	b := hub.Subscribe()

	hub.Close()
	hub.Close()

	for _, sub := range []*Subscription[string]{a, b} {
		_, ok := <-sub.Events()
		assert.False(t, ok)
	}

	// unsubscribing after close must not panic
	a.Unsubscribe()

	afterClose := hub.Subscribe()
	_, ok := <-afterClose.Events()
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Publish("ignored"))
}

func TestHub_ConcurrentPublishAndUnsubscribe(t *testing.T) {
	hub := newTestHub(8)
	subs := make([]*Subscription[string], 10)
	for i := range subs {
		subs[i] = hub.Subscribe()
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 100 {
			hub.Publish("tick")
		}
	}()
	go func() {
		defer wg.Done()
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	}()
	wg.Wait()

	require.Equal(t, 0, hub.Len())
}
