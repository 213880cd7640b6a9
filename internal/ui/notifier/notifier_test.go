package notifier

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch chan Event) Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(100 * time.Millisecond):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestNotifier_SubscribeUnsubscribe(t *testing.T) {
	n := New()

	ch := n.Subscribe()
	require.NotNil(t, ch)
	assert.Equal(t, 1, n.Len())

	n.Unsubscribe(ch)
	assert.Equal(t, 0, n.Len())

	_, open := <-ch
	assert.False(t, open, "channel is closed on unsubscribe")

	// a second unsubscribe must not panic on a closed channel
	n.Unsubscribe(ch)
}

func TestNotifier_Broadcast(t *testing.T) {
	n := New()
	ch1 := n.Subscribe()
	ch2 := n.Subscribe()
	defer n.Unsubscribe(ch1)
	defer n.Unsubscribe(ch2)

	n.Broadcast(Event{File: "content/site.yaml"})

	for _, ch := range []chan Event{ch1, ch2} {
		e := receive(t, ch)
		assert.Equal(t, "content/site.yaml", e.File)
		assert.False(t, e.At.IsZero())
	}
}

func TestNotifier_BroadcastNonBlocking(t *testing.T) {
	n := New()
	ch := n.Subscribe()
	defer n.Unsubscribe(ch)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			n.Broadcast(Event{File: "f"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a full listener")
	}

	receive(t, ch)
	select {
	case <-ch:
		t.Fatal("extra events should be dropped")
	default:
	}
}

func TestNotifier_Concurrent(t *testing.T) {
	n := New()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch := n.Subscribe()
			n.Broadcast(Event{})
			n.Unsubscribe(ch)
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, n.Len())
}
