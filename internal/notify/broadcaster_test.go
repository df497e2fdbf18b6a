package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcasterDeliversInOrder(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Publish(Event{Name: EventSpotUpdated, Payload: "first"})
	b.Publish(Event{Name: EventSpotsReset, Payload: "second"})

	ev := <-ch
	assert.Equal(t, EventSpotUpdated, ev.Name)
	assert.Equal(t, "first", ev.Payload)

	ev = <-ch
	assert.Equal(t, EventSpotsReset, ev.Name)
}

func TestBroadcasterFansOutToEverySubscriber(t *testing.T) {
	b := NewBroadcaster()
	ch1, cancel1 := b.Subscribe()
	defer cancel1()
	ch2, cancel2 := b.Subscribe()
	defer cancel2()

	b.Publish(Event{Name: EventSpotUpdated})

	assert.Equal(t, EventSpotUpdated, (<-ch1).Name)
	assert.Equal(t, EventSpotUpdated, (<-ch2).Name)
}

func TestCancelStopsDelivery(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	require.Equal(t, 1, b.SubscriberCount())

	cancel()
	assert.Zero(t, b.SubscriberCount())

	// The channel is closed; publishing afterwards must not panic.
	b.Publish(Event{Name: EventSpotUpdated})
	_, open := <-ch
	assert.False(t, open)

	// A second cancel is a no-op.
	cancel()
}

func TestSlowSubscriberNeverBlocksPublish(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	defer cancel()

	// Overflow the buffer; extra events are dropped, not queued.
	for i := 0; i < subscriberBuffer*2; i++ {
		b.Publish(Event{Name: EventSpotUpdated, Payload: i})
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	assert.Equal(t, subscriberBuffer, received)
}
