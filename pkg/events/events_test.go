package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusPublishSubscribe(t *testing.T) {
	b := NewBus()

	sub, cancel := b.Subscribe()
	defer cancel()

	b.Publish(New(TypeBlockForged))

	ev := <-sub
	assert.Equal(t, TypeBlockForged, ev.Type)
	assert.NotZero(t, ev.CreatedTime)
}

func TestBusCancelCloses(t *testing.T) {
	b := NewBus()

	sub, cancel := b.Subscribe()
	cancel()

	_, ok := <-sub
	assert.False(t, ok)

	// double cancel is a no-op
	cancel()
}

func TestBusSlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBus()

	sub, cancel := b.Subscribe()
	defer cancel()

	// overflow the subscriber buffer; publishes must not block
	for i := 0; i < 100; i++ {
		b.Publish(New(TypeTransactionQueued))
	}

	require.NotEmpty(t, sub)
}
