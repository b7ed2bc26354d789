package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishWithNoSubscribersIsNoop(t *testing.T) {
	h := NewHub()
	assert.NotPanics(t, h.Publish)
}

func TestPublishReachesAllSubscribers(t *testing.T) {
	h := NewHub()
	var a, b int
	h.Subscribe(func() { a++ })
	h.Subscribe(func() { b++ })

	h.Publish()
	h.Publish()

	assert.Equal(t, 2, a)
	assert.Equal(t, 2, b)
}

func TestCancelStopsDelivery(t *testing.T) {
	h := NewHub()
	var n int
	cancel := h.Subscribe(func() { n++ })

	h.Publish()
	cancel()
	h.Publish()

	assert.Equal(t, 1, n)

	// Cancelling twice is harmless.
	assert.NotPanics(t, cancel)
}
