package future_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tchw/lftree/future"
)

func TestResolvedIsReady(t *testing.T) {
	x := future.Resolved(42)
	assert.True(t, x.Ready())
	assert.Equal(t, 42, x.Get())
}

func TestZeroFuture(t *testing.T) {
	var x future.Future[string]
	assert.False(t, x.Ready())
	assert.Equal(t, "", x.Get())
}

func TestGetBeforeResolution(t *testing.T) {
	future.ResetEngine()
	x := future.Receive[int]()
	assert.False(t, x.Ready())
	assert.Equal(t, 0, x.Get())
	future.Deliver(7)
	assert.True(t, x.Ready())
	assert.Equal(t, 7, x.Get())
}

func TestHandleCopiesShareResolution(t *testing.T) {
	future.ResetEngine()
	x := future.Receive[int]()
	y := x
	assert.Equal(t, 1, future.Deliver(1))
	assert.Equal(t, 1, x.Get())
	assert.Equal(t, 1, y.Get())
}

func TestResolutionIsFinal(t *testing.T) {
	future.ResetEngine()
	x := future.Receive[int]()
	assert.Equal(t, 1, future.Deliver(1))
	assert.Equal(t, 1, x.Get())
	assert.Equal(t, 0, future.Deliver(2))
	assert.Equal(t, 1, x.Get())
}
