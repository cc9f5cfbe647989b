package future_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tchw/lftree/future"
)

func TestPendingCounts(t *testing.T) {
	future.ResetEngine()
	assert.Equal(t, 0, future.Pending[int]())

	x := future.Receive[int]()
	y := future.Receive[int]()
	z := future.Receive[string]()
	assert.Equal(t, 2, future.Pending[int]())
	assert.Equal(t, 1, future.Pending[string]())

	assert.Equal(t, 2, future.Deliver(1))
	assert.Equal(t, 0, future.Pending[int]())
	assert.Equal(t, 1, future.Pending[string]())
	assert.True(t, x.Ready())
	assert.True(t, y.Ready())
	assert.False(t, z.Ready())
}

func TestPendingTypes(t *testing.T) {
	future.ResetEngine()
	assert.Equal(t, 0, future.PendingTypes().Cardinality())

	x := future.Receive[msgA]()
	y := future.Receive[int]()
	types := future.PendingTypes()
	assert.Equal(t, 2, types.Cardinality())
	assert.True(t, types.Contains(reflect.TypeFor[msgA]().String()))
	assert.True(t, types.Contains("int"))

	future.Deliver(mkA())
	types = future.PendingTypes()
	assert.Equal(t, 1, types.Cardinality())
	assert.True(t, types.Contains("int"))
	assert.True(t, x.Ready())
	assert.False(t, y.Ready())
}

func TestPendingIgnoresReleasedBranches(t *testing.T) {
	future.ResetEngine()
	x := future.Alt2[string](future.Receive[int](), future.Receive[bool](),
		func(int) future.Future[string] { return future.Resolved("int") },
		func(bool) future.Future[string] { return future.Resolved("bool") })

	assert.Equal(t, 1, future.Pending[int]())
	assert.Equal(t, 1, future.Pending[bool]())

	assert.Equal(t, 1, future.Deliver(1))
	assert.Equal(t, "int", x.Get())
	assert.Equal(t, 0, future.Pending[bool]())
}

func TestTraceEvents(t *testing.T) {
	future.ResetEngine()
	var events []future.Event
	future.SetTrace(func(e future.Event) { events = append(events, e) })
	defer future.SetTrace(nil)

	x := future.Receive[int]()
	assert.Equal(t, 1, future.Deliver(3))
	assert.True(t, x.Ready())

	require.Len(t, events, 2)
	assert.Equal(t, future.OpReceive, events[0].Op)
	assert.Equal(t, "int", events[0].Type)
	assert.Equal(t, 1, events[0].Count)
	assert.Equal(t, future.OpDeliver, events[1].Op)
	assert.Equal(t, "int", events[1].Type)
	assert.Equal(t, 1, events[1].Count)
	assert.NotZero(t, events[0].Key)
	assert.Equal(t, events[0].Key, events[1].Key)

	assert.Equal(t, "receive", future.OpReceive.String())
	assert.Equal(t, "deliver", future.OpDeliver.String())
}
