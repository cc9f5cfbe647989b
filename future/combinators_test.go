package future_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tchw/lftree/future"
)

// The message types mirror a tagged wire format: each carries the string
// rendering of its own tag with the payloads it was built from in braces,
// so a resolved value spells out the exact path it took through the graph.
type (
	msgA struct{ val string }
	msgB struct{ val string }
	msgC struct{ val string }
	msgD struct{ val string }
	msgT struct{ val string }
)

func tagged(tag int, parts []string) string {
	if len(parts) == 0 {
		return strconv.Itoa(tag)
	}
	return strconv.Itoa(tag) + "{" + strings.Join(parts, "") + "}"
}

func mkA(parts ...string) msgA { return msgA{val: tagged(0, parts)} }
func mkB(parts ...string) msgB { return msgB{val: tagged(1, parts)} }
func mkC(parts ...string) msgC { return msgC{val: tagged(2, parts)} }
func mkD(parts ...string) msgD { return msgD{val: tagged(3, parts)} }
func mkT(parts ...string) msgT { return msgT{val: tagged(4, parts)} }

func TestBindOneArgument(t *testing.T) {
	future.ResetEngine()
	x := future.Bind1[msgT](future.Receive[msgA](), func(a msgA) future.Future[msgT] {
		return future.Resolved(mkT(a.val))
	})

	assert.False(t, x.Ready())
	assert.Equal(t, 1, future.Deliver(mkA()))
	assert.True(t, x.Ready())
	assert.Equal(t, "4{0}", x.Get().val)
}

func TestBindTwoArguments(t *testing.T) {
	future.ResetEngine()
	x := future.Bind2[msgT](future.Receive[msgA](), future.Receive[msgB](),
		func(a msgA, b msgB) future.Future[msgT] {
			return future.Resolved(mkT(a.val, b.val))
		})

	assert.False(t, x.Ready())
	assert.Equal(t, 1, future.Deliver(mkA()))
	assert.False(t, x.Ready())
	assert.Equal(t, 1, future.Deliver(mkB()))
	assert.True(t, x.Ready())
	assert.Equal(t, "4{01}", x.Get().val)
}

func TestBindSameArgumentInBothPositions(t *testing.T) {
	future.ResetEngine()
	a := future.Receive[msgA]()
	x := future.Bind2[msgT](a, a, func(a1, a2 msgA) future.Future[msgT] {
		return future.Resolved(mkT(a1.val, a2.val))
	})

	assert.Equal(t, 1, future.Deliver(mkA()))
	assert.True(t, x.Ready())
	assert.Equal(t, "4{00}", x.Get().val)
}

func TestBindArgumentOrderIsPositional(t *testing.T) {
	future.ResetEngine()
	x := future.Bind2[msgT](future.Receive[msgA](), future.Receive[msgB](),
		func(a msgA, b msgB) future.Future[msgT] {
			return future.Resolved(mkT(a.val, b.val))
		})

	assert.Equal(t, 1, future.Deliver(mkB()))
	assert.Equal(t, 1, future.Deliver(mkA()))
	assert.Equal(t, "4{01}", x.Get().val)
}

func TestBindPreResolvedInput(t *testing.T) {
	future.ResetEngine()
	x := future.Bind2[msgT](future.Resolved(mkA()), future.Receive[msgB](),
		func(a msgA, b msgB) future.Future[msgT] {
			return future.Resolved(mkT(a.val, b.val))
		})

	assert.False(t, x.Ready())
	assert.Equal(t, 1, future.Deliver(mkB()))
	assert.True(t, x.Ready())
	assert.Equal(t, "4{01}", x.Get().val)
}

func TestBindAllInputsPreResolved(t *testing.T) {
	future.ResetEngine()
	x := future.Bind2[msgT](future.Resolved(mkA()), future.Resolved(mkB()),
		func(a msgA, b msgB) future.Future[msgT] {
			return future.Resolved(mkT(a.val, b.val))
		})

	assert.True(t, x.Ready())
	assert.Equal(t, "4{01}", x.Get().val)
}

func TestAltFirstInputWins(t *testing.T) {
	future.ResetEngine()
	x := future.Alt2[msgT](future.Receive[msgA](), future.Receive[msgB](),
		func(a msgA) future.Future[msgT] { return future.Resolved(mkT(a.val)) },
		func(b msgB) future.Future[msgT] { return future.Resolved(mkT(b.val)) })

	assert.False(t, x.Ready())
	assert.Equal(t, 1, future.Deliver(mkB()))
	assert.True(t, x.Ready())
	assert.Equal(t, "4{1}", x.Get().val)
}

func TestAltReleasesLosingBranches(t *testing.T) {
	future.ResetEngine()
	x := future.Alt2[msgT](future.Receive[msgA](), future.Receive[msgB](),
		func(a msgA) future.Future[msgT] { return future.Resolved(mkT(a.val)) },
		func(b msgB) future.Future[msgT] { return future.Resolved(mkT(b.val)) })

	assert.Equal(t, 1, future.Deliver(mkA()))
	assert.True(t, x.Ready())
	assert.Equal(t, 0, future.Deliver(mkB()))
	assert.Equal(t, "4{0}", x.Get().val)
}

func TestAltPreResolvedInputWinsAtConstruction(t *testing.T) {
	future.ResetEngine()
	x := future.Alt2[msgT](future.Receive[msgA](), future.Resolved(mkB()),
		func(a msgA) future.Future[msgT] { return future.Resolved(mkT(a.val)) },
		func(b msgB) future.Future[msgT] { return future.Resolved(mkT(b.val)) })

	assert.True(t, x.Ready())
	assert.Equal(t, "4{1}", x.Get().val)
	assert.Equal(t, 0, future.Deliver(mkA()))
}

func TestBindThreeArguments(t *testing.T) {
	future.ResetEngine()
	x := future.Bind3[msgT](future.Receive[msgA](), future.Receive[msgB](), future.Receive[msgC](),
		func(a msgA, b msgB, c msgC) future.Future[msgT] {
			return future.Resolved(mkT(a.val, b.val, c.val))
		})

	assert.Equal(t, 1, future.Deliver(mkC()))
	assert.Equal(t, 1, future.Deliver(mkA()))
	assert.False(t, x.Ready())
	assert.Equal(t, 1, future.Deliver(mkB()))
	assert.True(t, x.Ready())
	assert.Equal(t, "4{012}", x.Get().val)
}

func TestAltThreeBranches(t *testing.T) {
	future.ResetEngine()
	x := future.Alt3[msgT](future.Receive[msgA](), future.Receive[msgB](), future.Receive[msgC](),
		func(a msgA) future.Future[msgT] { return future.Resolved(mkT(a.val)) },
		func(b msgB) future.Future[msgT] { return future.Resolved(mkT(b.val)) },
		func(c msgC) future.Future[msgT] { return future.Resolved(mkT(c.val)) })

	assert.Equal(t, 1, future.Deliver(mkC()))
	assert.True(t, x.Ready())
	assert.Equal(t, "4{2}", x.Get().val)
	assert.Equal(t, 0, future.Deliver(mkA()))
	assert.Equal(t, 0, future.Deliver(mkB()))
}
