package future

import (
	"fmt"

	"github.com/petermattis/goid"
)

// All graph construction and delivery must happen on one goroutine at a
// time. Re-entrant use from callbacks is permitted; overlapping use from a
// second goroutine panics.
var guard struct {
	gid   int64
	depth int
}

func enter() func() {
	gid := goid.Get()
	if guard.depth > 0 && guard.gid != gid {
		panic(fmt.Sprintf("future: used from goroutine %d while goroutine %d is active", gid, guard.gid))
	}
	guard.gid = gid
	guard.depth++
	return func() { guard.depth-- }
}
