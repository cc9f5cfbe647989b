// Package future implements a single-threaded dataflow engine in which
// computations are expressed as a graph of futures resolved by externally
// delivered values.
//
// # Overview
//
// A Future is a shareable handle on a value that does not exist yet. Leaf
// futures come from Receive, which registers interest in the next externally
// delivered value of a type:
//
//	x := future.Receive[int]()
//	n := future.Deliver(41) // n == 1, x.Ready() == true, x.Get() == 41
//
// Futures compose with two combinators. BindN waits for all of its inputs:
//
//	sum := future.Bind2[int](future.Receive[int](), future.Receive[int](),
//		func(a, b int) future.Future[int] { return future.Resolved(a + b) })
//
// AltN resolves with the first input to fire and immediately unsubscribes
// the rest:
//
//	first := future.Alt2[string](future.Receive[int](), future.Receive[bool](),
//		func(i int) future.Future[string] { return future.Resolved("int") },
//		func(b bool) future.Future[string] { return future.Resolved("bool") })
//
// A combinator callback may return a future produced by a freshly built
// subgraph; the engine grafts that subgraph in place of the combinator, so
// handles held on the combinator's output resolve through it transparently.
// ReceiveWhen uses this to loop until a predicate holds:
//
//	big := future.ReceiveWhen(func(i int) bool { return i > 100 })
//
// # Lifecycle
//
// Subscriptions hold producers alive; producers hold subscribers weakly.
// Dropping the last handle on a future abandons its producing subgraph, and
// a combinator releases each input the moment it is no longer needed, so a
// losing Alt branch stops counting against Deliver immediately. Deliver
// reports how many pending receives were still live.
//
// The engine is strictly single-threaded: all construction and delivery must
// happen on one goroutine at a time. Callbacks run synchronously inside
// Deliver and may construct new receives and combinators, or even deliver.
package future
