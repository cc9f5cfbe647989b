package future

// Receive registers a node that resolves on the next Deliver of type T and
// returns its future.
func Receive[T any]() Future[T] {
	defer enter()()
	n := &node[T]{}
	r := registryOf[T]()
	r.add(n)
	traceEvent(OpReceive, r, len(r.pending))
	return attach(n)
}

// ReceiveWhen keeps receiving values of type T until pred holds for one.
func ReceiveWhen[T any](pred func(T) bool) Future[T] {
	return Bind1[T, T](Receive[T](), func(x T) Future[T] {
		if pred(x) {
			return Resolved(x)
		}
		return ReceiveWhen(pred)
	})
}

// Deliver fulfils every receive of type T that was pending when the call
// started and reports how many of them were still live. The cascade of
// propagations and callbacks it triggers completes before Deliver returns.
// Receives created by callbacks during the cascade are only visible to
// subsequent deliveries.
func Deliver[T any](x T) int {
	defer enter()()
	r := registryOf[T]()
	pending := r.take()
	n := 0
	for _, wp := range pending {
		nd := wp.Value()
		if nd == nil || !nd.live() {
			continue
		}
		nd.propagate(Resolved(x))
		n++
	}
	traceEvent(OpDeliver, r, n)
	return n
}
