package future

import (
	"reflect"
	"weak"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// registries holds the process-wide delivery state: one registry per concrete
// value type, created on first use.
var registries = map[reflect.Type]anyRegistry{}

type anyRegistry interface {
	typeName() string
	typeKey() uint64
	liveCount() int
}

type registry[T any] struct {
	name    string
	key     uint64
	pending []weak.Pointer[node[T]]
}

func registryOf[T any]() *registry[T] {
	t := reflect.TypeFor[T]()
	if r, ok := registries[t]; ok {
		return r.(*registry[T])
	}
	r := &registry[T]{
		name: t.String(),
		key:  xxhash.Sum64String(t.String()),
	}
	registries[t] = r
	return r
}

func (r *registry[T]) add(n *node[T]) {
	r.pending = append(r.pending, weak.Make(n))
}

// take snapshots and empties the pending list. Receives registered while a
// snapshot is being drained land in the fresh list and are only visible to
// subsequent deliveries.
func (r *registry[T]) take() []weak.Pointer[node[T]] {
	pending := r.pending
	r.pending = nil
	return pending
}

func (r *registry[T]) typeName() string { return r.name }
func (r *registry[T]) typeKey() uint64  { return r.key }

func (r *registry[T]) liveCount() int {
	n := 0
	for _, wp := range r.pending {
		if nd := wp.Value(); nd != nil && nd.live() {
			n++
		}
	}
	return n
}

// Pending returns the number of live receives awaiting a value of type T.
func Pending[T any]() int {
	defer enter()()
	return registryOf[T]().liveCount()
}

// PendingTypes returns the names of all value types with at least one live
// pending receive.
func PendingTypes() mapset.Set[string] {
	defer enter()()
	types := mapset.NewThreadUnsafeSet[string]()
	for _, r := range registries {
		if r.liveCount() > 0 {
			types.Add(r.typeName())
		}
	}
	return types
}
