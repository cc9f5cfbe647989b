package future

import "reflect"

// ResetEngine clears the registry hub and the trace hook so tests start from
// a blank engine.
func ResetEngine() {
	registries = map[reflect.Type]anyRegistry{}
	trace = nil
}
