package headervec

import "reflect"

// Dropper is implemented by values that need to release something when the
// vector that owns them lets go of them. A vector calls Drop exactly once
// for every value that leaves it without being handed to the caller:
// through Truncate, shrinking Resize, Clear, ClearInPlace, Drop, or closing
// a Values iterator early. Values returned by Pop, Remove, SwapRemove or an
// iterator belong to the caller and are not dropped.
//
// Nil pointers, maps, channels, functions and interfaces hold nothing and
// are never dropped.
type Dropper interface {
	Drop()
}

func dropOne[T any](p *T) {
	if d, ok := any(*p).(Dropper); ok {
		if !isNil(d) {
			d.Drop()
		}
	} else if d, ok := any(p).(Dropper); ok {
		d.Drop()
	}

	var zero T
	*p = zero
}

func dropAll[T any](items []T) {
	for i := range items {
		dropOne(&items[i])
	}
}

func isNil(val any) bool {
	v := reflect.ValueOf(val)

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}

	return false
}
