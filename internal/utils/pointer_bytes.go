package utils

import (
	"reflect"
	"unsafe"
)

func PointerToBytes[T any](val *T, length int) []byte {
	if length == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(val)), length)
}

func BytesToPointer[T any](b []byte) *T {
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// ContainsPointers reports whether values of type t hold anything the
// garbage collector has to trace.
func ContainsPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true

	case reflect.Array:
		return t.Len() > 0 && ContainsPointers(t.Elem())

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if ContainsPointers(t.Field(i).Type) {
				return true
			}
		}
	}

	return false
}
