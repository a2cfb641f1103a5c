package reflectutil

import (
	"reflect"
	"unsafe"
)

// This file holds the only code that bypasses Go's export rules.
// Lookups opt in through forceAccessible; exposed is used by Field.locate
// after that check has passed.

// forceAccessible marks f Public so Get and Set may reach unexported fields.
func forceAccessible(f *Field) *Field {
	f.modifiers |= Public
	return f
}

// exposed returns a readable and settable view of v. v must be addressable.
func exposed(v reflect.Value) reflect.Value {
	if v.CanInterface() && v.CanSet() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}
