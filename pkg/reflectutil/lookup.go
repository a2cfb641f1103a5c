package reflectutil

import (
	"reflect"
)

// GetField looks up a field by name on t, including fields promoted from
// embedded structs. Pointer types are dereferenced. The returned descriptor is
// accessible even when the field is unexported.
//
// It fails with ErrNotFound when t is not a struct, has no such field, the
// name is ambiguous between embedded structs, or name is the blank identifier.
func GetField(t reflect.Type, name string) (*Field, error) {
	st, err := structType(t, name)
	if err != nil {
		return nil, err
	}
	if name == "_" {
		return nil, notFound(st, name)
	}

	sf, ok := st.FieldByName(name)
	if !ok {
		return nil, notFound(st, name)
	}
	return forceAccessible(newField(st, sf)), nil
}

// GetDeclaredField is GetField restricted to fields declared directly on t.
// Promoted fields are not found.
func GetDeclaredField(t reflect.Type, name string) (*Field, error) {
	st, err := structType(t, name)
	if err != nil {
		return nil, err
	}
	if name == "_" {
		return nil, notFound(st, name)
	}

	for i := 0; i < st.NumField(); i++ {
		if sf := st.Field(i); sf.Name == name {
			return forceAccessible(newField(st, sf)), nil
		}
	}
	return nil, notFound(st, name)
}

// DeclaredFields lists the fields declared directly on t, blank fields
// included, in declaration order. The descriptors carry their declared
// modifiers: unexported fields are not accessible through them.
// A non-struct type has no fields.
func DeclaredFields(t reflect.Type) ([]*Field, error) {
	if t == nil {
		return nil, &FieldError{Err: ErrNilType}
	}
	t = indirect(t)
	if t.Kind() != reflect.Struct {
		return nil, nil
	}

	fields := make([]*Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fields = append(fields, newField(t, t.Field(i)))
	}
	return fields, nil
}

// FieldOf is GetField for the static type T.
func FieldOf[T any](name string) (*Field, error) {
	return GetField(reflect.TypeFor[T](), name)
}

// ReadField returns the value of the named field of target, a struct value or
// a pointer to one. Unexported fields are readable.
func ReadField(target any, name string) (any, error) {
	f, err := GetField(reflect.TypeOf(target), name)
	if err != nil {
		return nil, err
	}
	return f.Get(target)
}

// WriteField assigns value to the named field of target, a pointer to a struct.
// Unexported fields are writable; fields tagged member:"final" are not.
func WriteField(target any, name string, value any) error {
	f, err := GetField(reflect.TypeOf(target), name)
	if err != nil {
		return err
	}
	return f.Set(target, value)
}

// structType dereferences t down to a struct type.
func structType(t reflect.Type, name string) (reflect.Type, error) {
	if t == nil {
		return nil, &FieldError{Name: name, Err: ErrNilType}
	}
	t = indirect(t)
	if t.Kind() != reflect.Struct {
		return nil, notFound(t, name)
	}
	return t, nil
}

func notFound(t reflect.Type, name string) error {
	return &FieldError{Type: t, Name: name, Err: ErrNotFound}
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
