package reflectutil

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// tagName is the struct tag read for member options, e.g. `member:"final"`.
const tagName = "member"

// Field describes a struct field found on a type.
type Field struct {
	owner     reflect.Type
	declaring reflect.Type
	field     reflect.StructField
	modifiers Modifier
}

func newField(owner reflect.Type, sf reflect.StructField) *Field {
	return &Field{
		owner:     owner,
		declaring: declaringType(owner, sf.Index),
		field:     sf,
		modifiers: declaredModifiers(sf),
	}
}

func (f *Field) Name() string { return f.field.Name }

// DeclaringType is the struct type that declares the field. For a promoted
// field it is the embedded struct, not the type the lookup started from.
func (f *Field) DeclaringType() reflect.Type { return f.declaring }

// Owner is the struct type the field was looked up on. Get and Set expect
// values of this type.
func (f *Field) Owner() reflect.Type { return f.owner }

func (f *Field) Type() reflect.Type    { return f.field.Type }
func (f *Field) Tag() reflect.StructTag { return f.field.Tag }

// Index is the index sequence for reflect.Value.FieldByIndex.
func (f *Field) Index() []int { return slices.Clone(f.field.Index) }

// Modifiers returns the effective modifiers. A descriptor returned by
// GetField or GetDeclaredField is always Public.
func (f *Field) Modifiers() Modifier { return f.modifiers }

// DeclaredModifiers returns the modifiers as declared in source.
func (f *Field) DeclaredModifiers() Modifier { return declaredModifiers(f.field) }

// IsSynthetic reports whether the field is a blank (_) field, which exists
// only to shape the struct layout.
func (f *Field) IsSynthetic() bool { return f.field.Name == "_" }

// IsPromoted reports whether the field is declared on an embedded struct.
func (f *Field) IsPromoted() bool { return len(f.field.Index) > 1 }

func (f *Field) String() string {
	mods := f.modifiers.String()
	if mods != "" {
		mods += " "
	}
	return fmt.Sprintf("%s%s.%s %s", mods, typeName(f.declaring), f.field.Name, f.field.Type)
}

// Get returns the value of the field in target, which must be a value of, or
// a pointer to, the Owner type.
func (f *Field) Get(target any) (any, error) {
	v, err := f.locate(target, false)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// Set assigns value to the field in target, which must be a pointer to the
// Owner type. A nil value sets the zero value of nillable field types.
func (f *Field) Set(target any, value any) error {
	if f.modifiers.IsFinal() {
		return f.error(ErrFinalField)
	}

	v, err := f.locate(target, true)
	if err != nil {
		return err
	}

	val := reflect.ValueOf(value)
	switch {
	case !val.IsValid() && nillable(v.Kind()):
		val = reflect.Zero(v.Type())
	case !val.IsValid():
		return f.error(fmt.Errorf("%w: cannot assign nil to %s", ErrTypeMismatch, v.Type()))
	case !val.Type().AssignableTo(v.Type()):
		return f.error(fmt.Errorf("%w: cannot assign %s to %s", ErrTypeMismatch, val.Type(), v.Type()))
	}

	v.Set(val)
	return nil
}

// locate resolves the field inside target. Writes require a pointer so the
// caller's value is modified; reads of a struct value work on a copy.
func (f *Field) locate(target any, write bool) (reflect.Value, error) {
	if !IsAccessible(f) {
		return reflect.Value{}, f.error(ErrNotAccessible)
	}

	rv := reflect.ValueOf(target)
	switch {
	case !rv.IsValid():
		return reflect.Value{}, f.error(fmt.Errorf("%w: nil target", ErrInvalidTarget))
	case rv.Kind() == reflect.Pointer:
		if rv.IsNil() {
			return reflect.Value{}, f.error(fmt.Errorf("%w: nil %s", ErrInvalidTarget, rv.Type()))
		}
		rv = rv.Elem()
	case write:
		return reflect.Value{}, f.error(fmt.Errorf("%w: %s is not a pointer", ErrInvalidTarget, rv.Type()))
	}

	if rv.Type() != f.owner {
		return reflect.Value{}, f.error(fmt.Errorf("%w: expected %s, got %s", ErrInvalidTarget, f.owner, rv.Type()))
	}

	if !rv.CanAddr() {
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		rv = cp
	}

	fv, err := rv.FieldByIndexErr(f.field.Index)
	if err != nil {
		return reflect.Value{}, f.error(fmt.Errorf("%w: %v", ErrInvalidTarget, err))
	}
	return exposed(fv), nil
}

func (f *Field) error(err error) error {
	return &FieldError{Type: f.owner, Name: f.field.Name, Err: err}
}

func declaredModifiers(sf reflect.StructField) Modifier {
	var m Modifier
	if sf.IsExported() {
		m |= Public
	}
	if hasTagOption(sf.Tag.Get(tagName), "final") {
		m |= Final
	}
	return m
}

func hasTagOption(tag, option string) bool {
	for opt := range strings.SplitSeq(tag, ",") {
		if strings.TrimSpace(opt) == option {
			return true
		}
	}
	return false
}

// declaringType walks the embedding path of a promoted field.
func declaringType(owner reflect.Type, index []int) reflect.Type {
	if len(index) < 2 {
		return owner
	}
	return indirect(owner.FieldByIndex(index[:len(index)-1]).Type)
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return true
	}
	return false
}
