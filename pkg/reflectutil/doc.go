// Package reflectutil inspects struct fields through reflection.
//
// GetField looks a field up by name, including fields promoted from embedded
// structs (Go's equivalent of inherited fields). GetDeclaredField restricts the
// lookup to fields declared directly on the type. Both return a *Field
// descriptor that implements Member:
//
//	f, err := reflectutil.GetField(reflect.TypeFor[Account](), "password")
//	if err != nil {
//	    return err // errors.Is(err, reflectutil.ErrNotFound)
//	}
//	v, err := f.Get(&account)
//
// # Forced access
//
// Descriptors returned by the lookup functions are forced accessible: they
// read and write unexported fields through unsafe pointers. This escape hatch
// is confined to access.go and applies only to descriptors from GetField,
// GetDeclaredField, FieldOf, ReadField and WriteField. DeclaredFields returns
// descriptors with their declared modifiers, which refuse unexported fields
// with ErrNotAccessible.
//
// # Modifiers
//
// Go has no final fields, so a field is Final when its struct tag contains
// member:"final"; Set refuses to write it. Blank (_) fields are synthetic:
// they are never accessible and cannot be looked up by name.
//
//	type Account struct {
//	    Region string `member:"final"`
//	}
//
// IsFinal and IsAccessible accept any Member and return false for nil,
// including typed nil pointers.
//
// Lookup and access failures are *FieldError values that unwrap to one of the
// package errors and implement slog.LogValuer.
package reflectutil
