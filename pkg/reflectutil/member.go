package reflectutil

import (
	"reflect"
	"strings"
)

// Modifier is a set of member flags.
type Modifier uint8

const (
	// Public marks a member that may be used from outside its package.
	Public Modifier = 1 << iota
	// Final marks a member that must not be reassigned.
	Final
)

func (m Modifier) IsPublic() bool { return m&Public != 0 }
func (m Modifier) IsFinal() bool  { return m&Final != 0 }

func (m Modifier) String() string {
	var parts []string
	if m.IsPublic() {
		parts = append(parts, "public")
	}
	if m.IsFinal() {
		parts = append(parts, "final")
	}
	return strings.Join(parts, " ")
}

// Member describes a named member of a type.
type Member interface {
	Name() string
	DeclaringType() reflect.Type
	Modifiers() Modifier
	IsSynthetic() bool
}

// IsFinal reports whether m is non-nil and marked Final.
func IsFinal(m Member) bool {
	return !isNilMember(m) && m.Modifiers().IsFinal()
}

// IsAccessible reports whether m is non-nil, Public and not synthetic.
func IsAccessible(m Member) bool {
	return !isNilMember(m) && m.Modifiers().IsPublic() && !m.IsSynthetic()
}

// isNilMember catches both a nil interface and a typed nil such as (*Field)(nil).
func isNilMember(m Member) bool {
	if m == nil {
		return true
	}
	rv := reflect.ValueOf(m)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
