package validate

// std backs the package-level functions. It is never modified.
var std = New()

// IsTrue returns an ErrInvalidArgument error with the default message when expr is false.
//
//	err := validate.IsTrue(age >= 18)
func IsTrue(expr bool) error {
	return std.IsTrue(expr)
}

// IsTruef returns an ErrInvalidArgument error when expr is false. The message
// is fmt.Sprintf(format, args...), computed only on failure. A template that
// fmt cannot apply to args yields a *FormatError instead.
//
//	err := validate.IsTruef(age >= 18, "age %d is below the minimum", age)
func IsTruef(expr bool, format string, args ...any) error {
	return std.IsTruef(expr, format, args...)
}

// NotNull returns an ErrNullArgument error when obj is nil. Typed nil
// pointers, slices, maps, channels, funcs and interfaces count as nil.
//
//	err := validate.NotNull(nil)
func NotNull(obj any) error {
	return std.NotNull(obj)
}

// NotNullf is NotNull with a message formatted from format and args.
func NotNullf(obj any, format string, args ...any) error {
	return std.NotNullf(obj, format, args...)
}

// NotEmpty returns ErrNullArgument for a nil slice and ErrInvalidArgument for
// an empty one. Elements are not inspected: []any{nil} passes.
func NotEmpty[S ~[]E, E any](s S) error {
	return std.notEmpty(s == nil, len(s), defaultMessage(std.messages.NotEmpty))
}

// NotEmptyf is NotEmpty with a message formatted from format and args.
func NotEmptyf[S ~[]E, E any](s S, format string, args ...any) error {
	return std.notEmpty(s == nil, len(s), templateMessage{format: format, args: args})
}

// NotEmptyMap is NotEmpty for maps.
func NotEmptyMap[M ~map[K]V, K comparable, V any](m M) error {
	return std.notEmpty(m == nil, len(m), defaultMessage(std.messages.NotEmpty))
}

// NotEmptyMapf is NotEmptyMap with a message formatted from format and args.
func NotEmptyMapf[M ~map[K]V, K comparable, V any](m M, format string, args ...any) error {
	return std.notEmpty(m == nil, len(m), templateMessage{format: format, args: args})
}

// NotBlank returns an ErrInvalidArgument error when s is empty or whitespace only.
func NotBlank(s string) error {
	return std.NotBlank(s)
}

// NotBlankf is NotBlank with a message formatted from format and args.
func NotBlankf(s string, format string, args ...any) error {
	return std.NotBlankf(s, format, args...)
}

// ValidIndex returns ErrNullArgument for a nil slice and ErrIndexOutOfBounds
// when index is outside [0, len(s)). The default message includes the index.
func ValidIndex[S ~[]E, E any](s S, index int) error {
	return std.validIndex(s == nil, len(s), index, std.indexMessage(index))
}

// ValidIndexf is ValidIndex with a message formatted from format and args.
func ValidIndexf[S ~[]E, E any](s S, index int, format string, args ...any) error {
	return std.validIndex(s == nil, len(s), index, templateMessage{format: format, args: args})
}

// Must panics with err when it is not nil, turning a check into an assertion.
//
//	validate.Must(validate.NotNull(cfg))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
