// Package lang is the root of a small collection of stateless helpers.
//
// The helpers live in independent packages under pkg/:
//
//   - stringutil: emptiness and blankness predicates, Unicode-aware
//     capitalization and common string constants.
//   - validate: precondition checks that return categorized errors
//     (ErrInvalidArgument, ErrNullArgument, ErrIndexOutOfBounds) with default
//     or formatted messages, localized through embedded catalogs.
//   - reflectutil: struct field lookup, including promoted and unexported
//     fields, plus accessibility and finality predicates.
//
// Supporting packages:
//
//   - logger: slog factory and attribute helpers; errors from validate and
//     reflectutil implement slog.LogValuer with them.
//   - config: env and .env loading used by validate.MessagesFromEnv.
//
// Every exported function is pure and safe for concurrent use. Nothing in the
// module performs I/O except config, which reads the environment and .env
// files when asked to.
//
// Basic usage:
//
//	func Rename(u *User, name string) error {
//		if err := validate.NotNull(u); err != nil {
//			return err
//		}
//		if err := validate.NotBlankf(name, "name of user %d is blank", u.ID); err != nil {
//			return err
//		}
//		u.Name = stringutil.Capitalize(name)
//		return nil
//	}
package lang
