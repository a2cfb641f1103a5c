// Package stringutil provides small predicates and transforms for strings.
//
// The predicates distinguish empty (zero length) from blank (empty or made of
// whitespace only, per unicode.IsSpace):
//
//	stringutil.IsEmpty("")     // true
//	stringutil.IsEmpty(" ")    // false
//	stringutil.IsBlank(" \t")  // true
//	stringutil.IsBlank(" a ")  // false
//
// Go strings cannot be nil, so the Ptr variants accept a *string and treat a
// nil pointer as an absent value: it is both empty and blank, and
// CapitalizePtr returns nil for it.
//
// Capitalize upper-cases the first rune only, using Unicode case mapping, and
// leaves strings that start with an upper-case rune or a non-letter unchanged:
//
//	stringutil.Capitalize("alex")  // "Alex"
//	stringutil.Capitalize("élan")  // "Élan"
//	stringutil.Capitalize("9alex") // "9alex"
//
// CapitalizeIn applies the case rules of a specific language through
// golang.org/x/text/cases, e.g. Turkish dotted capital I.
//
// All functions are pure and safe for concurrent use.
package stringutil
