package stringutil

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Empty = ""
	Space = " "

	LF   = "\n"   // Unix
	CR   = "\r"   // classic Mac OS
	CRLF = "\r\n" // Windows

	// NilString is how fmt renders a nil value.
	NilString = "<nil>"
)

// IsEmpty reports whether s has zero length.
//
//	IsEmpty("")       = true
//	IsEmpty(" ")      = false
//	IsEmpty("alex")   = false
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty reports whether s has at least one byte.
func IsNotEmpty(s string) bool {
	return !IsEmpty(s)
}

// IsEmptyPtr reports whether s is nil or points to an empty string.
func IsEmptyPtr(s *string) bool {
	return s == nil || IsEmpty(*s)
}

// IsNotEmptyPtr reports whether s points to a non-empty string.
func IsNotEmptyPtr(s *string) bool {
	return !IsEmptyPtr(s)
}

// IsBlank reports whether s is empty or contains only whitespace.
//
//	IsBlank("")         = true
//	IsBlank(" \t\r\n")  = true
//	IsBlank("  alex  ") = false
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank reports whether s contains a non-whitespace rune.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsBlankPtr reports whether s is nil or points to a blank string.
func IsBlankPtr(s *string) bool {
	return s == nil || IsBlank(*s)
}

// IsNotBlankPtr reports whether s points to a non-blank string.
func IsNotBlankPtr(s *string) bool {
	return !IsBlankPtr(s)
}

// Capitalize converts the first rune of s to upper case.
// Strings starting with an upper-case rune, a non-letter or invalid UTF-8
// are returned unchanged. The remaining runes are never modified.
//
//	Capitalize("")      = ""
//	Capitalize("alex")  = "Alex"
//	Capitalize("Alex")  = "Alex"
//	Capitalize("!alex") = "!alex"
func Capitalize(s string) string {
	first, size, ok := lowerLetterPrefix(s)
	if !ok {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}

// CapitalizePtr is Capitalize for optional strings. A nil input yields nil;
// otherwise the result points to a new string and s is left untouched.
func CapitalizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := Capitalize(*s)
	return &out
}

// CapitalizeIn is Capitalize using the upper-case rules of the given language.
// The mapping of the first rune may produce several runes (German "ß" becomes "SS").
//
//	CapitalizeIn("istanbul", language.Turkish) = "İstanbul"
//	CapitalizeIn("istanbul", language.English) = "Istanbul"
func CapitalizeIn(s string, tag language.Tag) string {
	_, size, ok := lowerLetterPrefix(s)
	if !ok {
		return s
	}
	return cases.Upper(tag).String(s[:size]) + s[size:]
}

// lowerLetterPrefix decodes the first rune of s and reports whether it is a
// letter that is not already upper case.
func lowerLetterPrefix(s string) (rune, int, bool) {
	if IsEmpty(s) {
		return 0, 0, false
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) || !unicode.IsLetter(r) {
		return r, size, false
	}
	return r, size, true
}
