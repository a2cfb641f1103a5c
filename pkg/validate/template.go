package validate

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// checkTemplate reports whether fmt can apply format to args without writing
// one of its "%!" diagnostics. It walks the directives the way fmt does,
// so "%%" and operands whose text happens to contain "%!" are never
// mistaken for errors.
func checkTemplate(format string, args []any) bool {
	s := scanner{format: format, args: args}
	return s.run()
}

type scanner struct {
	format    string
	args      []any
	argNum    int
	reordered bool
	goodIndex bool
}

func (s *scanner) run() bool {
	end := len(s.format)
	for i := 0; i < end; {
		s.goodIndex = true
		for i < end && s.format[i] != '%' {
			i++
		}
		if i >= end {
			break
		}
		i++

		for i < end && strings.IndexByte("#0+- ", s.format[i]) >= 0 {
			i++
		}

		var afterIndex bool
		i, afterIndex = s.argNumber(i)

		// width
		if i < end && s.format[i] == '*' {
			i++
			if _, ok := s.intArg(); !ok {
				return false // %!(BADWIDTH)
			}
			afterIndex = false
		} else {
			var present, ok bool
			if i, present, ok = parseNum(s.format, i); !ok {
				return false
			}
			if afterIndex && present {
				s.goodIndex = false
			}
		}

		// precision
		if i+1 < end && s.format[i] == '.' {
			i++
			if afterIndex {
				s.goodIndex = false
			}
			i, afterIndex = s.argNumber(i)
			if i < end && s.format[i] == '*' {
				i++
				if n, ok := s.intArg(); !ok || n < 0 {
					return false // %!(BADPREC)
				}
				afterIndex = false
			} else {
				var ok bool
				if i, _, ok = parseNum(s.format, i); !ok {
					return false
				}
			}
		}

		if !afterIndex {
			i, _ = s.argNumber(i)
		}

		if i >= end {
			return false // %!(NOVERB)
		}
		verb, size := utf8.DecodeRuneInString(s.format[i:])
		i += size

		switch {
		case verb == '%':
		case !s.goodIndex:
			return false // %!v(BADINDEX)
		case s.argNum >= len(s.args):
			return false // %!v(MISSING)
		default:
			if badVerb(verb, s.args[s.argNum]) {
				return false
			}
			s.argNum++
		}
	}

	// %!(EXTRA ...)
	return s.reordered || s.argNum >= len(s.args)
}

// argNumber consumes an explicit "[n]" operand index at i, if any.
func (s *scanner) argNumber(i int) (int, bool) {
	if i >= len(s.format) || s.format[i] != '[' {
		return i, false
	}
	s.reordered = true
	index, width, ok := parseArgNumber(s.format[i:])
	if ok && index >= 0 && index < len(s.args) {
		s.argNum = index
		return i + width, true
	}
	s.goodIndex = false
	return i + width, ok
}

// intArg consumes the operand of a '*' width or precision.
func (s *scanner) intArg() (int64, bool) {
	if s.argNum >= len(s.args) {
		return 0, false
	}
	v := reflect.ValueOf(s.args[s.argNum])
	s.argNum++

	var n int64
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.Uint() > maxNum {
			return 0, false
		}
		n = int64(v.Uint())
	default:
		return 0, false
	}
	return n, n >= -maxNum && n <= maxNum
}

func parseArgNumber(format string) (index, width int, ok bool) {
	if len(format) < 3 {
		return 0, 1, false
	}
	for i := 1; i < len(format); i++ {
		if format[i] == ']' {
			n, next := 0, 1
			for next < i && '0' <= format[next] && format[next] <= '9' && n <= maxNum {
				n = n*10 + int(format[next]-'0')
				next++
			}
			if next == 1 || next != i {
				return 0, i + 1, false
			}
			return n - 1, i + 1, true
		}
	}
	return 0, 1, false
}

// maxNum is the largest width, precision or index fmt accepts.
const maxNum = 1e6

// parseNum skips a decimal number at i. ok is false when fmt would give up
// on it as an overflow.
func parseNum(format string, i int) (next int, present, ok bool) {
	n := 0
	for next = i; next < len(format) && '0' <= format[next] && format[next] <= '9'; next++ {
		if n > maxNum {
			return len(format), false, false
		}
		n = n*10 + int(format[next]-'0')
	}
	return next, next > i, true
}

// badVerb reports whether fmt rejects verb for arg. The rejection shows up
// as extra "%!" diagnostics compared with the plain %v rendering, which
// also catches bad verbs applied to the elements of slices and maps.
func badVerb(verb rune, arg any) bool {
	out := fmt.Sprintf("%"+string(verb), arg)
	return strings.Count(out, "%!") > strings.Count(fmt.Sprint(arg), "%!")
}
