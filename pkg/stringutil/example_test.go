package stringutil_test

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/moebuff/lang/pkg/stringutil"
)

func ExampleIsBlank() {
	fmt.Println(stringutil.IsBlank(""))
	fmt.Println(stringutil.IsBlank(" \t\n"))
	fmt.Println(stringutil.IsBlank("  alex  "))
	// Output:
	// true
	// true
	// false
}

func ExampleCapitalize() {
	fmt.Println(stringutil.Capitalize("alex"))
	fmt.Println(stringutil.Capitalize("élan"))
	fmt.Println(stringutil.Capitalize("9alex"))
	// Output:
	// Alex
	// Élan
	// 9alex
}

func ExampleCapitalizeIn() {
	fmt.Println(stringutil.CapitalizeIn("istanbul", language.Turkish))
	// Output: İstanbul
}
