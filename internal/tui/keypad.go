package tui

import "strings"

// maxAmountLength caps the amount the keypad will build.
const maxAmountLength = 10

// keypadAppend applies one keypad digit (or the decimal point) to the
// amount string being built. The string always holds a displayable value:
// a leading zero is replaced by the first digit, a second decimal point is
// ignored, and input past the cap is dropped.
func keypadAppend(amount, key string) string {
	switch {
	case amount == "0" && key != ".":
		return key
	case key == "." && strings.Contains(amount, "."):
		return amount
	case len(amount) < maxAmountLength:
		return amount + key
	default:
		return amount
	}
}

// keypadDelete removes the last character, bottoming out at "0".
func keypadDelete(amount string) string {
	if len(amount) <= 1 {
		return "0"
	}
	return amount[:len(amount)-1]
}

// keypadClear resets the amount.
func keypadClear() string {
	return "0"
}
