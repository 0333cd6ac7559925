package generator

const (
	letterChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*-_+=[]{}~`"
)

// Letters returns the base set every alphabet starts with.
func Letters() string { return letterChars }

// Digits returns the set appended when digits are included.
func Digits() string { return digitChars }

// Symbols returns the set appended when symbols are included.
func Symbols() string { return symbolChars }

// BuildAlphabet returns the characters eligible for a password: the 52
// Latin letters, followed by the digits and then the symbols when requested.
// Characters are never shuffled or de-duplicated.
func BuildAlphabet(includeDigits, includeSymbols bool) string {
	alphabet := letterChars
	if includeDigits {
		alphabet += digitChars
	}
	if includeSymbols {
		alphabet += symbolChars
	}
	return alphabet
}
