// Package generator builds password alphabets and draws passwords from them.
package generator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned for a non-positive length or an empty alphabet.
var ErrInvalidArgument = errors.New("invalid argument")

// Options configures a single generation.
type Options struct {
	Length         int
	IncludeDigits  bool
	IncludeSymbols bool
}

// Generate draws length characters from alphabet, each index chosen
// independently and uniformly from [0, n) where n is the number of runes in
// alphabet. The result always has exactly length characters.
func Generate(length int, alphabet string, src Source) (password string, err error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: length must be positive, got %d", ErrInvalidArgument, length)
	}
	if alphabet == "" {
		return "", fmt.Errorf("%w: alphabet is empty", ErrInvalidArgument)
	}
	if src == nil {
		src = NewSecureSource()
	}

	defer func() {
		if r := recover(); r != nil {
			password = ""
			err = fmt.Errorf("drawing random index: %v", r)
		}
	}()

	chars := []rune(alphabet)
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteRune(chars[src.IntN(len(chars))])
	}

	return sb.String(), nil
}

// GenerateFromOptions builds the alphabet for opts and generates a password from it.
func GenerateFromOptions(opts Options, src Source) (string, error) {
	return Generate(opts.Length, BuildAlphabet(opts.IncludeDigits, opts.IncludeSymbols), src)
}
