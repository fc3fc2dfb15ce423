// Package validation checks decoded identifiers against the ISO9660 character sets. The decoders only require
// UTF-8, so these checks report interchange problems without rejecting the image.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Roughsketch/iso/pkg/consts"
)

// ErrCharacterSet is wrapped by every error returned from this package.
var ErrCharacterSet = errors.New("character outside permitted set")

func validateByAllowedChars(s, allowed, setName string) error {
	for i, r := range s {
		if !strings.ContainsRune(allowed, r) {
			return fmt.Errorf("%w: invalid %s-character at index %d: %q", ErrCharacterSet, setName, i, r)
		}
	}
	return nil
}

// ValidateACharacters checks that every character in the input string is one of the allowed A_CHARACTERS.
// If allowSeparators is true, it also permits the ISO9660 separator characters.
func ValidateACharacters(s string, allowSeparators bool) error {
	allowedChars := consts.A_CHARACTERS
	if allowSeparators {
		allowedChars += consts.ISO9660_SEPARATOR_1 + consts.ISO9660_SEPARATOR_2
	}
	return validateByAllowedChars(s, allowedChars, "a")
}

// ValidateDCharacters checks that every character in the input string is one of the allowed D_CHARACTERS.
// If allowSeparators is true, it also permits the ISO9660 separator characters.
func ValidateDCharacters(s string, allowSeparators bool) error {
	allowedChars := consts.D_CHARACTERS
	if allowSeparators {
		allowedChars += consts.ISO9660_SEPARATOR_1 + consts.ISO9660_SEPARATOR_2
	}
	return validateByAllowedChars(s, allowedChars, "d")
}

// ValidateOwnerIdentifier checks a publisher, data preparer or application identifier. A leading underscore means
// the rest names a file in the root directory, which is checked as d-characters with separators.
func ValidateOwnerIdentifier(s string) error {
	if rest, ok := strings.CutPrefix(s, "_"); ok {
		return ValidateDCharacters(rest, true)
	}
	return ValidateACharacters(s, false)
}
