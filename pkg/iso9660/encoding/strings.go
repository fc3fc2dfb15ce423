package encoding

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Roughsketch/iso/pkg/iso9660/isoerr"
)

// DecodeString converts a fixed-width identifier field into a string. The bytes must be valid UTF-8; trailing
// filler (spaces, other whitespace and NUL bytes) is trimmed.
//
// ISO9660 restricts identifiers to the a- and d-character sets, but only UTF-8 validity is enforced here.
func DecodeString(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %q is not valid utf-8", isoerr.ErrInvalidEncoding, b)
	}
	return strings.TrimRightFunc(string(b), isPadding), nil
}

func isPadding(r rune) bool {
	return r == 0 || unicode.IsSpace(r)
}
