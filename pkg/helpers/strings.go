package helpers

import "github.com/Roughsketch/iso/pkg/consts"

// PadString copies s into a field of the given length and fills the remainder with the ISO9660 filler. Strings
// longer than the field are truncated.
func PadString(s string, length int) []byte {
	b := make([]byte, length)
	n := copy(b, s)
	for i := n; i < length; i++ {
		b[i] = consts.ISO9660_FILLER
	}
	return b
}
