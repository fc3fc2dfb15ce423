package systemarea

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Roughsketch/iso/pkg/consts"
	"github.com/Roughsketch/iso/pkg/iso9660/isoerr"
)

// Offset and signature of an MBR partition table, present in isohybrid images.
const (
	MBR_SIGNATURE_OFFSET = 510
	MBR_SIGNATURE        = "\x55\xAA"
)

type SystemArea struct {
	// System Area's use isn't defined in the ISO 9660 standard. It is reserved for system use.
	Contents [consts.ISO9660_SYSTEM_AREA_SIZE]byte `json:"-" yaml:"-"`
}

// Read fills the system area from r. Anything short of the full 32768 bytes is an error.
func (s *SystemArea) Read(r io.Reader) error {
	if n, err := io.ReadFull(r, s.Contents[:]); err != nil {
		return fmt.Errorf("%w: reading system area: got %d of %d bytes: %w",
			isoerr.ErrIO, n, consts.ISO9660_SYSTEM_AREA_SIZE, err)
	}
	return nil
}

// IsEmpty reports whether every byte of the system area is zero.
func (s *SystemArea) IsEmpty() bool {
	var zero [consts.ISO9660_SYSTEM_AREA_SIZE]byte
	return s.Contents == zero
}

// HasMBR reports whether the first sector ends with the 0x55AA boot signature.
func (s *SystemArea) HasMBR() bool {
	return bytes.Equal(s.Contents[MBR_SIGNATURE_OFFSET:MBR_SIGNATURE_OFFSET+2], []byte(MBR_SIGNATURE))
}

func (s *SystemArea) Marshal() ([]byte, error) {
	return s.Contents[:], nil
}
