package descriptor

import (
	"encoding/binary"
	"fmt"

	"github.com/Roughsketch/iso/pkg/consts"
	"github.com/Roughsketch/iso/pkg/iso9660/encoding"
	"github.com/Roughsketch/iso/pkg/logging"
)

const (
	// Boot System Use Size is the size of a sector minus 71 bytes
	BOOT_SYSTEM_USE_SIZE = consts.ISO9660_SECTOR_SIZE - 71
)

type BootRecordDescriptor struct {
	VolumeDescriptorHeader `yaml:",inline"`
	BootRecordBody         `yaml:",inline"`
}

// NewBootRecordDescriptor returns a boot record with a valid header and the given identifiers.
func NewBootRecordDescriptor(systemID, bootID string) *BootRecordDescriptor {
	return &BootRecordDescriptor{
		VolumeDescriptorHeader: NewVolumeDescriptorHeader(TYPE_BOOT_RECORD),
		BootRecordBody: BootRecordBody{
			BootSystemIdentifier: systemID,
			BootIdentifier:       bootID,
		},
	}
}

// IsElTorito reports whether the boot record announces an El Torito boot catalog.
func (d *BootRecordDescriptor) IsElTorito() bool {
	return d.BootSystemIdentifier == consts.EL_TORITO_BOOT_SYSTEM_ID
}

// BootCatalogLocation returns the absolute sector of the El Torito boot catalog, recorded little-endian in the first
// four bytes of the boot system use field. The second result is false if this is not an El Torito boot record.
func (d *BootRecordDescriptor) BootCatalogLocation() (uint32, bool) {
	if !d.IsElTorito() {
		return 0, false
	}
	return binary.LittleEndian.Uint32(d.BootSystemUse[0:4]), true
}

type BootRecordBody struct {
	// Boot System Identifier specifies and identification of a system which can recognize and act upon the contents of
	// the Boot Identifier and Boot System Use fields in the Boot Record. (a-characters)
	BootSystemIdentifier string `json:"boot_system_identifier" yaml:"boot_system_identifier"`
	// Boot Identifier shall specify an identification of the boot system specified in the Boot System Use field of the
	// Boot Record. (a-characters)
	BootIdentifier string `json:"boot_identifier" yaml:"boot_identifier"`
	// Boot System Use is a byte field that is used by the boot system specified by the identifier.
	BootSystemUse [BOOT_SYSTEM_USE_SIZE]byte `json:"-" yaml:"-"`
	// Logger
	Logger *logging.Logger `json:"-" yaml:"-"`
}

// Marshal converts the BootRecordDescriptor into its 2048-byte on-disk representation.
func (d *BootRecordDescriptor) Marshal() ([consts.ISO9660_SECTOR_SIZE]byte, error) {
	var buf [consts.ISO9660_SECTOR_SIZE]byte

	headerBytes, err := d.VolumeDescriptorHeader.Marshal()
	if err != nil {
		return buf, fmt.Errorf("failed to marshal VolumeDescriptorHeader: %w", err)
	}

	w := encoding.NewFieldWriter(buf[:])
	w.Bytes(headerBytes[:])
	w.String(d.BootSystemIdentifier, 32)
	w.String(d.BootIdentifier, 32)
	w.Bytes(d.BootSystemUse[:])

	if err := w.Err(); err != nil {
		return buf, err
	}
	if w.Offset() != consts.ISO9660_SECTOR_SIZE {
		return buf, fmt.Errorf("marshal BootRecordDescriptor: incorrect offset %d", w.Offset())
	}
	return buf, nil
}

// Unmarshal parses a 2048-byte sector into the BootRecordDescriptor.
func (d *BootRecordDescriptor) Unmarshal(data [consts.ISO9660_SECTOR_SIZE]byte) error {
	if err := unmarshalHeader(&d.VolumeDescriptorHeader, &data, TYPE_BOOT_RECORD); err != nil {
		return err
	}

	r := encoding.NewFieldReader(data[consts.ISO9660_VOLUME_DESC_HEADER_SIZE:])
	body := BootRecordBody{Logger: d.Logger}
	var err error

	if body.BootSystemIdentifier, err = r.String(32); err != nil {
		return fmt.Errorf("failed to unmarshal bootSystemIdentifier: %w", err)
	}
	if body.BootIdentifier, err = r.String(32); err != nil {
		return fmt.Errorf("failed to unmarshal bootIdentifier: %w", err)
	}
	if err = r.ReadInto(body.BootSystemUse[:]); err != nil {
		return err
	}
	if r.Remaining() != 0 {
		return fmt.Errorf("unmarshal BootRecordDescriptor: %d bytes left over", r.Remaining())
	}

	loggerOrDefault(body.Logger).Trace("Unmarshalled boot record",
		"bootSystemIdentifier", body.BootSystemIdentifier,
		"bootIdentifier", body.BootIdentifier)

	d.BootRecordBody = body
	return nil
}
