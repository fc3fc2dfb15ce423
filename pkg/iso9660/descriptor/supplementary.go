package descriptor

import (
	"bytes"
	"fmt"

	"github.com/Roughsketch/iso/pkg/consts"
	"github.com/Roughsketch/iso/pkg/logging"
)

const (
	// Offset of the Volume Flags byte within the body (BP 8).
	SUPPLEMENTARY_VOLUME_FLAGS_OFFSET = 0
	// Offset of the Escape Sequences field within the body (BP 89 to 120).
	SUPPLEMENTARY_ESCAPE_SEQUENCES_OFFSET = 81
	SUPPLEMENTARY_ESCAPE_SEQUENCES_SIZE   = 32
)

// SupplementaryVolumeDescriptor keeps the body of a type 2 descriptor as recorded. Only the fields needed to
// recognise the character set are pulled out; identifiers are left undecoded since they are typically UCS-2.
type SupplementaryVolumeDescriptor struct {
	VolumeDescriptorHeader            `yaml:",inline"`
	SupplementaryVolumeDescriptorBody `yaml:",inline"`
}

type SupplementaryVolumeDescriptorBody struct {
	// Volume Flags only has 1 currently used bit field, bit 0, which if set to 0 means that the Escape Sequences field
	// specifies only escape sequences registered according to ISO 2375. If set to 1 it means that the Escape Sequences
	// field specifies at least one escape sequence not registered according to ISO 2375
	VolumeFlags byte `json:"volume_flags" yaml:"volume_flags"`
	// Escape Sequences specifies one or more escape sequences according to ISO 2022 that designate the graphic
	// character sets used to interpret the descriptor fields. Unused trailing bytes are (00).
	EscapeSequences [SUPPLEMENTARY_ESCAPE_SEQUENCES_SIZE]byte `json:"-" yaml:"-"`
	// Raw holds the complete body following the header.
	Raw [consts.ISO9660_VOLUME_DESC_BODY_SIZE]byte `json:"-" yaml:"-"`
	// Logger
	Logger *logging.Logger `json:"-" yaml:"-"`
}

// JolietLevel returns 1, 2 or 3 when the escape sequences announce Joliet, otherwise 0.
func (d *SupplementaryVolumeDescriptor) JolietLevel() int {
	seq := bytes.TrimRight(d.EscapeSequences[:], "\x00")
	switch string(seq) {
	case consts.JOLIET_LEVEL_1_ESCAPE:
		return 1
	case consts.JOLIET_LEVEL_2_ESCAPE:
		return 2
	case consts.JOLIET_LEVEL_3_ESCAPE:
		return 3
	default:
		return 0
	}
}

// IsJoliet reports whether this descriptor describes a Joliet directory hierarchy.
func (d *SupplementaryVolumeDescriptor) IsJoliet() bool {
	return d.JolietLevel() != 0
}

// Marshal writes the raw body back out. VolumeFlags and EscapeSequences take precedence over the bytes in Raw.
func (d *SupplementaryVolumeDescriptor) Marshal() ([consts.ISO9660_SECTOR_SIZE]byte, error) {
	var sector [consts.ISO9660_SECTOR_SIZE]byte

	headerBytes, err := d.VolumeDescriptorHeader.Marshal()
	if err != nil {
		return sector, fmt.Errorf("failed to marshal header: %w", err)
	}
	copy(sector[:consts.ISO9660_VOLUME_DESC_HEADER_SIZE], headerBytes[:])

	body := sector[consts.ISO9660_VOLUME_DESC_HEADER_SIZE:]
	copy(body, d.Raw[:])
	body[SUPPLEMENTARY_VOLUME_FLAGS_OFFSET] = d.VolumeFlags
	copy(body[SUPPLEMENTARY_ESCAPE_SEQUENCES_OFFSET:], d.EscapeSequences[:])

	return sector, nil
}

// Unmarshal parses a 2048-byte sector into the SupplementaryVolumeDescriptor.
func (d *SupplementaryVolumeDescriptor) Unmarshal(data [consts.ISO9660_SECTOR_SIZE]byte) error {
	if err := unmarshalHeader(&d.VolumeDescriptorHeader, &data, TYPE_SUPPLEMENTARY_DESCRIPTOR); err != nil {
		return err
	}

	copy(d.Raw[:], data[consts.ISO9660_VOLUME_DESC_HEADER_SIZE:])
	d.VolumeFlags = d.Raw[SUPPLEMENTARY_VOLUME_FLAGS_OFFSET]
	copy(d.EscapeSequences[:], d.Raw[SUPPLEMENTARY_ESCAPE_SEQUENCES_OFFSET:])

	loggerOrDefault(d.Logger).Trace("Unmarshalled supplementary volume descriptor",
		"volumeFlags", d.VolumeFlags,
		"jolietLevel", d.JolietLevel())
	return nil
}
