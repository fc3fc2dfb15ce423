package descriptor

import (
	"fmt"

	"github.com/Roughsketch/iso/pkg/consts"
	"github.com/Roughsketch/iso/pkg/helpers"
	"github.com/Roughsketch/iso/pkg/iso9660/isoerr"
)

type VolumeDescriptorHeader struct {
	// Volume Descriptor Types.
	//  | 0 = Boot Record
	//  | 1 = Primary
	//  | 2 = Supplementary
	//  | 3 = Partition
	//  | 4 - 254 = Reserved
	//  | 255 = Terminator
	VolumeDescriptorType VolumeDescriptorType `json:"volume_descriptor_type" yaml:"volume_descriptor_type"`
	// Standard Identifier should always be 'CD001' as a string or 0x4344303031.
	StandardIdentifier string `json:"standard_identifier" yaml:"standard_identifier"`
	// Volume Descriptor Version. Always 1 for the descriptors of this Standard.
	VolumeDescriptorVersion uint8 `json:"volume_descriptor_version" yaml:"volume_descriptor_version"`
}

// NewVolumeDescriptorHeader returns a well-formed header for the given descriptor type.
func NewVolumeDescriptorHeader(t VolumeDescriptorType) VolumeDescriptorHeader {
	return VolumeDescriptorHeader{
		VolumeDescriptorType:    t,
		StandardIdentifier:      consts.ISO9660_STD_IDENTIFIER,
		VolumeDescriptorVersion: consts.ISO9660_VOLUME_DESC_VERSION,
	}
}

func (h *VolumeDescriptorHeader) Type() VolumeDescriptorType {
	return h.VolumeDescriptorType
}

func (h *VolumeDescriptorHeader) Identifier() string {
	return h.StandardIdentifier
}

func (h *VolumeDescriptorHeader) Version() uint8 {
	return h.VolumeDescriptorVersion
}

// Marshal converts the VolumeDescriptorHeader into its 7-byte on-disk representation.
func (vdh *VolumeDescriptorHeader) Marshal() ([consts.ISO9660_VOLUME_DESC_HEADER_SIZE]byte, error) {
	var buf [consts.ISO9660_VOLUME_DESC_HEADER_SIZE]byte

	// Byte 0: Volume Descriptor Type.
	buf[0] = byte(vdh.VolumeDescriptorType)

	// Bytes 1-5: Standard Identifier.
	copy(buf[1:6], helpers.PadString(vdh.StandardIdentifier, 5))

	// Byte 6: Volume Descriptor Version.
	buf[6] = vdh.VolumeDescriptorVersion

	return buf, nil
}

// Unmarshal parses the 7-byte header and validates the standard identifier and version. The type byte is not
// checked here; an unknown type is reported by whoever dispatches on it.
func (vdh *VolumeDescriptorHeader) Unmarshal(data [consts.ISO9660_VOLUME_DESC_HEADER_SIZE]byte) error {
	vdh.VolumeDescriptorType = VolumeDescriptorType(data[0])
	vdh.StandardIdentifier = string(data[1:6])
	vdh.VolumeDescriptorVersion = data[6]

	if vdh.StandardIdentifier != consts.ISO9660_STD_IDENTIFIER {
		return fmt.Errorf("%w: unexpected standard identifier %q", isoerr.ErrInvalidHeader, vdh.StandardIdentifier)
	}
	if vdh.VolumeDescriptorVersion != consts.ISO9660_VOLUME_DESC_VERSION {
		return fmt.Errorf("%w: unexpected version %d", isoerr.ErrInvalidHeader, vdh.VolumeDescriptorVersion)
	}
	return nil
}

// unmarshalHeader validates the header of a full sector and checks it carries the expected type.
func unmarshalHeader(h *VolumeDescriptorHeader, data *[consts.ISO9660_SECTOR_SIZE]byte, want VolumeDescriptorType) error {
	if err := h.Unmarshal([consts.ISO9660_VOLUME_DESC_HEADER_SIZE]byte(data[:consts.ISO9660_VOLUME_DESC_HEADER_SIZE])); err != nil {
		return fmt.Errorf("failed to unmarshal VolumeDescriptorHeader: %w", err)
	}
	if h.VolumeDescriptorType != want {
		return fmt.Errorf("%w: expected %s, got %s", isoerr.ErrUnknownDescriptorType, want, h.VolumeDescriptorType)
	}
	return nil
}
