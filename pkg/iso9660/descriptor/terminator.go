package descriptor

import (
	"fmt"

	"github.com/Roughsketch/iso/pkg/consts"
)

// VolumeDescriptorSetTerminator ends the volume descriptor set. The rest of the sector is reserved.
type VolumeDescriptorSetTerminator struct {
	VolumeDescriptorHeader `yaml:",inline"`
}

// NewVolumeDescriptorSetTerminator returns a terminator with a valid header.
func NewVolumeDescriptorSetTerminator() *VolumeDescriptorSetTerminator {
	return &VolumeDescriptorSetTerminator{VolumeDescriptorHeader: NewVolumeDescriptorHeader(TYPE_TERMINATOR_DESCRIPTOR)}
}

func (d *VolumeDescriptorSetTerminator) Marshal() ([consts.ISO9660_SECTOR_SIZE]byte, error) {
	return marshalMarker(&d.VolumeDescriptorHeader)
}

func (d *VolumeDescriptorSetTerminator) Unmarshal(data [consts.ISO9660_SECTOR_SIZE]byte) error {
	return unmarshalHeader(&d.VolumeDescriptorHeader, &data, TYPE_TERMINATOR_DESCRIPTOR)
}

// marshalMarker writes a sector holding only the header, zero filled.
func marshalMarker(h *VolumeDescriptorHeader) ([consts.ISO9660_SECTOR_SIZE]byte, error) {
	var sector [consts.ISO9660_SECTOR_SIZE]byte
	headerBytes, err := h.Marshal()
	if err != nil {
		return sector, fmt.Errorf("failed to marshal VolumeDescriptorHeader: %w", err)
	}
	copy(sector[:consts.ISO9660_VOLUME_DESC_HEADER_SIZE], headerBytes[:])
	return sector, nil
}
