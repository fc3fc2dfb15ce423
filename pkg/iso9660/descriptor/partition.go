package descriptor

import (
	"github.com/Roughsketch/iso/pkg/consts"
)

// VolumePartitionDescriptor marks a type 3 sector. Its payload is not interpreted.
type VolumePartitionDescriptor struct {
	VolumeDescriptorHeader `yaml:",inline"`
}

func (d *VolumePartitionDescriptor) Marshal() ([consts.ISO9660_SECTOR_SIZE]byte, error) {
	return marshalMarker(&d.VolumeDescriptorHeader)
}

func (d *VolumePartitionDescriptor) Unmarshal(data [consts.ISO9660_SECTOR_SIZE]byte) error {
	return unmarshalHeader(&d.VolumeDescriptorHeader, &data, TYPE_PARTITION_DESCRIPTOR)
}
