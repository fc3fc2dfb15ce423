package descriptor

import (
	"fmt"

	"github.com/Roughsketch/iso/pkg/consts"
	"github.com/Roughsketch/iso/pkg/logging"
)

// VolumeDescriptorType represents the type of volume descriptor in the ISO9660 standard.
type VolumeDescriptorType byte

const (
	// TYPE_BOOT_RECORD indicates a Boot Record (type 0).
	TYPE_BOOT_RECORD VolumeDescriptorType = 0x00

	// TYPE_PRIMARY_DESCRIPTOR indicates a Primary Volume Descriptor (type 1).
	TYPE_PRIMARY_DESCRIPTOR VolumeDescriptorType = 0x01

	// TYPE_SUPPLEMENTARY_DESCRIPTOR indicates a Supplementary Volume Descriptor (type 2).
	TYPE_SUPPLEMENTARY_DESCRIPTOR VolumeDescriptorType = 0x02

	// TYPE_PARTITION_DESCRIPTOR indicates a Partition Volume Descriptor (type 3).
	TYPE_PARTITION_DESCRIPTOR VolumeDescriptorType = 0x03

	// TYPE_TERMINATOR_DESCRIPTOR indicates the Volume Descriptor Set Terminator (type 255).
	TYPE_TERMINATOR_DESCRIPTOR VolumeDescriptorType = 0xFF
)

func (t VolumeDescriptorType) String() string {
	switch t {
	case TYPE_BOOT_RECORD:
		return "Boot Record"
	case TYPE_PRIMARY_DESCRIPTOR:
		return "Primary Volume Descriptor"
	case TYPE_SUPPLEMENTARY_DESCRIPTOR:
		return "Supplementary Volume Descriptor"
	case TYPE_PARTITION_DESCRIPTOR:
		return "Volume Partition Descriptor"
	case TYPE_TERMINATOR_DESCRIPTOR:
		return "Volume Descriptor Set Terminator"
	default:
		return fmt.Sprintf("Unknown(%d)", byte(t))
	}
}

// VolumeDescriptor is implemented by exactly five types: *BootRecordDescriptor, *PrimaryVolumeDescriptor,
// *SupplementaryVolumeDescriptor, *VolumePartitionDescriptor and *VolumeDescriptorSetTerminator.
type VolumeDescriptor interface {
	Type() VolumeDescriptorType
	Identifier() string
	Version() uint8
	Marshal() ([consts.ISO9660_SECTOR_SIZE]byte, error)
	Unmarshal(data [consts.ISO9660_SECTOR_SIZE]byte) error
}

// New returns an empty descriptor of the given type ready to Unmarshal a sector, or false if the type is not one
// of the five defined kinds. The logger may be nil.
func New(t VolumeDescriptorType, log *logging.Logger) (VolumeDescriptor, bool) {
	switch t {
	case TYPE_BOOT_RECORD:
		return &BootRecordDescriptor{BootRecordBody: BootRecordBody{Logger: log}}, true
	case TYPE_PRIMARY_DESCRIPTOR:
		return &PrimaryVolumeDescriptor{PrimaryVolumeDescriptorBody: PrimaryVolumeDescriptorBody{Logger: log}}, true
	case TYPE_SUPPLEMENTARY_DESCRIPTOR:
		return &SupplementaryVolumeDescriptor{SupplementaryVolumeDescriptorBody: SupplementaryVolumeDescriptorBody{Logger: log}}, true
	case TYPE_PARTITION_DESCRIPTOR:
		return &VolumePartitionDescriptor{}, true
	case TYPE_TERMINATOR_DESCRIPTOR:
		return &VolumeDescriptorSetTerminator{}, true
	default:
		return nil, false
	}
}

func loggerOrDefault(l *logging.Logger) *logging.Logger {
	if l == nil {
		return logging.DefaultLogger()
	}
	return l
}
