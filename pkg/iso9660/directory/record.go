package directory

import (
	"fmt"
	"time"

	"github.com/Roughsketch/iso/pkg/consts"
	"github.com/Roughsketch/iso/pkg/iso9660/encoding"
)

// ROOT_RECORD_IDENTIFIER is the single byte file identifier of a directory's own "." entry.
const ROOT_RECORD_IDENTIFIER = 0x00

// DirectoryRecord is the fixed 34-byte Directory Record for the Root Directory recorded inside a volume descriptor.
// Only the fixed part of the record is decoded; directory traversal is left to callers.
type DirectoryRecord struct {
	// Length Of Directory Record specifies the length of the directory record in bytes.
	LengthOfDirectoryRecord uint8 `json:"length_of_directory_record" yaml:"length_of_directory_record"`
	// Extended Attribute Record Length specifies the assigned Extended Attribute Record length if one is recorded,
	// otherwise it will be zero.
	ExtendedAttributeRecordLength uint8 `json:"extended_attribute_record_length" yaml:"extended_attribute_record_length"`
	// Location of Extent specifies the Logical Block Number of the first Logical Block allocated to the Extent.
	//  | Encoding: BothByteOrder
	LocationOfExtent uint32 `json:"location_of_extent" yaml:"location_of_extent"`
	// Data Length specifies the data length of the File Section.
	//  | Encoding: BothByteOrder
	DataLength uint32 `json:"data_length" yaml:"data_length"`
	// Recording Date and Time specifies when the information in the Extent was recorded.
	//  | Encoding: 7-byte time format
	RecordingDateAndTime time.Time `json:"recording_date_and_time" yaml:"recording_date_and_time"`
	// File Flags records flags related to the Directory Record.
	FileFlags FileFlags `json:"file_flags" yaml:"file_flags"`
	// File Unit Size is non-zero only for interleaved File Sections.
	FileUnitSize uint8 `json:"file_unit_size" yaml:"file_unit_size"`
	// Interleave Gap Size is non-zero only for interleaved File Sections.
	InterleaveGapSize uint8 `json:"interleave_gap_size" yaml:"interleave_gap_size"`
	// Volume Sequence Number is the ordinal number of the volume in the Volume Set holding the Extent.
	//  | Encoding: BothByteOrder
	VolumeSequenceNumber uint16 `json:"volume_sequence_number" yaml:"volume_sequence_number"`
	// Length of File Identifier, always 1 for the root record.
	LengthOfFileIdentifier uint8 `json:"length_of_file_identifier" yaml:"length_of_file_identifier"`
	// File Identifier is 0x00 for the root record.
	FileIdentifier byte `json:"file_identifier" yaml:"file_identifier"`
}

// IsDirectory checks if the record describes a directory
func (dr *DirectoryRecord) IsDirectory() bool {
	return dr.FileFlags.Directory()
}

// Marshal converts the DirectoryRecord into its 34-byte on-disk representation.
func (dr *DirectoryRecord) Marshal() ([consts.ISO9660_ROOT_DIRECTORY_RECORD_SIZE]byte, error) {
	var data [consts.ISO9660_ROOT_DIRECTORY_RECORD_SIZE]byte

	data[0] = dr.LengthOfDirectoryRecord
	data[1] = dr.ExtendedAttributeRecordLength

	extent := encoding.MarshalBothByteOrders32(dr.LocationOfExtent)
	copy(data[2:10], extent[:])

	length := encoding.MarshalBothByteOrders32(dr.DataLength)
	copy(data[10:18], length[:])

	recorded, err := encoding.MarshalRecordingDateTime(dr.RecordingDateAndTime)
	if err != nil {
		return data, fmt.Errorf("failed to marshal recordingDateAndTime: %w", err)
	}
	copy(data[18:25], recorded[:])

	data[25] = byte(dr.FileFlags)
	data[26] = dr.FileUnitSize
	data[27] = dr.InterleaveGapSize

	seq := encoding.MarshalBothByteOrders16(dr.VolumeSequenceNumber)
	copy(data[28:32], seq[:])

	data[32] = dr.LengthOfFileIdentifier
	data[33] = dr.FileIdentifier
	return data, nil
}

// Unmarshal parses the 34-byte root Directory Record.
func (dr *DirectoryRecord) Unmarshal(data [consts.ISO9660_ROOT_DIRECTORY_RECORD_SIZE]byte) error {
	r := encoding.NewFieldReader(data[:])
	var err error

	if dr.LengthOfDirectoryRecord, err = r.Uint8(); err != nil {
		return err
	}
	if dr.ExtendedAttributeRecordLength, err = r.Uint8(); err != nil {
		return err
	}
	if dr.LocationOfExtent, err = r.Uint32LSBMSB(); err != nil {
		return fmt.Errorf("failed to unmarshal locationOfExtent: %w", err)
	}
	if dr.DataLength, err = r.Uint32LSBMSB(); err != nil {
		return fmt.Errorf("failed to unmarshal dataLength: %w", err)
	}
	if dr.RecordingDateAndTime, err = r.RecordingDateTime(); err != nil {
		return fmt.Errorf("failed to unmarshal recordingDateAndTime: %w", err)
	}
	flags, err := r.Uint8()
	if err != nil {
		return err
	}
	dr.FileFlags = FileFlags(flags)
	if dr.FileUnitSize, err = r.Uint8(); err != nil {
		return err
	}
	if dr.InterleaveGapSize, err = r.Uint8(); err != nil {
		return err
	}
	if dr.VolumeSequenceNumber, err = r.Uint16LSBMSB(); err != nil {
		return fmt.Errorf("failed to unmarshal volumeSequenceNumber: %w", err)
	}
	if dr.LengthOfFileIdentifier, err = r.Uint8(); err != nil {
		return err
	}
	if dr.FileIdentifier, err = r.Uint8(); err != nil {
		return err
	}
	return nil
}
