package descriptor

import (
	"fmt"
	"time"

	"github.com/Roughsketch/iso/pkg/consts"
	"github.com/Roughsketch/iso/pkg/iso9660/directory"
	"github.com/Roughsketch/iso/pkg/iso9660/encoding"
	"github.com/Roughsketch/iso/pkg/iso9660/validation"
	"github.com/Roughsketch/iso/pkg/logging"
)

const (
	// Reserved for future use field from BP 1396 to 2048
	PRIMARY_RESERVED_FIELD2_SIZE = 653

	COPYRIGHT_FILE_IDENTIFIER_SIZE     = 38
	ABSTRACT_FILE_IDENTIFIER_SIZE      = 36
	BIBLIOGRAPHIC_FILE_IDENTIFIER_SIZE = 37
)

type PrimaryVolumeDescriptor struct {
	VolumeDescriptorHeader      `yaml:",inline"`
	PrimaryVolumeDescriptorBody `yaml:",inline"`
}

// NewPrimaryVolumeDescriptor returns a descriptor with a valid header and an all-zero body.
func NewPrimaryVolumeDescriptor() *PrimaryVolumeDescriptor {
	return &PrimaryVolumeDescriptor{VolumeDescriptorHeader: NewVolumeDescriptorHeader(TYPE_PRIMARY_DESCRIPTOR)}
}

func (pvd *PrimaryVolumeDescriptor) VolumeIdentifier() string {
	return pvd.PrimaryVolumeDescriptorBody.VolumeIdentifier
}

func (pvd *PrimaryVolumeDescriptor) SystemIdentifier() string {
	return pvd.PrimaryVolumeDescriptorBody.SystemIdentifier
}

func (pvd *PrimaryVolumeDescriptor) VolumeCreationDateTime() time.Time {
	return pvd.PrimaryVolumeDescriptorBody.VolumeCreationDateAndTime
}

func (pvd *PrimaryVolumeDescriptor) VolumeModificationDateTime() time.Time {
	return pvd.PrimaryVolumeDescriptorBody.VolumeModificationDateAndTime
}

// RootDirectory parses the raw root directory record. The record is kept undecoded in the descriptor so that a
// damaged root record does not prevent the volume metadata from being read.
func (pvd *PrimaryVolumeDescriptor) RootDirectory() (*directory.DirectoryRecord, error) {
	dr := &directory.DirectoryRecord{}
	if err := dr.Unmarshal(pvd.RootDirectoryRecord); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rootDirectoryRecord: %w", err)
	}
	return dr, nil
}

// SetRootDirectory encodes dr into the raw root directory record.
func (pvd *PrimaryVolumeDescriptor) SetRootDirectory(dr *directory.DirectoryRecord) error {
	data, err := dr.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal rootDirectoryRecord: %w", err)
	}
	pvd.RootDirectoryRecord = data
	return nil
}

func (pvd *PrimaryVolumeDescriptor) Marshal() ([consts.ISO9660_SECTOR_SIZE]byte, error) {
	var data [consts.ISO9660_SECTOR_SIZE]byte

	headerBytes, err := pvd.VolumeDescriptorHeader.Marshal()
	if err != nil {
		return data, fmt.Errorf("failed to marshal VolumeDescriptorHeader: %w", err)
	}
	bodyBytes, err := pvd.PrimaryVolumeDescriptorBody.Marshal()
	if err != nil {
		return data, fmt.Errorf("failed to marshal PrimaryVolumeDescriptorBody: %w", err)
	}

	copy(data[:consts.ISO9660_VOLUME_DESC_HEADER_SIZE], headerBytes[:])
	copy(data[consts.ISO9660_VOLUME_DESC_HEADER_SIZE:], bodyBytes[:])
	return data, nil
}

func (pvd *PrimaryVolumeDescriptor) Unmarshal(data [consts.ISO9660_SECTOR_SIZE]byte) error {
	if err := unmarshalHeader(&pvd.VolumeDescriptorHeader, &data, TYPE_PRIMARY_DESCRIPTOR); err != nil {
		return err
	}
	if err := pvd.PrimaryVolumeDescriptorBody.Unmarshal(data[consts.ISO9660_VOLUME_DESC_HEADER_SIZE:]); err != nil {
		return fmt.Errorf("failed to unmarshal PrimaryVolumeDescriptorBody: %w", err)
	}
	return nil
}

type PrimaryVolumeDescriptorBody struct {
	// System Identifier specifies a system which can recognize and act upon the content of the Logical Sectors within
	// logical Sector Numbers 0 to 15 of the volume.
	//  | (a-characters)
	SystemIdentifier string `json:"system_identifier" yaml:"system_identifier"`
	// Volume Identifier specifies an identification of the volume
	//  | (d-characters)
	VolumeIdentifier string `json:"volume_identifier" yaml:"volume_identifier"`
	// Volume Space Size is a field that specifies the number of logical blocks in which the Volume Space of the volume
	// is recorded as a 32-bit number.
	//  | Encoding: BothByteOrder
	VolumeSpaceSize uint32 `json:"volume_space_size" yaml:"volume_space_size"`
	// Volume Set Size is a field that specifies the assigned Volume Set size of the volume as a 16-bit number.
	//  | Encoding: BothByteOrder
	VolumeSetSize uint16 `json:"volume_set_size" yaml:"volume_set_size"`
	// Volume Sequence Number is a field that represents the ordinal number of the volume in the Volume Set.
	//  | Encoding: BothByteOrder
	VolumeSequenceNumber uint16 `json:"volume_sequence_number" yaml:"volume_sequence_number"`
	// Logical Block Size specifies the size in bytes of a logical block
	//  | Encoding: BothByteOrder
	LogicalBlockSize uint16 `json:"logical_block_size" yaml:"logical_block_size"`
	// Path Table Size specifies the length in bytes of a recorded occurrence of the Path Table identified by this
	// Volume Descriptor.
	//  | Encoding: BothByteOrder
	PathTableSize uint32 `json:"path_table_size" yaml:"path_table_size"`
	// Logical Block Number of the first Logical Block of the Type L Path Table.
	//  | Encoding: LittleEndian
	LocationOfTypeLPathTable uint32 `json:"location_of_type_l_path_table" yaml:"location_of_type_l_path_table"`
	// Logical Block Number of the optional Type L Path Table, 0 if none is recorded.
	//  | Encoding: LittleEndian
	LocationOfOptionalTypeLPathTable uint32 `json:"location_of_optional_type_l_path_table" yaml:"location_of_optional_type_l_path_table"`
	// Logical Block Number of the first Logical Block of the Type M Path Table.
	//  | Encoding: BigEndian
	LocationOfTypeMPathTable uint32 `json:"location_of_type_m_path_table" yaml:"location_of_type_m_path_table"`
	// Logical Block Number of the optional Type M Path Table, 0 if none is recorded.
	//  | Encoding: BigEndian
	LocationOfOptionalTypeMPathTable uint32 `json:"location_of_optional_type_m_path_table" yaml:"location_of_optional_type_m_path_table"`
	// Root Directory Record as recorded, see RootDirectory.
	RootDirectoryRecord [consts.ISO9660_ROOT_DIRECTORY_RECORD_SIZE]byte `json:"-" yaml:"-"`
	// Volume Set Identifier specifies an identification of the Volume Set of which the volume is a member.
	//  | (d-characters)
	VolumeSetIdentifier string `json:"volume_set_identifier" yaml:"volume_set_identifier"`
	// Publisher Identifier. A leading (5F) names a file in the Root Directory holding the identification.
	PublisherIdentifier string `json:"publisher_identifier" yaml:"publisher_identifier"`
	// Data Preparer Identifier. A leading (5F) names a file in the Root Directory holding the identification.
	DataPreparerIdentifier string `json:"data_preparer_identifier" yaml:"data_preparer_identifier"`
	// Application Identifier. A leading (5F) names a file in the Root Directory holding the identification.
	ApplicationIdentifier string `json:"application_identifier" yaml:"application_identifier"`
	// Copyright File Identifier names a file in the Root Directory holding a copyright statement.
	CopyrightFileIdentifier string `json:"copyright_file_identifier" yaml:"copyright_file_identifier"`
	// Abstract File Identifier names a file in the Root Directory holding an abstract statement.
	AbstractFileIdentifier string `json:"abstract_file_identifier" yaml:"abstract_file_identifier"`
	// Bibliographic File Identifier names a file in the Root Directory holding bibliographic records.
	BibliographicFileIdentifier string `json:"bibliographic_file_identifier" yaml:"bibliographic_file_identifier"`
	// Volume Creation Date and Time.
	//  | 8.4.26.1 Date and Time Format
	VolumeCreationDateAndTime time.Time `json:"volume_creation_date_and_time" yaml:"volume_creation_date_and_time"`
	// Volume Modification Date and Time.
	//  | 8.4.26.1 Date and Time Format
	VolumeModificationDateAndTime time.Time `json:"volume_modification_date_and_time" yaml:"volume_modification_date_and_time"`
	// Volume Expiration Date and Time. Unspecified means the information is never obsolete.
	//  | 8.4.26.1 Date and Time Format
	VolumeExpirationDateAndTime time.Time `json:"volume_expiration_date_and_time" yaml:"volume_expiration_date_and_time"`
	// Volume Effective Date and Time. Unspecified means the information may be used at once.
	//  | 8.4.26.1 Date and Time Format
	VolumeEffectiveDateAndTime time.Time `json:"volume_effective_date_and_time" yaml:"volume_effective_date_and_time"`
	// File Structure Version, 1 for a Primary Volume Descriptor.
	FileStructureVersion uint8 `json:"file_structure_version" yaml:"file_structure_version"`
	// Application Use field is reserved for application use.
	ApplicationUse [consts.ISO9660_APPLICATION_USE_SIZE]byte `json:"-" yaml:"-"`
	// Logger
	Logger *logging.Logger `json:"-" yaml:"-"`
}

// Marshal converts the PrimaryVolumeDescriptorBody into its 2041-byte on-disk representation. String fields are
// padded with consts.ISO9660_FILLER; unused and reserved fields are written as zero.
func (pvdb *PrimaryVolumeDescriptorBody) Marshal() ([consts.ISO9660_VOLUME_DESC_BODY_SIZE]byte, error) {
	var data [consts.ISO9660_VOLUME_DESC_BODY_SIZE]byte
	w := encoding.NewFieldWriter(data[:])

	w.Skip(1)
	w.String(pvdb.SystemIdentifier, 32)
	w.String(pvdb.VolumeIdentifier, 32)
	w.Skip(8)
	w.Uint32LSBMSB(pvdb.VolumeSpaceSize)
	w.Skip(32)
	w.Uint16LSBMSB(pvdb.VolumeSetSize)
	w.Uint16LSBMSB(pvdb.VolumeSequenceNumber)
	w.Uint16LSBMSB(pvdb.LogicalBlockSize)
	w.Uint32LSBMSB(pvdb.PathTableSize)
	w.Uint32LSB(pvdb.LocationOfTypeLPathTable)
	w.Uint32LSB(pvdb.LocationOfOptionalTypeLPathTable)
	w.Uint32MSB(pvdb.LocationOfTypeMPathTable)
	w.Uint32MSB(pvdb.LocationOfOptionalTypeMPathTable)
	w.Bytes(pvdb.RootDirectoryRecord[:])
	w.String(pvdb.VolumeSetIdentifier, 128)
	w.String(pvdb.PublisherIdentifier, 128)
	w.String(pvdb.DataPreparerIdentifier, 128)
	w.String(pvdb.ApplicationIdentifier, 128)
	w.String(pvdb.CopyrightFileIdentifier, COPYRIGHT_FILE_IDENTIFIER_SIZE)
	w.String(pvdb.AbstractFileIdentifier, ABSTRACT_FILE_IDENTIFIER_SIZE)
	w.String(pvdb.BibliographicFileIdentifier, BIBLIOGRAPHIC_FILE_IDENTIFIER_SIZE)
	w.DateTime(pvdb.VolumeCreationDateAndTime)
	w.DateTime(pvdb.VolumeModificationDateAndTime)
	w.DateTime(pvdb.VolumeExpirationDateAndTime)
	w.DateTime(pvdb.VolumeEffectiveDateAndTime)
	w.Uint8(pvdb.FileStructureVersion)
	w.Skip(1)
	w.Bytes(pvdb.ApplicationUse[:])
	w.Skip(PRIMARY_RESERVED_FIELD2_SIZE)

	if err := w.Err(); err != nil {
		return data, err
	}
	if w.Offset() != consts.ISO9660_VOLUME_DESC_BODY_SIZE {
		return data, fmt.Errorf("marshal error: expected offset %d, got %d", consts.ISO9660_VOLUME_DESC_BODY_SIZE, w.Offset())
	}
	return data, nil
}

// Unmarshal parses a 2041-byte body. Fields are decoded in on-disk order and the body is only updated once every
// field has decoded, so a failure leaves the receiver unchanged.
func (pvdb *PrimaryVolumeDescriptorBody) Unmarshal(data []byte) error {
	if len(data) < consts.ISO9660_VOLUME_DESC_BODY_SIZE {
		return fmt.Errorf("data too short: expected %d bytes, got %d", consts.ISO9660_VOLUME_DESC_BODY_SIZE, len(data))
	}
	log := loggerOrDefault(pvdb.Logger)
	r := encoding.NewFieldReader(data[:consts.ISO9660_VOLUME_DESC_BODY_SIZE])
	b := PrimaryVolumeDescriptorBody{Logger: pvdb.Logger}
	var err error

	// 1. unusedField1: 1 byte.
	if err = r.Skip(1); err != nil {
		return err
	}
	// 2. systemIdentifier: 32 bytes.
	if b.SystemIdentifier, err = r.String(32); err != nil {
		return fmt.Errorf("failed to unmarshal systemIdentifier: %w", err)
	}
	// 3. volumeIdentifier: 32 bytes.
	if b.VolumeIdentifier, err = r.String(32); err != nil {
		return fmt.Errorf("failed to unmarshal volumeIdentifier: %w", err)
	}
	// 4. unusedField2: 8 bytes.
	if err = r.Skip(8); err != nil {
		return err
	}
	// 5. volumeSpaceSize: 8 bytes (both-byte orders for uint32).
	if b.VolumeSpaceSize, err = r.Uint32LSBMSB(); err != nil {
		return fmt.Errorf("failed to unmarshal volumeSpaceSize: %w", err)
	}
	// 6. unusedField3: 32 bytes.
	if err = r.Skip(32); err != nil {
		return err
	}
	// 7. volumeSetSize: 4 bytes (both-byte orders for uint16).
	if b.VolumeSetSize, err = r.Uint16LSBMSB(); err != nil {
		return fmt.Errorf("failed to unmarshal volumeSetSize: %w", err)
	}
	// 8. volumeSequenceNumber: 4 bytes (both-byte orders for uint16).
	if b.VolumeSequenceNumber, err = r.Uint16LSBMSB(); err != nil {
		return fmt.Errorf("failed to unmarshal volumeSequenceNumber: %w", err)
	}
	// 9. logicalBlockSize: 4 bytes (both-byte orders for uint16).
	if b.LogicalBlockSize, err = r.Uint16LSBMSB(); err != nil {
		return fmt.Errorf("failed to unmarshal logicalBlockSize: %w", err)
	}
	// 10. pathTableSize: 8 bytes (both-byte orders for uint32).
	if b.PathTableSize, err = r.Uint32LSBMSB(); err != nil {
		return fmt.Errorf("failed to unmarshal pathTableSize: %w", err)
	}
	// 11 - 14. path table locations: 4 bytes each.
	if b.LocationOfTypeLPathTable, err = r.Uint32LSB(); err != nil {
		return err
	}
	if b.LocationOfOptionalTypeLPathTable, err = r.Uint32LSB(); err != nil {
		return err
	}
	if b.LocationOfTypeMPathTable, err = r.Uint32MSB(); err != nil {
		return err
	}
	if b.LocationOfOptionalTypeMPathTable, err = r.Uint32MSB(); err != nil {
		return err
	}
	// 15. rootDirectoryRecord: 34 bytes, kept raw.
	if err = r.ReadInto(b.RootDirectoryRecord[:]); err != nil {
		return err
	}
	// 16 - 22. identifiers.
	identifiers := []struct {
		name string
		size int
		dst  *string
	}{
		{"volumeSetIdentifier", 128, &b.VolumeSetIdentifier},
		{"publisherIdentifier", 128, &b.PublisherIdentifier},
		{"dataPreparerIdentifier", 128, &b.DataPreparerIdentifier},
		{"applicationIdentifier", 128, &b.ApplicationIdentifier},
		{"copyrightFileIdentifier", COPYRIGHT_FILE_IDENTIFIER_SIZE, &b.CopyrightFileIdentifier},
		{"abstractFileIdentifier", ABSTRACT_FILE_IDENTIFIER_SIZE, &b.AbstractFileIdentifier},
		{"bibliographicFileIdentifier", BIBLIOGRAPHIC_FILE_IDENTIFIER_SIZE, &b.BibliographicFileIdentifier},
	}
	for _, id := range identifiers {
		if *id.dst, err = r.String(id.size); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", id.name, err)
		}
	}
	// 23 - 26. volume dates: 17 bytes each.
	dates := []struct {
		name string
		dst  *time.Time
	}{
		{"volumeCreationDateAndTime", &b.VolumeCreationDateAndTime},
		{"volumeModificationDateAndTime", &b.VolumeModificationDateAndTime},
		{"volumeExpirationDateAndTime", &b.VolumeExpirationDateAndTime},
		{"volumeEffectiveDateAndTime", &b.VolumeEffectiveDateAndTime},
	}
	for _, d := range dates {
		if *d.dst, err = r.DateTime(); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", d.name, err)
		}
	}
	// 27. fileStructureVersion: 1 byte.
	if b.FileStructureVersion, err = r.Uint8(); err != nil {
		return err
	}
	// 28. reservedField1: 1 byte.
	if err = r.Skip(1); err != nil {
		return err
	}
	// 29. applicationUse: 512 bytes.
	if err = r.ReadInto(b.ApplicationUse[:]); err != nil {
		return err
	}
	// 30. reservedField2: 653 bytes.
	if err = r.Skip(PRIMARY_RESERVED_FIELD2_SIZE); err != nil {
		return err
	}

	for _, err := range b.CheckIdentifiers() {
		log.Debug("Identifier outside ISO9660 character set", "error", err)
	}
	log.Trace("Unmarshalled primary volume descriptor",
		"volumeIdentifier", b.VolumeIdentifier,
		"volumeSpaceSize", b.VolumeSpaceSize,
		"logicalBlockSize", b.LogicalBlockSize)

	*pvdb = b
	return nil
}

// CheckIdentifiers reports every identifier that does not use the character set ECMA-119 assigns to it. Empty
// identifiers are always valid.
func (pvdb *PrimaryVolumeDescriptorBody) CheckIdentifiers() []error {
	checks := []struct {
		name  string
		value string
		check func(string) error
	}{
		{"systemIdentifier", pvdb.SystemIdentifier, func(s string) error { return validation.ValidateACharacters(s, false) }},
		{"volumeIdentifier", pvdb.VolumeIdentifier, func(s string) error { return validation.ValidateDCharacters(s, false) }},
		{"volumeSetIdentifier", pvdb.VolumeSetIdentifier, func(s string) error { return validation.ValidateDCharacters(s, false) }},
		{"publisherIdentifier", pvdb.PublisherIdentifier, validation.ValidateOwnerIdentifier},
		{"dataPreparerIdentifier", pvdb.DataPreparerIdentifier, validation.ValidateOwnerIdentifier},
		{"applicationIdentifier", pvdb.ApplicationIdentifier, validation.ValidateOwnerIdentifier},
		{"copyrightFileIdentifier", pvdb.CopyrightFileIdentifier, func(s string) error { return validation.ValidateDCharacters(s, true) }},
		{"abstractFileIdentifier", pvdb.AbstractFileIdentifier, func(s string) error { return validation.ValidateDCharacters(s, true) }},
		{"bibliographicFileIdentifier", pvdb.BibliographicFileIdentifier, func(s string) error { return validation.ValidateDCharacters(s, true) }},
	}
	var errs []error
	for _, c := range checks {
		if err := c.check(c.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}
	return errs
}
