package consts

const (
	// Number of system area sectors.
	ISO9660_SYSTEM_AREA_SECTORS = 16

	// ISO9660 default sector size.
	ISO9660_SECTOR_SIZE = 2048

	// System area size in bytes (sectors 0 - 15).
	ISO9660_SYSTEM_AREA_SIZE = ISO9660_SYSTEM_AREA_SECTORS * ISO9660_SECTOR_SIZE

	// Standard ISO9660 identifier.
	ISO9660_STD_IDENTIFIER = "CD001"

	// ISO9660 volume descriptor version (always 1).
	ISO9660_VOLUME_DESC_VERSION = 1

	// ISO9660 volume descriptor header size
	ISO9660_VOLUME_DESC_HEADER_SIZE = 7

	// ISO9660 volume descriptor body size, everything in the sector after the header.
	ISO9660_VOLUME_DESC_BODY_SIZE = ISO9660_SECTOR_SIZE - ISO9660_VOLUME_DESC_HEADER_SIZE

	// ISO9660 application use area size
	ISO9660_APPLICATION_USE_SIZE = 512

	// Size of the directory record for the root directory held in a volume descriptor.
	ISO9660_ROOT_DIRECTORY_RECORD_SIZE = 34

	// Size of the digit/offset date and time field used in volume descriptors (8.4.26.1).
	ISO9660_DATETIME_SIZE = 17

	// Size of the numerical date and time field used in directory records (9.1.5).
	ISO9660_RECORDING_DATETIME_SIZE = 7

	// JOLIET level 1, 2, and 3 escape sequences.
	JOLIET_LEVEL_1_ESCAPE = "%/@"
	JOLIET_LEVEL_2_ESCAPE = "%/C"
	JOLIET_LEVEL_3_ESCAPE = "%/E"

	// El Torito bootable cdrom system identifier.
	EL_TORITO_BOOT_SYSTEM_ID = "EL TORITO SPECIFICATION"

	// a-characters (7.4.1).
	A_CHARACTERS = " !\"%&'()*+,-./0123456789:;<=>?ABCDEFGHIJKLMNOPQRSTUVWXYZ_"

	// d-characters (7.4.1).
	D_CHARACTERS = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_"

	// File name and version separators.
	ISO9660_SEPARATOR_1 = "."
	ISO9660_SEPARATOR_2 = ";"

	// ISO9660 Filler 0x20 (space)
	ISO9660_FILLER = ' '

	// Default upper bound on the number of volume descriptor sectors scanned before a terminator.
	DEFAULT_DESCRIPTOR_LIMIT = 64
)
