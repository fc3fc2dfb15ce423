package directory

// FileFlags is the raw File Flags byte of a Directory Record. Bits are numbered from 0 (LSB):
//
//	Bit 0 ("Hidden"): If 0, the file's existence shall be made known to the user; if 1, it need not be.
//	Bit 1 ("Directory"): 0 indicates a file; 1 indicates a directory.
//	Bit 2 ("AssociatedFile"): 0 means not an Associated File; 1 means it is.
//	Bit 3 ("RecordFormat"): 1 means the record format is specified by an Extended Attribute Record.
//	Bit 4 ("Protection"): 1 means owner and group are specified.
//	Bits 5 & 6: Reserved.
//	Bit 7 ("MultiExtent"): 1 means this is not the final Directory Record for the file.
//
// Reserved bits are kept as recorded.
type FileFlags byte

const (
	FLAG_HIDDEN          FileFlags = 0x01
	FLAG_DIRECTORY       FileFlags = 0x02
	FLAG_ASSOCIATED_FILE FileFlags = 0x04
	FLAG_RECORD_FORMAT   FileFlags = 0x08
	FLAG_PROTECTION      FileFlags = 0x10
	FLAG_MULTI_EXTENT    FileFlags = 0x80
)

func (f FileFlags) Hidden() bool         { return f&FLAG_HIDDEN != 0 }
func (f FileFlags) Directory() bool      { return f&FLAG_DIRECTORY != 0 }
func (f FileFlags) AssociatedFile() bool { return f&FLAG_ASSOCIATED_FILE != 0 }
func (f FileFlags) RecordFormat() bool   { return f&FLAG_RECORD_FORMAT != 0 }
func (f FileFlags) Protection() bool     { return f&FLAG_PROTECTION != 0 }
func (f FileFlags) MultiExtent() bool    { return f&FLAG_MULTI_EXTENT != 0 }
