package encoding

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/Roughsketch/iso/pkg/consts"
	"github.com/Roughsketch/iso/pkg/iso9660/isoerr"
)

// FieldReader walks a fixed-layout record front to back. Every method consumes exactly the width of the field it
// decodes, so a caller that reads or skips every field ends up at the end of the record.
type FieldReader struct {
	data   []byte
	offset int
}

// NewFieldReader returns a FieldReader positioned at the start of data.
func NewFieldReader(data []byte) *FieldReader {
	return &FieldReader{data: data}
}

// Offset returns the number of bytes consumed so far.
func (r *FieldReader) Offset() int {
	return r.offset
}

// Remaining returns the number of bytes left.
func (r *FieldReader) Remaining() int {
	return len(r.data) - r.offset
}

func (r *FieldReader) next(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", isoerr.ErrIO, n, r.offset, r.Remaining())
	}
	b := r.data[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

// Skip consumes n unused or reserved bytes.
func (r *FieldReader) Skip(n int) error {
	_, err := r.next(n)
	return err
}

// ReadInto fills dst with the next len(dst) bytes.
func (r *FieldReader) ReadInto(dst []byte) error {
	b, err := r.next(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// Uint8 reads a single byte.
func (r *FieldReader) Uint8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// String reads an n byte identifier field, see DecodeString.
func (r *FieldReader) String(n int) (string, error) {
	b, err := r.next(n)
	if err != nil {
		return "", err
	}
	return DecodeString(b)
}

// Uint32LSB reads a little-endian 32-bit value (7.3.1).
func (r *FieldReader) Uint32LSB() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Uint32MSB reads a big-endian 32-bit value (7.3.2).
func (r *FieldReader) Uint32MSB() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Uint16LSBMSB reads a both-byte-order 16-bit value (7.2.3).
func (r *FieldReader) Uint16LSBMSB() (uint16, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return UnmarshalUint16LSBMSB([4]byte(b))
}

// Uint32LSBMSB reads a both-byte-order 32-bit value (7.3.3).
func (r *FieldReader) Uint32LSBMSB() (uint32, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return UnmarshalUint32LSBMSB([8]byte(b))
}

// DateTime reads a 17 byte digit date and time field (8.4.26.1). The offset byte is always consumed, even when the
// field is unspecified.
func (r *FieldReader) DateTime() (time.Time, error) {
	b, err := r.next(consts.ISO9660_DATETIME_SIZE)
	if err != nil {
		return time.Time{}, err
	}
	return UnmarshalDateTime([consts.ISO9660_DATETIME_SIZE]byte(b))
}

// RecordingDateTime reads a 7 byte numerical date and time field (9.1.5).
func (r *FieldReader) RecordingDateTime() (time.Time, error) {
	b, err := r.next(consts.ISO9660_RECORDING_DATETIME_SIZE)
	if err != nil {
		return time.Time{}, err
	}
	return UnmarshalRecordingDateTime([consts.ISO9660_RECORDING_DATETIME_SIZE]byte(b))
}
