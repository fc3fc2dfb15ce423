package encoding

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/Roughsketch/iso/pkg/consts"
	"github.com/Roughsketch/iso/pkg/iso9660/isoerr"
)

// Unspecified is the value returned for a date and time field recorded as "not specified" (all digits zero).
var Unspecified = time.Unix(0, 0).UTC()

// IsUnspecified reports whether t is the "not specified" sentinel. The zero time.Time is treated the same way so
// callers building descriptors can leave date fields empty.
func IsUnspecified(t time.Time) bool {
	return t.IsZero() || t.Equal(Unspecified)
}

// MarshalBothByteOrders32 converts a uint32 value into an 8-byte field that
// encodes the value in both little‑endian and big‑endian orders.
// The resulting byte order is: (yz, wx, uv, st, st, uv, wx, yz),
// where (st uv wx yz) is the hexadecimal representation of the value.
func MarshalBothByteOrders32(val uint32) [8]byte {
	var data [8]byte
	binary.LittleEndian.PutUint32(data[0:4], val)
	binary.BigEndian.PutUint32(data[4:8], val)
	return data
}

// UnmarshalUint32LSBMSB converts an 8-byte field encoded in both little‑
// and big‑endian orders back to a uint32 value. It verifies that both halves
// are equal. If they are not, it returns an error wrapping isoerr.ErrByteOrderMismatch.
func UnmarshalUint32LSBMSB(data [8]byte) (uint32, error) {
	little := binary.LittleEndian.Uint32(data[0:4])
	big := binary.BigEndian.Uint32(data[4:8])
	if little != big {
		return 0, fmt.Errorf("%w: little-endian value %d != big-endian value %d", isoerr.ErrByteOrderMismatch, little, big)
	}
	return little, nil
}

// MarshalBothByteOrders16 converts a uint16 value into a 4-byte field that
// encodes the value in both little‑endian and big‑endian orders.
// For example, for the value 0x1234, it returns [0x34, 0x12, 0x12, 0x34].
func MarshalBothByteOrders16(val uint16) [4]byte {
	var data [4]byte
	binary.LittleEndian.PutUint16(data[0:2], val)
	binary.BigEndian.PutUint16(data[2:4], val)
	return data
}

// UnmarshalUint16LSBMSB converts a 4-byte field encoded in both little‑
// and big‑endian orders back to a uint16 value. It verifies that both halves
// match; if they do not, it returns an error wrapping isoerr.ErrByteOrderMismatch.
func UnmarshalUint16LSBMSB(data [4]byte) (uint16, error) {
	little := binary.LittleEndian.Uint16(data[0:2])
	big := binary.BigEndian.Uint16(data[2:4])
	if little != big {
		return 0, fmt.Errorf("%w: little-endian value %d != big-endian value %d", isoerr.ErrByteOrderMismatch, little, big)
	}
	return little, nil
}

// MarshalDateTime converts a time.Time into a 17-byte field following ISO9660 8.4.26.1.
// The first 16 bytes contain ASCII digits in the format:
//
//	YYYY MM DD hh mm ss cc
//
// and the 17th byte is the biased GMT offset (see TimezoneByte).
// Note: This format is used in Volume Descriptors
func MarshalDateTime(t time.Time) ([consts.ISO9660_DATETIME_SIZE]byte, error) {
	var out [consts.ISO9660_DATETIME_SIZE]byte

	if IsUnspecified(t) {
		for i := 0; i < 16; i++ {
			out[i] = '0'
		}
		return out, nil
	}

	y, m, d := t.Date()
	if y < 1 || y > 9999 {
		return out, fmt.Errorf("year %d cannot be written as four digits", y)
	}
	hh, mm, ss := t.Clock()
	hundredths := t.Nanosecond() / 10_000_000

	s := fmt.Sprintf("%04d%02d%02d%02d%02d%02d%02d",
		y, int(m), d, hh, mm, ss, hundredths)
	copy(out[:16], s)

	_, offsetSec := t.Zone()
	tz, err := TimezoneByte(offsetSec)
	if err != nil {
		return [consts.ISO9660_DATETIME_SIZE]byte{}, err
	}
	out[16] = tz
	return out, nil
}

// UnmarshalDateTime converts a 17-byte ISO9660 date/time field into a time.Time.
// It expects the first 16 bytes to be ASCII digits representing
// YYYY MM DD hh mm ss cc, and the 17th byte as the biased GMT offset.
// Sixteen '0' digits mean the date is not specified; Unspecified is returned and the offset byte is ignored.
// Note: This format is used in Volume Descriptors
func UnmarshalDateTime(b [consts.ISO9660_DATETIME_SIZE]byte) (time.Time, error) {
	isUnspecified := true
	for i := 0; i < 16; i++ {
		if b[i] != '0' {
			isUnspecified = false
			break
		}
	}
	if isUnspecified {
		return Unspecified, nil
	}

	for i := 0; i < 16; i++ {
		if b[i] < '0' || b[i] > '9' {
			return time.Time{}, fmt.Errorf("%w: non-digit %q at position %d", isoerr.ErrInvalidDate, b[i], i)
		}
	}

	year := digits(b[0:4])
	month := digits(b[4:6])
	day := digits(b[6:8])
	hour := digits(b[8:10])
	minute := digits(b[10:12])
	second := digits(b[12:14])
	hundredths := digits(b[14:16])

	if err := validateClock(month, day, hour, minute, second); err != nil {
		return time.Time{}, err
	}

	loc, err := Location(b[16])
	if err != nil {
		return time.Time{}, err
	}

	// Hundredths are carried at millisecond precision.
	millis := hundredths * 10
	return compose(year, month, day, hour, minute, second, millis*int(time.Millisecond), loc)
}

// MarshalRecordingDateTime converts a time.Time into a 7-byte field according
// to Table 9 – Recording Date and Time. It returns an error if the year is out of range.
// Note: All fields are stored as numerical values (not ASCII digits).
// Note: This type format is used in DirectoryRecords
func MarshalRecordingDateTime(t time.Time) ([consts.ISO9660_RECORDING_DATETIME_SIZE]byte, error) {
	var b [consts.ISO9660_RECORDING_DATETIME_SIZE]byte

	if IsUnspecified(t) {
		return b, nil
	}

	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	// The field stores the number of years since 1900, so valid years are 1900–2155.
	if year < 1900 || year > 2155 {
		return b, fmt.Errorf("year %d out of range for Recording Date and Time (must be between 1900 and 2155)", year)
	}

	_, offsetSec := t.Zone()
	tz, err := TimezoneByte(offsetSec)
	if err != nil {
		return b, err
	}

	b[0] = byte(year - 1900)
	b[1] = byte(month)
	b[2] = byte(day)
	b[3] = byte(hour)
	b[4] = byte(minute)
	b[5] = byte(second)
	b[6] = tz
	return b, nil
}

// UnmarshalRecordingDateTime converts a 7-byte Recording Date and Time field into a time.Time.
// The fields are interpreted as follows:
//
//	Byte 1: years since 1900,
//	Byte 2: month (1-12),
//	Byte 3: day,
//	Byte 4: hour,
//	Byte 5: minute,
//	Byte 6: second,
//	Byte 7: biased GMT offset.
//
// If all seven bytes are zero, it indicates that the date/time are not specified.
// Note: This type format is used in DirectoryRecords
func UnmarshalRecordingDateTime(b [consts.ISO9660_RECORDING_DATETIME_SIZE]byte) (time.Time, error) {
	allZero := true
	for _, v := range b {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return Unspecified, nil
	}

	year := int(b[0]) + 1900
	month := int(b[1])
	day := int(b[2])
	hour := int(b[3])
	minute := int(b[4])
	second := int(b[5])

	if err := validateClock(month, day, hour, minute, second); err != nil {
		return time.Time{}, err
	}

	loc, err := Location(b[6])
	if err != nil {
		return time.Time{}, err
	}

	return compose(year, month, day, hour, minute, second, 0, loc)
}

func digits(b []byte) int {
	n := 0
	for _, c := range b {
		n = n*10 + int(c-'0')
	}
	return n
}

func validateClock(month, day, hour, minute, second int) error {
	switch {
	case month < 1 || month > 12:
		return fmt.Errorf("%w: month %d", isoerr.ErrInvalidDate, month)
	case day < 1 || day > 31:
		return fmt.Errorf("%w: day %d", isoerr.ErrInvalidDate, day)
	case hour > 23:
		return fmt.Errorf("%w: hour %d", isoerr.ErrInvalidDate, hour)
	case minute > 59:
		return fmt.Errorf("%w: minute %d", isoerr.ErrInvalidDate, minute)
	case second > 59:
		return fmt.Errorf("%w: second %d", isoerr.ErrInvalidDate, second)
	}
	return nil
}

// compose builds the final instant and rejects component combinations that time.Date would silently normalize.
func compose(year, month, day, hour, minute, second, nsec int, loc *time.Location) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, hour, minute, second, nsec, loc)
	if y, m, d := t.Date(); y != year || int(m) != month || d != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", isoerr.ErrDateComposition, year, month, day)
	}
	return t, nil
}
