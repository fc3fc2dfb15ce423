package encoding

import (
	"fmt"
	"time"

	"github.com/Roughsketch/iso/pkg/iso9660/isoerr"
)

const (
	// TIMEZONE_BIAS is subtracted from the raw offset byte to get the offset in 15 minute intervals.
	TIMEZONE_BIAS = 48
	// TIMEZONE_MAX is the largest valid raw offset byte (+13:00).
	TIMEZONE_MAX = 100
	// TIMEZONE_INTERVAL is the size of one offset step.
	TIMEZONE_INTERVAL = 15 * time.Minute
)

// TimezoneOffset maps a raw GMT offset byte (0 - 100) to a signed offset from UTC in minutes.
// Byte 48 is UTC, byte 0 is -12:00 and byte 100 is +13:00.
func TimezoneOffset(b byte) (int, error) {
	if b > TIMEZONE_MAX {
		return 0, fmt.Errorf("%w: byte %d outside 0-%d", isoerr.ErrInvalidTimezoneOffset, b, TIMEZONE_MAX)
	}
	shifted := int(b) - TIMEZONE_BIAS
	return shifted * int(TIMEZONE_INTERVAL/time.Minute), nil
}

// Location returns a fixed zone for a raw GMT offset byte. A zero offset maps to time.UTC.
func Location(b byte) (*time.Location, error) {
	minutes, err := TimezoneOffset(b)
	if err != nil {
		return nil, err
	}
	if minutes == 0 {
		return time.UTC, nil
	}
	return time.FixedZone("", minutes*60), nil
}

// TimezoneByte is the inverse of TimezoneOffset. The offset is given in seconds east of UTC, as returned by
// time.Time.Zone, and is truncated to whole 15 minute intervals.
func TimezoneByte(offsetSec int) (byte, error) {
	shifted := offsetSec/int(TIMEZONE_INTERVAL/time.Second) + TIMEZONE_BIAS
	if shifted < 0 || shifted > TIMEZONE_MAX {
		return 0, fmt.Errorf("%w: utc offset %ds cannot be recorded", isoerr.ErrInvalidTimezoneOffset, offsetSec)
	}
	return byte(shifted), nil
}
