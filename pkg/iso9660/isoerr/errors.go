// Package isoerr holds the error kinds returned while decoding an ISO9660 volume descriptor set. Every error
// produced by the decoders wraps exactly one of these values, so callers can match them with errors.Is.
package isoerr

import "errors"

var (
	// ErrIO covers short reads, truncated sectors and a sequence that ends before its terminator.
	ErrIO = errors.New("iso9660: i/o error")

	// ErrInvalidHeader is returned when a descriptor's standard identifier is not "CD001" or its version is not 1.
	ErrInvalidHeader = errors.New("iso9660: invalid volume descriptor header")

	// ErrUnknownDescriptorType is returned for a descriptor type outside {0, 1, 2, 3, 255}.
	ErrUnknownDescriptorType = errors.New("iso9660: unknown volume descriptor type")

	// ErrInvalidEncoding is returned when an identifier field is not valid UTF-8.
	ErrInvalidEncoding = errors.New("iso9660: invalid field encoding")

	// ErrInvalidDate is returned when a date or time component is out of range or not numeric.
	ErrInvalidDate = errors.New("iso9660: invalid date")

	// ErrInvalidTimezoneOffset is returned when a GMT offset byte is outside 0 - 100.
	ErrInvalidTimezoneOffset = errors.New("iso9660: invalid timezone offset")

	// ErrDateComposition is returned when validated components do not form a real instant (e.g. 31 February).
	ErrDateComposition = errors.New("iso9660: date composition error")

	// ErrByteOrderMismatch is returned when the little and big endian halves of a both-byte-order field differ.
	ErrByteOrderMismatch = errors.New("iso9660: both-byte-order mismatch")
)
