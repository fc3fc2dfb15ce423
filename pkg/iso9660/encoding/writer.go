package encoding

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/Roughsketch/iso/pkg/helpers"
)

// FieldWriter is the encode side of FieldReader. It fills a fixed-size buffer front to back; writing past the end
// of the buffer is a programming error and is reported by Err.
type FieldWriter struct {
	data   []byte
	offset int
	err    error
}

// NewFieldWriter returns a FieldWriter positioned at the start of data.
func NewFieldWriter(data []byte) *FieldWriter {
	return &FieldWriter{data: data}
}

// Offset returns the number of bytes written or skipped so far.
func (w *FieldWriter) Offset() int {
	return w.offset
}

// Err returns the first error recorded by the writer.
func (w *FieldWriter) Err() error {
	return w.err
}

func (w *FieldWriter) next(n int) []byte {
	if w.err != nil {
		return nil
	}
	if len(w.data)-w.offset < n {
		w.err = fmt.Errorf("field of %d bytes overflows buffer at offset %d", n, w.offset)
		return nil
	}
	b := w.data[w.offset : w.offset+n]
	w.offset += n
	return b
}

// Skip leaves n bytes untouched (zero in a fresh buffer).
func (w *FieldWriter) Skip(n int) {
	w.next(n)
}

// Bytes copies src verbatim.
func (w *FieldWriter) Bytes(src []byte) {
	if b := w.next(len(src)); b != nil {
		copy(b, src)
	}
}

// Uint8 writes a single byte.
func (w *FieldWriter) Uint8(v uint8) {
	if b := w.next(1); b != nil {
		b[0] = v
	}
}

// String writes s into an n byte field padded with the ISO9660 filler.
func (w *FieldWriter) String(s string, n int) {
	w.Bytes(helpers.PadString(s, n))
}

func (w *FieldWriter) Uint32LSB(v uint32) {
	if b := w.next(4); b != nil {
		binary.LittleEndian.PutUint32(b, v)
	}
}

func (w *FieldWriter) Uint32MSB(v uint32) {
	if b := w.next(4); b != nil {
		binary.BigEndian.PutUint32(b, v)
	}
}

func (w *FieldWriter) Uint16LSBMSB(v uint16) {
	b := MarshalBothByteOrders16(v)
	w.Bytes(b[:])
}

func (w *FieldWriter) Uint32LSBMSB(v uint32) {
	b := MarshalBothByteOrders32(v)
	w.Bytes(b[:])
}

// DateTime writes a 17 byte digit date and time field.
func (w *FieldWriter) DateTime(t time.Time) {
	if w.err != nil {
		return
	}
	b, err := MarshalDateTime(t)
	if err != nil {
		w.err = err
		return
	}
	w.Bytes(b[:])
}
