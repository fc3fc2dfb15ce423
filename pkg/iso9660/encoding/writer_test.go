package encoding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFieldWriter(t *testing.T) {
	t.Run("read back", func(t *testing.T) {
		buf := make([]byte, 64)
		when := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

		w := NewFieldWriter(buf)
		w.Uint8(7)
		w.String("LABEL", 8)
		w.Skip(2)
		w.Uint32LSBMSB(0xdeadbeef)
		w.Uint16LSBMSB(2048)
		w.DateTime(when)
		require.NoError(t, w.Err())
		require.Equal(t, 1+8+2+8+4+17, w.Offset())

		r := NewFieldReader(buf)
		v, err := r.Uint8()
		require.NoError(t, err)
		require.Equal(t, uint8(7), v)
		s, err := r.String(8)
		require.NoError(t, err)
		require.Equal(t, "LABEL", s)
		require.NoError(t, r.Skip(2))
		u32, err := r.Uint32LSBMSB()
		require.NoError(t, err)
		require.Equal(t, uint32(0xdeadbeef), u32)
		u16, err := r.Uint16LSBMSB()
		require.NoError(t, err)
		require.Equal(t, uint16(2048), u16)
		got, err := r.DateTime()
		require.NoError(t, err)
		require.True(t, when.Equal(got))
	})

	t.Run("overflow is sticky", func(t *testing.T) {
		buf := make([]byte, 4)
		w := NewFieldWriter(buf)
		w.Uint32LSBMSB(1)
		require.ErrorContains(t, w.Err(), "overflows buffer at offset 0")
		w.Uint8(9)
		require.Equal(t, 0, w.Offset())
		require.Equal(t, []byte{0, 0, 0, 0}, buf)
	})
}
