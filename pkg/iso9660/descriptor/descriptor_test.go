package descriptor

import (
	"encoding/binary"
	"testing"

	"github.com/Roughsketch/iso/pkg/consts"
	"github.com/Roughsketch/iso/pkg/iso9660/isoerr"
	"github.com/stretchr/testify/require"
)

func sectorWithHeader(t VolumeDescriptorType) [consts.ISO9660_SECTOR_SIZE]byte {
	var data [consts.ISO9660_SECTOR_SIZE]byte
	data[0] = byte(t)
	copy(data[1:6], consts.ISO9660_STD_IDENTIFIER)
	data[6] = consts.ISO9660_VOLUME_DESC_VERSION
	return data
}

func TestVolumeDescriptorHeader(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		h := NewVolumeDescriptorHeader(TYPE_SUPPLEMENTARY_DESCRIPTOR)
		data, err := h.Marshal()
		require.NoError(t, err)
		require.Equal(t, [7]byte{0x02, 'C', 'D', '0', '0', '1', 0x01}, data)
	})

	tests := []struct {
		name    string
		data    [7]byte
		wantErr error
	}{
		{"valid primary", [7]byte{1, 'C', 'D', '0', '0', '1', 1}, nil},
		{"valid reserved type", [7]byte{42, 'C', 'D', '0', '0', '1', 1}, nil},
		{"bad identifier", [7]byte{1, 'C', 'D', '0', '0', '2', 1}, isoerr.ErrInvalidHeader},
		{"lower case identifier", [7]byte{1, 'c', 'd', '0', '0', '1', 1}, isoerr.ErrInvalidHeader},
		{"version 0", [7]byte{1, 'C', 'D', '0', '0', '1', 0}, isoerr.ErrInvalidHeader},
		{"version 2", [7]byte{255, 'C', 'D', '0', '0', '1', 2}, isoerr.ErrInvalidHeader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h VolumeDescriptorHeader
			err := h.Unmarshal(tt.data)
			if tt.wantErr == nil {
				require.NoError(t, err)
				require.Equal(t, VolumeDescriptorType(tt.data[0]), h.Type())
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVolumeDescriptorType_String(t *testing.T) {
	require.Equal(t, "Primary Volume Descriptor", TYPE_PRIMARY_DESCRIPTOR.String())
	require.Equal(t, "Volume Descriptor Set Terminator", TYPE_TERMINATOR_DESCRIPTOR.String())
	require.Equal(t, "Unknown(4)", VolumeDescriptorType(4).String())
}

func TestNew(t *testing.T) {
	for _, vt := range []VolumeDescriptorType{
		TYPE_BOOT_RECORD,
		TYPE_PRIMARY_DESCRIPTOR,
		TYPE_SUPPLEMENTARY_DESCRIPTOR,
		TYPE_PARTITION_DESCRIPTOR,
		TYPE_TERMINATOR_DESCRIPTOR,
	} {
		t.Run(vt.String(), func(t *testing.T) {
			data := sectorWithHeader(vt)
			if vt == TYPE_PRIMARY_DESCRIPTOR {
				// An all-zero body holds NUL bytes where the dates expect digits.
				var err error
				data, err = NewPrimaryVolumeDescriptor().Marshal()
				require.NoError(t, err)
			}
			vd, ok := New(vt, nil)
			require.True(t, ok)
			require.NoError(t, vd.Unmarshal(data))
			require.Equal(t, vt, vd.Type())
		})
	}

	for _, b := range []byte{4, 5, 100, 254} {
		_, ok := New(VolumeDescriptorType(b), nil)
		require.False(t, ok, "type %d", b)
	}
}

func TestBootRecordDescriptor_MarshalUnmarshal(t *testing.T) {
	t.Run("el torito round trip", func(t *testing.T) {
		br := NewBootRecordDescriptor(consts.EL_TORITO_BOOT_SYSTEM_ID, "")
		binary.LittleEndian.PutUint32(br.BootSystemUse[0:4], 0x1d)
		br.BootSystemUse[BOOT_SYSTEM_USE_SIZE-1] = 0xAA

		data, err := br.Marshal()
		require.NoError(t, err)
		require.Equal(t, byte(0xAA), data[consts.ISO9660_SECTOR_SIZE-1])

		var got BootRecordDescriptor
		require.NoError(t, got.Unmarshal(data))
		require.Equal(t, TYPE_BOOT_RECORD, got.Type())
		require.Equal(t, consts.EL_TORITO_BOOT_SYSTEM_ID, got.BootSystemIdentifier)
		require.Empty(t, got.BootIdentifier)
		require.Equal(t, br.BootSystemUse, got.BootSystemUse)
		require.True(t, got.IsElTorito())

		lba, ok := got.BootCatalogLocation()
		require.True(t, ok)
		require.Equal(t, uint32(0x1d), lba)
	})

	t.Run("nul padded identifiers", func(t *testing.T) {
		data := sectorWithHeader(TYPE_BOOT_RECORD)
		copy(data[7:], "EL TORITO SPECIFICATION")

		var got BootRecordDescriptor
		require.NoError(t, got.Unmarshal(data))
		require.True(t, got.IsElTorito())
	})

	t.Run("other boot system", func(t *testing.T) {
		var got BootRecordDescriptor
		data, err := NewBootRecordDescriptor("ACME BOOT", "v1").Marshal()
		require.NoError(t, err)
		require.NoError(t, got.Unmarshal(data))
		require.Equal(t, "ACME BOOT", got.BootSystemIdentifier)
		require.Equal(t, "v1", got.BootIdentifier)
		require.False(t, got.IsElTorito())
		_, ok := got.BootCatalogLocation()
		require.False(t, ok)
	})

	t.Run("invalid utf-8 boot identifier", func(t *testing.T) {
		data := sectorWithHeader(TYPE_BOOT_RECORD)
		data[39] = 0xFE

		got := BootRecordDescriptor{BootRecordBody: BootRecordBody{BootSystemIdentifier: "UNCHANGED"}}
		require.ErrorIs(t, got.Unmarshal(data), isoerr.ErrInvalidEncoding)
		require.Equal(t, "UNCHANGED", got.BootSystemIdentifier)
	})

	t.Run("invalid header", func(t *testing.T) {
		data := sectorWithHeader(TYPE_BOOT_RECORD)
		data[6] = 2
		var got BootRecordDescriptor
		require.ErrorIs(t, got.Unmarshal(data), isoerr.ErrInvalidHeader)
	})
}

func TestSupplementaryVolumeDescriptor(t *testing.T) {
	tests := []struct {
		name   string
		escape string
		level  int
	}{
		{"joliet level 1", consts.JOLIET_LEVEL_1_ESCAPE, 1},
		{"joliet level 2", consts.JOLIET_LEVEL_2_ESCAPE, 2},
		{"joliet level 3", consts.JOLIET_LEVEL_3_ESCAPE, 3},
		{"no escape sequences", "", 0},
		{"unregistered escape", "%/Z", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := sectorWithHeader(TYPE_SUPPLEMENTARY_DESCRIPTOR)
			data[7] = 0x01
			copy(data[88:], tt.escape)
			// UCS-2 volume identifier, not valid UTF-8 on its own.
			copy(data[40:], []byte{0x00, 'C', 0xD8, 0x00})

			var got SupplementaryVolumeDescriptor
			require.NoError(t, got.Unmarshal(data))
			require.Equal(t, TYPE_SUPPLEMENTARY_DESCRIPTOR, got.Type())
			require.Equal(t, byte(0x01), got.VolumeFlags)
			require.Equal(t, tt.level, got.JolietLevel())
			require.Equal(t, tt.level != 0, got.IsJoliet())
			require.Equal(t, data[7:], got.Raw[:])

			again, err := got.Marshal()
			require.NoError(t, err)
			require.Equal(t, data, again)
		})
	}
}

func TestMarkers(t *testing.T) {
	t.Run("partition payload is ignored", func(t *testing.T) {
		data := sectorWithHeader(TYPE_PARTITION_DESCRIPTOR)
		data[100] = 0xFF
		var got VolumePartitionDescriptor
		require.NoError(t, got.Unmarshal(data))
		require.Equal(t, TYPE_PARTITION_DESCRIPTOR, got.Type())
	})

	t.Run("terminator", func(t *testing.T) {
		data, err := NewVolumeDescriptorSetTerminator().Marshal()
		require.NoError(t, err)
		require.Equal(t, sectorWithHeader(TYPE_TERMINATOR_DESCRIPTOR), data)

		var got VolumeDescriptorSetTerminator
		require.NoError(t, got.Unmarshal(data))
		require.Equal(t, TYPE_TERMINATOR_DESCRIPTOR, got.Type())
	})

	t.Run("terminator with bad version", func(t *testing.T) {
		data := sectorWithHeader(TYPE_TERMINATOR_DESCRIPTOR)
		data[6] = 0
		var got VolumeDescriptorSetTerminator
		require.ErrorIs(t, got.Unmarshal(data), isoerr.ErrInvalidHeader)
	})
}

func TestVolumeDescriptorSet(t *testing.T) {
	pvd := NewPrimaryVolumeDescriptor()
	boot := NewBootRecordDescriptor(consts.EL_TORITO_BOOT_SYSTEM_ID, "")
	svd := &SupplementaryVolumeDescriptor{VolumeDescriptorHeader: NewVolumeDescriptorHeader(TYPE_SUPPLEMENTARY_DESCRIPTOR)}
	term := NewVolumeDescriptorSetTerminator()

	set := VolumeDescriptorSet{boot, pvd, svd, term}
	require.Same(t, pvd, set.Primary())
	require.Equal(t, []*BootRecordDescriptor{boot}, set.BootRecords())
	require.Equal(t, []*SupplementaryVolumeDescriptor{svd}, set.Supplementary())
	require.True(t, set.Terminated())
	require.Equal(t, []VolumeDescriptorType{
		TYPE_BOOT_RECORD, TYPE_PRIMARY_DESCRIPTOR, TYPE_SUPPLEMENTARY_DESCRIPTOR, TYPE_TERMINATOR_DESCRIPTOR,
	}, set.Kinds())

	require.Nil(t, VolumeDescriptorSet{term}.Primary())
	require.False(t, VolumeDescriptorSet{pvd}.Terminated())
	require.False(t, VolumeDescriptorSet{}.Terminated())
}
