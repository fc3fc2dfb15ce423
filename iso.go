package iso

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Roughsketch/iso/pkg/consts"
	"github.com/Roughsketch/iso/pkg/iso9660/descriptor"
	"github.com/Roughsketch/iso/pkg/iso9660/encoding"
	"github.com/Roughsketch/iso/pkg/iso9660/parser"
	"github.com/Roughsketch/iso/pkg/iso9660/systemarea"
	"github.com/Roughsketch/iso/pkg/option"
)

// Image is a decoded ISO9660 image: the reserved system area followed by the volume descriptor set, terminator
// included.
type Image struct {
	SystemArea  systemarea.SystemArea          `json:"-" yaml:"-"`
	Descriptors descriptor.VolumeDescriptorSet `json:"descriptors" yaml:"descriptors"`
}

// Open opens an existing ISO image file and decodes its volume descriptor set. The file is closed before Open
// returns.
func Open(location string, opts ...option.OpenOption) (*Image, error) {
	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("failed to open ISO: %w", err)
	}
	defer f.Close()

	return Decode(f, opts...)
}

// DecodeAt decodes an image from a random access source starting at offset zero.
func DecodeAt(r io.ReaderAt, opts ...option.OpenOption) (*Image, error) {
	return Decode(io.NewSectionReader(r, 0, 1<<62), opts...)
}

// Decode reads the system area and the volume descriptor set from r, which must be positioned at the start of the
// image. Reading stops after the terminator sector.
func Decode(r io.Reader, opts ...option.OpenOption) (*Image, error) {
	options := option.NewOpenOptions(opts...)
	logger := options.Logger

	img := &Image{}
	if err := img.SystemArea.Read(r); err != nil {
		return nil, err
	}
	logger.Debug("Read system area", "bytes", consts.ISO9660_SYSTEM_AREA_SIZE, "empty", img.SystemArea.IsEmpty())

	set, err := parser.NewParser(r, options).Parse()
	if err != nil {
		return nil, err
	}
	img.Descriptors = set

	logger.Info("Decoded volume descriptor set", "descriptors", len(set))
	return img, nil
}

// Primary returns the Primary Volume Descriptor, or nil if the image has none.
func (i *Image) Primary() *descriptor.PrimaryVolumeDescriptor {
	return i.Descriptors.Primary()
}

// BootRecords returns the boot records in recorded order.
func (i *Image) BootRecords() []*descriptor.BootRecordDescriptor {
	return i.Descriptors.BootRecords()
}

// Supplementary returns the supplementary volume descriptors in recorded order.
func (i *Image) Supplementary() []*descriptor.SupplementaryVolumeDescriptor {
	return i.Descriptors.Supplementary()
}

// Terminated reports whether the descriptor set ends with a terminator. Always true for a decoded image.
func (i *Image) Terminated() bool {
	return i.Descriptors.Terminated()
}

// HasElTorito reports whether any boot record announces El Torito.
func (i *Image) HasElTorito() bool {
	for _, br := range i.BootRecords() {
		if br.IsElTorito() {
			return true
		}
	}
	return false
}

// HasJoliet reports whether any supplementary descriptor announces Joliet.
func (i *Image) HasJoliet() bool {
	for _, svd := range i.Supplementary() {
		if svd.IsJoliet() {
			return true
		}
	}
	return false
}

func (i *Image) String() string {
	var sb strings.Builder
	sb.WriteString("ISO 9660 Image\n")
	if i.SystemArea.HasMBR() {
		sb.WriteString("  System Area: hybrid MBR\n")
	} else if i.SystemArea.IsEmpty() {
		sb.WriteString("  System Area: empty\n")
	} else {
		sb.WriteString("  System Area: in use\n")
	}

	for idx, vd := range i.Descriptors {
		fmt.Fprintf(&sb, "  [%d] %s\n", idx, vd.Type())
		switch d := vd.(type) {
		case *descriptor.PrimaryVolumeDescriptor:
			field(&sb, "System Identifier", d.SystemIdentifier())
			field(&sb, "Volume Identifier", d.VolumeIdentifier())
			field(&sb, "Volume Set Identifier", d.VolumeSetIdentifier)
			field(&sb, "Publisher", d.PublisherIdentifier)
			field(&sb, "Data Preparer", d.DataPreparerIdentifier)
			field(&sb, "Application", d.ApplicationIdentifier)
			field(&sb, "Volume Space Size", fmt.Sprintf("%d blocks", d.VolumeSpaceSize))
			field(&sb, "Logical Block Size", fmt.Sprintf("%d", d.LogicalBlockSize))
			field(&sb, "Volume Set", fmt.Sprintf("%d of %d", d.VolumeSequenceNumber, d.VolumeSetSize))
			field(&sb, "Path Table Size", fmt.Sprintf("%d", d.PathTableSize))
			field(&sb, "Type L Path Table", fmt.Sprintf("%d (optional %d)", d.LocationOfTypeLPathTable, d.LocationOfOptionalTypeLPathTable))
			field(&sb, "Type M Path Table", fmt.Sprintf("%d (optional %d)", d.LocationOfTypeMPathTable, d.LocationOfOptionalTypeMPathTable))
			field(&sb, "Created", formatTime(d.VolumeCreationDateAndTime))
			field(&sb, "Modified", formatTime(d.VolumeModificationDateAndTime))
			field(&sb, "Expires", formatTime(d.VolumeExpirationDateAndTime))
			field(&sb, "Effective", formatTime(d.VolumeEffectiveDateAndTime))
			for _, err := range d.CheckIdentifiers() {
				field(&sb, "Warning", err.Error())
			}
			if root, err := d.RootDirectory(); err == nil {
				field(&sb, "Root Directory", fmt.Sprintf("extent %d, %d bytes", root.LocationOfExtent, root.DataLength))
			} else {
				field(&sb, "Root Directory", err.Error())
			}
		case *descriptor.BootRecordDescriptor:
			field(&sb, "Boot System Identifier", d.BootSystemIdentifier)
			field(&sb, "Boot Identifier", d.BootIdentifier)
			if lba, ok := d.BootCatalogLocation(); ok {
				field(&sb, "Boot Catalog", fmt.Sprintf("sector %d", lba))
			}
		case *descriptor.SupplementaryVolumeDescriptor:
			if level := d.JolietLevel(); level != 0 {
				field(&sb, "Joliet", fmt.Sprintf("level %d", level))
			}
		case *descriptor.VolumePartitionDescriptor, *descriptor.VolumeDescriptorSetTerminator:
		}
	}
	return sb.String()
}

func field(sb *strings.Builder, name, value string) {
	fmt.Fprintf(sb, "      %-24s %s\n", name+":", value)
}

func formatTime(t time.Time) string {
	if encoding.IsUnspecified(t) {
		return "not specified"
	}
	return t.Format(time.RFC3339Nano)
}
