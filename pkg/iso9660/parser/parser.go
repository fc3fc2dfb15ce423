package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/Roughsketch/iso/pkg/consts"
	"github.com/Roughsketch/iso/pkg/iso9660/descriptor"
	"github.com/Roughsketch/iso/pkg/iso9660/isoerr"
	"github.com/Roughsketch/iso/pkg/logging"
	"github.com/Roughsketch/iso/pkg/option"
)

// NewParser returns a Parser reading descriptor sectors from reader, which must be positioned at the start of
// sector 16. A nil options value uses the defaults.
func NewParser(reader io.Reader, options *option.OpenOptions) *Parser {
	if options == nil {
		options = option.DefaultOpenOptions()
	}
	logger := options.Logger
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &Parser{
		reader:  reader,
		options: options,
		logger:  logger.WithName("parser"),
	}
}

// Parser reads the volume descriptor set one sector at a time. It never seeks; every call to Next consumes exactly
// one 2048-byte sector.
type Parser struct {
	reader  io.Reader
	options *option.OpenOptions
	logger  *logging.Logger
	index   int
	done    bool
}

// Offset returns the absolute byte offset of the next sector to be read.
func (p *Parser) Offset() int64 {
	return int64(consts.ISO9660_SYSTEM_AREA_SIZE) + int64(p.index)*consts.ISO9660_SECTOR_SIZE
}

// Next reads and decodes the next descriptor. After the terminator has been returned Next returns io.EOF without
// reading.
func (p *Parser) Next() (descriptor.VolumeDescriptor, error) {
	if p.done {
		return nil, io.EOF
	}
	if p.index >= p.options.DescriptorLimit {
		return nil, p.wrap(fmt.Errorf("%w: sequence too long, no terminator within %d descriptors",
			isoerr.ErrIO, p.options.DescriptorLimit))
	}

	var buf [consts.ISO9660_SECTOR_SIZE]byte
	if _, err := io.ReadFull(p.reader, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, p.wrap(fmt.Errorf("%w: volume descriptor set ended before terminator: %w", isoerr.ErrIO, err))
		}
		return nil, p.wrap(fmt.Errorf("%w: %w", isoerr.ErrIO, err))
	}

	// The header is validated before dispatch so a bad header is reported regardless of the type byte.
	var header descriptor.VolumeDescriptorHeader
	if err := header.Unmarshal([consts.ISO9660_VOLUME_DESC_HEADER_SIZE]byte(buf[:consts.ISO9660_VOLUME_DESC_HEADER_SIZE])); err != nil {
		return nil, p.wrap(err)
	}

	vd, ok := descriptor.New(header.Type(), p.logger.WithValues("index", p.index))
	if !ok {
		return nil, p.wrap(fmt.Errorf("%w: %d", isoerr.ErrUnknownDescriptorType, byte(header.Type())))
	}
	if err := vd.Unmarshal(buf); err != nil {
		return nil, p.wrap(err)
	}

	p.logger.Debug("Read volume descriptor", "index", p.index, "offset", p.Offset(), "type", header.Type().String())
	p.index++
	if vd.Type() == descriptor.TYPE_TERMINATOR_DESCRIPTOR {
		p.done = true
	}
	return vd, nil
}

// Parse reads descriptors until the terminator, which is included as the last element. On error no descriptors
// are returned.
func (p *Parser) Parse() (descriptor.VolumeDescriptorSet, error) {
	var set descriptor.VolumeDescriptorSet
	for {
		vd, err := p.Next()
		if err != nil {
			p.logger.Debug("Failed to parse volume descriptor set", "decoded", len(set), "error", err)
			return nil, err
		}
		set = append(set, vd)
		if vd.Type() == descriptor.TYPE_TERMINATOR_DESCRIPTOR {
			p.logger.Debug("Reached volume descriptor set terminator", "descriptors", len(set))
			return set, nil
		}
	}
}

func (p *Parser) wrap(err error) error {
	return fmt.Errorf("volume descriptor %d at offset %d: %w", p.index, p.Offset(), err)
}
