package option

import (
	"github.com/Roughsketch/iso/pkg/consts"
	"github.com/Roughsketch/iso/pkg/logging"
)

// OpenOptions controls how an image's volume descriptor set is decoded.
type OpenOptions struct {
	// DescriptorLimit is the maximum number of descriptor sectors read while looking for the terminator.
	DescriptorLimit int
	// Logger receives diagnostics from the parser and the descriptor decoders. Discards by default.
	Logger *logging.Logger
}

type OpenOption func(*OpenOptions)

// DefaultOpenOptions returns the options used when no OpenOption is given.
func DefaultOpenOptions() *OpenOptions {
	return &OpenOptions{
		DescriptorLimit: consts.DEFAULT_DESCRIPTOR_LIMIT,
		Logger:          logging.DefaultLogger(),
	}
}

// NewOpenOptions applies opts over the defaults.
func NewOpenOptions(opts ...OpenOption) *OpenOptions {
	o := DefaultOpenOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = logging.DefaultLogger()
	}
	if o.DescriptorLimit <= 0 {
		o.DescriptorLimit = consts.DEFAULT_DESCRIPTOR_LIMIT
	}
	return o
}

func WithLogger(logger *logging.Logger) OpenOption {
	return func(o *OpenOptions) {
		o.Logger = logger
	}
}

// WithDescriptorLimit sets how many descriptor sectors may precede the terminator. Values below one restore the
// default.
func WithDescriptorLimit(limit int) OpenOption {
	return func(o *OpenOptions) {
		o.DescriptorLimit = limit
	}
}
