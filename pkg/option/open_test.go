package option

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Roughsketch/iso/pkg/consts"
	"github.com/Roughsketch/iso/pkg/logging"
	"github.com/stretchr/testify/require"
)

func TestNewOpenOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		o := NewOpenOptions()
		require.Equal(t, consts.DEFAULT_DESCRIPTOR_LIMIT, o.DescriptorLimit)
		require.NotNil(t, o.Logger)
	})

	t.Run("overrides", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := logging.NewLogger(logging.NewSimpleLogger(buf, logging.LEVEL_INFO, false))
		o := NewOpenOptions(WithDescriptorLimit(4), WithLogger(logger))
		require.Equal(t, 4, o.DescriptorLimit)

		o.Logger.Info("hello")
		require.True(t, strings.Contains(buf.String(), "hello"))
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		o := NewOpenOptions(WithDescriptorLimit(0), WithLogger(nil))
		require.Equal(t, consts.DEFAULT_DESCRIPTOR_LIMIT, o.DescriptorLimit)
		require.NotNil(t, o.Logger)
	})
}
