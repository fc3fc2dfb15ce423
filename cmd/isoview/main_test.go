package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/Roughsketch/iso"
	"github.com/Roughsketch/iso/pkg/iso9660/descriptor"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleImage() *iso.Image {
	pvd := descriptor.NewPrimaryVolumeDescriptor()
	pvd.PrimaryVolumeDescriptorBody.VolumeIdentifier = "RENDER_TEST"
	pvd.LogicalBlockSize = 2048
	pvd.VolumeCreationDateAndTime = time.Date(2021, time.March, 3, 3, 3, 3, 0, time.UTC)
	return &iso.Image{Descriptors: descriptor.VolumeDescriptorSet{pvd, descriptor.NewVolumeDescriptorSetTerminator()}}
}

func TestRender(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, sampleImage(), false, false))
		require.Contains(t, buf.String(), "RENDER_TEST")
		require.Contains(t, buf.String(), "Volume Descriptor Set Terminator")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, sampleImage(), true, false))

		var out struct {
			Descriptors []map[string]interface{} `json:"descriptors"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		require.Len(t, out.Descriptors, 2)
		require.Equal(t, "RENDER_TEST", out.Descriptors[0]["volume_identifier"])
		require.Equal(t, float64(2048), out.Descriptors[0]["logical_block_size"])
		require.Equal(t, "CD001", out.Descriptors[1]["standard_identifier"])
		require.NotContains(t, out.Descriptors[0], "Logger")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, sampleImage(), false, true))

		var out struct {
			Descriptors []map[string]interface{} `yaml:"descriptors"`
		}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
		require.Len(t, out.Descriptors, 2)
		require.Equal(t, "RENDER_TEST", out.Descriptors[0]["volume_identifier"])
		require.Equal(t, 255, out.Descriptors[1]["volume_descriptor_type"])
	})
}
