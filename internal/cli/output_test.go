package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sampleDevices = []Device{
	{Kind: "gamepad", ID: "3", Name: "Virtual Pad", Detail: "xbox360"},
	{Kind: "playback", ID: "2", Name: "Dummy Output"},
}

func TestRenderStructured(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "json", sampleDevices))
	var fromJSON []Device
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, sampleDevices, fromJSON)

	buf.Reset()
	require.NoError(t, Render(&buf, "yaml", sampleDevices))
	var fromYAML []Device
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, sampleDevices, fromYAML)

	buf.Reset()
	require.NoError(t, Render(&buf, "TOML", sampleDevices))
	var fromTOML struct {
		Devices []Device `toml:"devices"`
	}
	_, err := toml.Decode(buf.String(), &fromTOML)
	require.NoError(t, err)
	assert.Equal(t, sampleDevices, fromTOML.Devices)
}

func TestRenderPlainTableWhenNotTTY(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "table", sampleDevices))
	out := buf.String()
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "Virtual Pad")
	assert.NotContains(t, out, "╭")

	styled := styledTable(sampleDevices)
	assert.Contains(t, styled, "╭")
	assert.Contains(t, styled, "Dummy Output")
}

func TestRenderUnknownFormat(t *testing.T) {
	assert.ErrorContains(t, Render(&bytes.Buffer{}, "xml", nil), "unknown format")
}
