package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New("/usr/bin/cat", []string{"libc.so.6", "libzstd.so.1.5.5"})

	require.Len(t, r.Libraries, 2)
	assert.Equal(t, 2, r.Count)
	assert.False(t, r.StaticallyLinked)

	assert.Equal(t, "libc.so.6", r.Libraries[0].Name)
	assert.Equal(t, "libc.so", r.Libraries[0].BaseName)
	assert.Equal(t, "6", r.Libraries[0].Version)
	assert.Equal(t, CategorySystem, r.Libraries[0].Category)

	assert.Equal(t, "libzstd.so", r.Libraries[1].BaseName)
	assert.Equal(t, "1.5.5", r.Libraries[1].Version)
	assert.Equal(t, CategoryLibrary, r.Libraries[1].Category)
}

func TestNew_UnversionedName(t *testing.T) {
	r := New("plugin.so", []string{"libplugin-host.so"})

	require.Len(t, r.Libraries, 1)
	assert.Equal(t, "libplugin-host.so", r.Libraries[0].BaseName)
	assert.Empty(t, r.Libraries[0].Version)
}

func TestNew_StaticallyLinked(t *testing.T) {
	r := New("/bin/busybox", nil)
	assert.True(t, r.StaticallyLinked)
	assert.Zero(t, r.Count)

	// An empty, non-nil list is a dynamic object with no dependencies.
	r = New("/bin/tool", []string{})
	assert.False(t, r.StaticallyLinked)
	assert.Zero(t, r.Count)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	r := New("/usr/bin/cat", []string{"libc.so.6", "libm.so.6"})
	require.NoError(t, r.Render(&buf, FormatText))

	out := buf.String()
	assert.Contains(t, out, "/usr/bin/cat:")
	// Line order must match declaration order.
	assert.Less(t, strings.Index(out, "libc.so.6"), strings.Index(out, "libm.so.6"))
}

func TestRender_TextStaticallyLinked(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New("/bin/busybox", nil).Render(&buf, FormatText))
	assert.Contains(t, buf.String(), "statically linked")
}

func TestRender_TextNoDependencies(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New("/bin/tool", []string{}).Render(&buf, FormatText))
	assert.Contains(t, buf.String(), "no shared library dependencies")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := New("/usr/bin/cat", []string{"libc.so.6", "libm.so.6"})
	require.NoError(t, r.Render(&buf, FormatJSON))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/usr/bin/cat", decoded.BinaryPath)
	require.Len(t, decoded.Libraries, 2)
	assert.Equal(t, "libc.so.6", decoded.Libraries[0].Name)
	assert.Equal(t, "libm.so.6", decoded.Libraries[1].Name)
}

func TestRender_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := New("x", nil).Render(&buf, Format("xml"))
	assert.Error(t, err)
}
