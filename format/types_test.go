package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemTypes(t *testing.T) {
	types := ItemTypes()

	require.Len(t, types, 34)
	require.Equal(t, ItemTerrain, types[0])
	require.Equal(t, ItemVisibilityArea, types[len(types)-1])

	for i := 1; i < len(types); i++ {
		require.Less(t, types[i-1], types[i])
	}
}

func TestItemType_IsValid(t *testing.T) {
	gaps := []ItemType{0x00, 0x0A, 0x0E, 0x10, 0x11, 0x14, 0x18, 0x1B, 0x1D, 0x21, 0x31, 0xFF}
	for _, tag := range gaps {
		require.False(t, tag.IsValid(), "tag 0x%02X", uint8(tag))
		require.Equal(t, "Unknown", tag.String())
	}

	require.True(t, ItemMover.IsValid())
	require.True(t, ItemNoWeatherArea.IsValid())
}

func TestParseItemType(t *testing.T) {
	for _, typ := range ItemTypes() {
		parsed, ok := ParseItemType(typ.String())
		require.True(t, ok, typ.String())
		require.Equal(t, typ, parsed)
	}

	_, ok := ParseItemType("Unknown")
	require.False(t, ok)
}

func TestCompressionType(t *testing.T) {
	tests := []struct {
		comp  CompressionType
		name  string
		valid bool
	}{
		{CompressionNone, "None", true},
		{CompressionZstd, "Zstd", true},
		{CompressionS2, "S2", true},
		{CompressionLZ4, "LZ4", true},
		{CompressionType(0), "Unknown", false},
		{CompressionType(9), "Unknown", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, tt.comp.String())
			require.Equal(t, tt.valid, tt.comp.IsValid())
		})
	}
}
