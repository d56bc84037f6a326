package host

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadHexDataAndEOF(t *testing.T) {
	m := NewMachine(nil, nil)
	src := strings.NewReader(
		":03010000373839C1\n" +
			":00000001FF\n",
	)
	require.NoError(t, m.LoadHex(src))

	assert.Equal(t, uint8(0x37), m.ReadByte(0x0100))
	assert.Equal(t, uint8(0x38), m.ReadByte(0x0101))
	assert.Equal(t, uint8(0x39), m.ReadByte(0x0102))
}

func TestLoadHexStopsAtEOFRecord(t *testing.T) {
	m := NewMachine(nil, nil)
	src := strings.NewReader(
		":00000001FF\n" +
			":01020000AADD\n", // after EOF; must be ignored
	)
	require.NoError(t, m.LoadHex(src))
	assert.Equal(t, uint8(0), m.ReadByte(0x0200))
}

func TestLoadHexRejectsMissingColon(t *testing.T) {
	m := NewMachine(nil, nil)
	err := m.LoadHex(strings.NewReader("03010000373839C1\n"))
	require.Error(t, err)
}

func TestLoadHexRejectsSegmentAddressRecords(t *testing.T) {
	m := NewMachine(nil, nil)
	err := m.LoadHex(strings.NewReader(":020000020000FC\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported hex record type")
}

func TestLoadHexRejectsTruncatedLine(t *testing.T) {
	m := NewMachine(nil, nil)
	err := m.LoadHex(strings.NewReader(":0301\n"))
	require.Error(t, err)
}
