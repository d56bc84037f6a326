package host

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineReadWriteByteAndWord(t *testing.T) {
	m := NewMachine(nil, nil)
	m.WriteByte(0x1000, 0x42)
	assert.Equal(t, uint8(0x42), m.ReadByte(0x1000))

	m.WriteWord(0x2000, 0xBEEF)
	assert.Equal(t, uint8(0xEF), m.ReadByte(0x2000))
	assert.Equal(t, uint8(0xBE), m.ReadByte(0x2001))
	assert.Equal(t, uint16(0xBEEF), m.ReadWord(0x2000))
}

func TestMachineWordWrapsAtTopOfAddressSpace(t *testing.T) {
	m := NewMachine(nil, nil)
	m.WriteWord(0xFFFF, 0xBEEF)
	assert.Equal(t, uint8(0xEF), m.ReadByte(0xFFFF))
	assert.Equal(t, uint8(0xBE), m.ReadByte(0x0000))
}

func TestMachineUnmappedPortReadsAllOnes(t *testing.T) {
	m := NewMachine(nil, nil)
	assert.Equal(t, uint8(0xFF), m.In(0x42))
	m.Out(0x42, 0x99) // must not panic, silently discarded
}

func TestMachineConsoleRoundTrip(t *testing.T) {
	in := strings.NewReader("A")
	var out bytes.Buffer
	m := NewMachine(in, &out)

	require.Equal(t, uint8(statusInputReady), m.In(consoleStatus))
	assert.Equal(t, uint8('A'), m.In(consoleData))
	assert.Equal(t, uint8(0), m.In(consoleStatus), "status must drop once the byte is consumed")

	m.Out(consoleData, 'Z')
	assert.Equal(t, "Z", out.String())
}

func TestMachineConsoleWithoutReaderNeverReportsReady(t *testing.T) {
	m := NewMachine(nil, nil)
	assert.Equal(t, uint8(0), m.In(consoleStatus))
	assert.Equal(t, uint8(0), m.In(consoleData))
}

func TestMachineIFFChangedTracksLatestState(t *testing.T) {
	m := NewMachine(nil, nil)
	assert.False(t, m.InterruptsEnabled())
	m.IFFChanged(true)
	assert.True(t, m.InterruptsEnabled())
	m.IFFChanged(false)
	assert.False(t, m.InterruptsEnabled())
}

func TestMachineLoadBinary(t *testing.T) {
	m := NewMachine(nil, nil)
	m.LoadBinary(0x0100, []byte{0x3E, 0x42, 0x76})

	snap := m.Snapshot()
	assert.Equal(t, uint8(0x3E), snap[0x0100])
	assert.Equal(t, uint8(0x42), snap[0x0101])
	assert.Equal(t, uint8(0x76), snap[0x0102])
}
