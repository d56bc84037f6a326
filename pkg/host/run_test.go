package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrogo/i8080/pkg/cpu"
)

func TestRunStopsAtHLTAndReportsCycles(t *testing.T) {
	m := NewMachine(nil, nil)
	m.LoadBinary(0x0000, []byte{0x00, 0x00, 0x76}) // NOP, NOP, HLT
	c := cpu.New(m)
	c.Jump(0x0000)

	var seen []uint16
	totalCycles, instructions, halted := Run(c, 0, func(pc uint16, cycles int, total int) {
		seen = append(seen, pc)
	})

	require.True(t, halted)
	assert.Equal(t, 3, instructions)
	assert.Equal(t, []uint16{0x0000, 0x0001, 0x0002}, seen)
	assert.Equal(t, 4+4+4, totalCycles)
	assert.Equal(t, uint16(0x0002), c.PC, "HLT rewinds PC to its own address")
}

func TestRunRespectsInstructionBudgetWithoutHalting(t *testing.T) {
	m := NewMachine(nil, nil)
	m.LoadBinary(0x0000, []byte{0x00, 0x00, 0x00, 0x76})
	c := cpu.New(m)
	c.Jump(0x0000)

	_, instructions, halted := Run(c, 2, nil)

	assert.False(t, halted)
	assert.Equal(t, 2, instructions)
	assert.Equal(t, uint16(0x0002), c.PC)
}

func TestRunOnStepNilIsSafe(t *testing.T) {
	m := NewMachine(nil, nil)
	m.LoadBinary(0x0000, []byte{0x76})
	c := cpu.New(m)
	c.Jump(0x0000)

	assert.NotPanics(t, func() {
		_, _, halted := Run(c, 0, nil)
		assert.True(t, halted)
	})
}
