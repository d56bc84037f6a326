// Package host is a reference HAL implementation: a flat 64KiB
// address space plus a two-port console device. It is the "boring"
// collaborator spec.md leaves to the host — nothing here is required
// to use pkg/cpu, and none of it changes core semantics.
package host

import (
	"bufio"
	"io"
	"sync"
)

const memSize = 1 << 16

// consoleStatus/consoleData are the two ports the reference console
// device answers on. Every other port reads back 0xFF (spec.md §7's
// "fold bus errors into 0xFF for unmapped reads") and discards writes.
const (
	consoleStatus uint8 = 0x00
	consoleData   uint8 = 0x01

	statusInputReady = 0x01
)

// Machine is a flat-memory host: one contiguous 64KiB byte array, no
// memory-mapped I/O, and a single console device on ports 0/1. It
// corresponds to the "RAM backing store" and "host CLI" collaborators
// spec.md §1 scopes out of the core.
type Machine struct {
	mu  sync.Mutex
	mem [memSize]byte

	in  *bufio.Reader
	out io.Writer

	iffEnabled bool
	iffLog     []bool // every IFFChanged notification, in order; not exported
}

// NewMachine returns a Machine with its console wired to in/out. Pass
// nil for either to get a console that never has input ready and
// discards output.
func NewMachine(in io.Reader, out io.Writer) *Machine {
	m := &Machine{out: out}
	if in != nil {
		m.in = bufio.NewReader(in)
	}
	return m
}

// ReadByte implements hal.Bus.
func (m *Machine) ReadByte(addr uint16) uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mem[addr]
}

// ReadWord implements hal.Bus. The addr+1 access wraps naturally
// because addr is a uint16.
func (m *Machine) ReadWord(addr uint16) uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	lo := uint16(m.mem[addr])
	hi := uint16(m.mem[addr+1])
	return lo | hi<<8
}

// WriteByte implements hal.Bus.
func (m *Machine) WriteByte(addr uint16, v uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mem[addr] = v
}

// WriteWord implements hal.Bus.
func (m *Machine) WriteWord(addr uint16, v uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mem[addr] = uint8(v)
	m.mem[addr+1] = uint8(v >> 8)
}

// In implements hal.Bus. Port 0 returns statusInputReady when a
// console byte is buffered or can be read, and 0 when there is no
// reader or it is at EOF or in error; it peeks the reader, so it
// blocks until a byte arrives or the reader ends. Port 1 consumes one
// console byte (blocking read, 0 on EOF). Every other port reads back
// 0xFF.
func (m *Machine) In(port uint8) uint8 {
	switch port {
	case consoleStatus:
		if m.in == nil {
			return 0
		}
		if _, err := m.in.Peek(1); err != nil {
			return 0
		}
		return statusInputReady
	case consoleData:
		if m.in == nil {
			return 0
		}
		b, err := m.in.ReadByte()
		if err != nil {
			return 0
		}
		return b
	}
	return 0xFF
}

// Out implements hal.Bus. Port 1 writes one byte to the console;
// every other port, including the read-only status port, discards
// the write.
func (m *Machine) Out(port uint8, v uint8) {
	if port != consoleData || m.out == nil {
		return
	}
	_, _ = m.out.Write([]byte{v})
}

// IFFChanged implements hal.Bus.
func (m *Machine) IFFChanged(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.iffEnabled = enabled
	m.iffLog = append(m.iffLog, enabled)
}

// InterruptsEnabled reports the most recent IFF state reported by the
// core.
func (m *Machine) InterruptsEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.iffEnabled
}

// LoadBinary copies image into memory starting at origin.
func (m *Machine) LoadBinary(origin uint16, image []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range image {
		m.mem[uint16(int(origin)+i)] = b
	}
}

// Snapshot returns a copy of the full 64KiB address space, for tests
// and tools that want to inspect memory without racing the core.
func (m *Machine) Snapshot() [memSize]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mem
}
