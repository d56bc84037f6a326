package host

import "github.com/retrogo/i8080/pkg/cpu"

// StepFunc is invoked after every instruction Run executes, with the
// opcode's PC, the cycles it cost, and the running cycle total. Hosts
// use it for tracing; pass nil to skip.
type StepFunc func(pc uint16, cycles int, total int)

// Run steps cpu until it has executed maxInstructions (0 means
// unbounded) or halts. HLT is recognized per spec.md §7 — "the host
// recognizes it by observing PC stationary across steps" — rather
// than any flag the core exposes, since the core has none.
func Run(c *cpu.CPU, maxInstructions int, onStep StepFunc) (totalCycles int, instructions int, halted bool) {
	for instructions = 0; maxInstructions == 0 || instructions < maxInstructions; instructions++ {
		pc := c.PC
		cycles := c.Step()
		totalCycles += cycles
		if onStep != nil {
			onStep(pc, cycles, totalCycles)
		}
		if c.PC == pc {
			// HLT rewinds PC to its own address before returning; PC
			// stationary across a step is the host-visible signature.
			return totalCycles, instructions + 1, true
		}
	}
	return totalCycles, instructions, false
}
