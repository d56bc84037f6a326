// Package trace provides structured step-by-step tracing for hosts
// driving a cpu.CPU. It is entirely optional and lives outside
// pkg/cpu: per spec.md §7 the core itself never logs or fails.
package trace

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger configured for per-instruction
// tracing. The zero value is not usable; construct with New.
type Logger struct {
	zl zerolog.Logger
}

// New returns a Logger writing to w at the given level. Use
// zerolog.Disabled to build a Logger whose StepHook is a true no-op
// (zero allocation on the hot path).
func New(w io.Writer, level zerolog.Level) *Logger {
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// StepHook logs one instruction's PC, cycle cost, and running total.
// Its signature matches host.StepFunc so it can be passed directly to
// host.Run.
func (l *Logger) StepHook(pc uint16, cycles int, total int) {
	if l == nil {
		return
	}
	l.zl.Debug().
		Uint16("pc", pc).
		Int("cycles", cycles).
		Int("total_cycles", total).
		Msg("step")
}

// Halted logs the terminal state once Run reports a halt.
func (l *Logger) Halted(pc uint16, totalCycles int, instructions int) {
	if l == nil {
		return
	}
	l.zl.Info().
		Uint16("pc", pc).
		Int("total_cycles", totalCycles).
		Int("instructions", instructions).
		Msg("halted")
}
