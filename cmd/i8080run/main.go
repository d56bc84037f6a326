// Command i8080run loads a program image into a reference host machine
// and runs an i8080 core against it. It exists to exercise pkg/cpu,
// pkg/host and pkg/trace end to end; none of its flags or behavior is
// part of the core's contract.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/retrogo/i8080/pkg/cpu"
	"github.com/retrogo/i8080/pkg/hal"
	"github.com/retrogo/i8080/pkg/host"
	"github.com/retrogo/i8080/pkg/trace"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "i8080run",
		Short: "Run a program image against the i8080 core",
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		origin      uint16
		hexFormat   bool
		start       uint16
		useStart    bool
		maxInstr    int
		interactive bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Load an image and run it to a halt or instruction budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			out := os.Stdout
			var m *host.Machine
			if interactive {
				console, err := newTermConsole()
				if err != nil {
					return fmt.Errorf("i8080run: enable interactive console: %w", err)
				}
				defer console.Close()
				m = host.NewMachine(console.reader, out)
			} else {
				m = host.NewMachine(os.Stdin, out)
			}

			images := []host.Image{{Path: path, Origin: origin, Hex: hexFormat}}
			if err := m.LoadAll(images); err != nil {
				return err
			}

			core := cpu.New(hal.Bus(m))
			if useStart {
				core.Jump(start)
			}

			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger := trace.New(os.Stderr, level)

			totalCycles, instructions, halted := host.Run(core, maxInstr, logger.StepHook)
			if halted {
				logger.Halted(core.PC, totalCycles, instructions)
			}
			if !halted && maxInstr != 0 {
				fmt.Fprintf(os.Stderr, "i8080run: instruction budget (%d) exhausted before halt\n", maxInstr)
			}
			return nil
		},
	}

	cmd.Flags().Uint16Var(&origin, "origin", 0, "load address for a raw binary image (ignored for --hex)")
	cmd.Flags().BoolVar(&hexFormat, "hex", false, "treat the image as Intel HEX rather than raw binary")
	cmd.Flags().Uint16Var(&start, "start", 0, "jump to this address after Init instead of the reset vector")
	cmd.Flags().BoolVar(&useStart, "use-start", false, "apply --start (otherwise the core boots at its reset vector)")
	cmd.Flags().IntVar(&maxInstr, "max-instructions", 0, "stop after this many instructions even if not halted (0 = unbounded)")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "put the terminal in raw mode and feed keystrokes to the console device")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace every instruction")

	return cmd
}
