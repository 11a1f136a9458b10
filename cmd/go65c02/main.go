// Command go65c02 loads a raw 64 KiB memory image and either runs it to
// completion on the 65C02 core or disassembles it. Program loading and
// the command-line surface are explicitly external collaborators to the
// core engine (package cpu); this is that collaborator.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdcworks/go65c02/cpu"
	"github.com/wdcworks/go65c02/disassemble"
	"github.com/wdcworks/go65c02/memory"
)

const imageSize = 1 << 16

func loadImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading image %s", path)
	}
	if len(data) > imageSize {
		return nil, errors.Errorf("image %s is %d bytes, exceeds 64 KiB address space", path, len(data))
	}
	return data, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "go65c02",
		Short: "A WDC 65C02 instruction-set emulator core",
	}

	var maxSteps int
	runCmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Load a raw 64 KiB image and run it until STP or the step limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := loadImage(args[0])
			if err != nil {
				return err
			}
			ram := memory.NewFlat(image)
			c, err := cpu.Init(cpu.ChipDef{Ram: ram})
			if err != nil {
				return errors.Wrap(err, "initializing CPU")
			}
			res, err := c.Run(maxSteps)
			if err != nil {
				return errors.Wrap(err, "running program")
			}
			regs := c.Registers()
			fmt.Printf("steps=%d halted=%v A=%02X X=%02X Y=%02X S=%02X PC=%04X\n",
				res.StepsExecuted, res.Halted, regs.A, regs.X, regs.Y, regs.S, regs.PC)
			if !res.Halted {
				os.Exit(1)
			}
			return nil
		},
	}
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many instructions (0 = unbounded)")

	var startPC uint16
	var count int
	disasmCmd := &cobra.Command{
		Use:   "disasm <image>",
		Short: "Disassemble a raw 64 KiB image starting at --start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := loadImage(args[0])
			if err != nil {
				return err
			}
			ram := memory.NewFlat(image)
			pc := startPC
			for i := 0; i < count; i++ {
				line, length := disassemble.Step(pc, ram)
				fmt.Println(line)
				pc += uint16(length)
			}
			return nil
		},
	}
	disasmCmd.Flags().Uint16Var(&startPC, "start", 0x8000, "address to start disassembling at")
	disasmCmd.Flags().IntVar(&count, "count", 32, "number of instructions to disassemble")

	root.AddCommand(runCmd, disasmCmd)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
