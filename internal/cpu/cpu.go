// Package cpu implements the LR35902 fetch/decode/execute loop over the
// register file from internal/cpuregs: the ALU primitives (alu.go) and a
// flat dispatcher on the opcode byte (opcodes.go) driving them against an
// MMU bus.
package cpu

import (
	"fmt"

	"pocketcore/internal/cpuerr"
	"pocketcore/internal/cpuregs"
	"pocketcore/internal/mmu"
	"pocketcore/internal/telemetry"
)

// CPU owns the register file and the memory bus exclusively; per
// SPEC_FULL.md's concurrency model there is no other holder during a step,
// so CPU needs no internal locking.
type CPU struct {
	regs *cpuregs.Registers
	bus  *mmu.Bus
	log  *telemetry.Logger
}

// New constructs a CPU with its own register file over the given bus. log
// may be nil, in which case dump_status and unknown-opcode diagnostics are
// silently dropped.
func New(bus *mmu.Bus, log *telemetry.Logger) *CPU {
	return &CPU{
		regs: cpuregs.New(),
		bus:  bus,
		log:  log,
	}
}

// Registers exposes the register file for inspection (tests, dump_status,
// external drivers).
func (c *CPU) Registers() *cpuregs.Registers {
	return c.regs
}

// ReadROM resets the bus and installs rom as the cartridge image.
func (c *CPU) ReadROM(rom []byte) error {
	c.bus.Reset()
	if err := c.bus.LoadROM(rom); err != nil {
		return err
	}
	return nil
}

// nextByte reads the byte at PC through the bus, then advances PC.
func (c *CPU) nextByte() (uint8, error) {
	pc := c.regs.PC
	v, err := c.bus.Rb(pc)
	if err != nil {
		return 0, err
	}
	c.regs.IncPC()
	return v, nil
}

// nextWord reads two bytes via nextByte, composing them little-endian (low
// byte first, then high byte).
func (c *CPU) nextWord() (uint16, error) {
	lo, err := c.nextByte()
	if err != nil {
		return 0, err
	}
	hi, err := c.nextByte()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Step fetches, decodes, and executes a single opcode, returning its
// documented machine-cycle count. Bus faults abort the step and propagate
// to the caller; unknown opcodes are logged and return zero cycles without
// error, per spec.md §7.
func (c *CPU) Step() (int, error) {
	pc := c.regs.PC
	opcode, err := c.nextByte()
	if err != nil {
		return 0, err
	}

	cycles, err := c.execute(opcode)
	if err != nil {
		if _, ok := err.(*cpuerr.UnknownOpcode); ok {
			c.logf(telemetry.ComponentCPU, telemetry.LevelWarn, "%s", err.Error())
			return 0, nil
		}
		return 0, fmt.Errorf("step at pc=0x%04X opcode=0x%02X: %w", pc, opcode, err)
	}
	return cycles, nil
}

// DumpStatus emits the current register snapshot to the log sink.
func (c *CPU) DumpStatus() {
	c.logf(telemetry.ComponentCPU, telemetry.LevelInfo, "%s", c.regs.String())
}

func (c *CPU) logf(component telemetry.Component, level telemetry.Level, format string, args ...interface{}) {
	if c.log == nil {
		return
	}
	c.log.Log(component, level, format, args...)
}
