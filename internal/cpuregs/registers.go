// Package cpuregs implements the LR35902 register file: the eight 8-bit
// general registers, the stack pointer and program counter, and the packed
// flag byte with its four bit-addressable flags.
package cpuregs

import "fmt"

// Flag bit positions within the packed flag byte. The low nibble is
// reserved and always reads as zero.
const (
	FlagZ uint8 = 1 << 7 // Zero
	FlagN uint8 = 1 << 6 // Subtract
	FlagH uint8 = 1 << 5 // Half-Carry
	FlagC uint8 = 1 << 4 // Carry
)

// Flags is the CPU's packed flag register. It exposes both named boolean
// predicates and a packed byte view so callers can use whichever is more
// convenient; both views stay in sync because the named fields are the
// only storage and Value()/SetValue() translate to and from them.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Value packs the four flags into the upper nibble of a byte; the lower
// nibble is always zero.
func (f Flags) Value() uint8 {
	var v uint8
	if f.Zero {
		v |= FlagZ
	}
	if f.Subtract {
		v |= FlagN
	}
	if f.HalfCarry {
		v |= FlagH
	}
	if f.Carry {
		v |= FlagC
	}
	return v
}

// SetValue installs the four flags from the upper nibble of v; any bits in
// the lower nibble are ignored, matching real hardware where F's low nibble
// cannot be set by software.
func (f *Flags) SetValue(v uint8) {
	f.Zero = v&FlagZ != 0
	f.Subtract = v&FlagN != 0
	f.HalfCarry = v&FlagH != 0
	f.Carry = v&FlagC != 0
}

func (f Flags) String() string {
	b := func(set bool, c byte) byte {
		if set {
			return c
		}
		return '-'
	}
	return string([]byte{
		b(f.Zero, 'Z'),
		b(f.Subtract, 'N'),
		b(f.HalfCarry, 'H'),
		b(f.Carry, 'C'),
	})
}

// Registers is the LR35902 register file.
type Registers struct {
	A, B, C, D, E, H, L uint8
	Flags               Flags
	SP, PC              uint16
}

// New returns a register file in its documented post-boot state: all
// general registers and flags zero, SP at the top of high RAM, PC at the
// cartridge entry point.
func New() *Registers {
	r := &Registers{}
	r.Reset()
	return r
}

// Reset restores the documented initial state.
func (r *Registers) Reset() {
	r.A, r.B, r.C, r.D, r.E, r.H, r.L = 0, 0, 0, 0, 0, 0, 0
	r.Flags = Flags{}
	r.SP = 0xFFFE
	r.PC = 0x0100
}

// F returns the packed flag byte, for callers that want it alongside the
// other 8-bit registers (e.g. PUSH AF).
func (r *Registers) F() uint8 {
	return r.Flags.Value()
}

// SetF installs the packed flag byte (e.g. POP AF).
func (r *Registers) SetF(v uint8) {
	r.Flags.SetValue(v)
}

// BC, DE and HL are 16-bit views composed of two adjacent 8-bit registers.
// They are views, not storage: writing a pair splits into the constituent
// registers, and the constituents may still be read/written individually.

func (r *Registers) BC() uint16 { return pack(r.B, r.C) }
func (r *Registers) DE() uint16 { return pack(r.D, r.E) }
func (r *Registers) HL() uint16 { return pack(r.H, r.L) }

func (r *Registers) SetBC(v uint16) { r.B, r.C = split(v) }
func (r *Registers) SetDE(v uint16) { r.D, r.E = split(v) }
func (r *Registers) SetHL(v uint16) { r.H, r.L = split(v) }

func pack(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

func split(v uint16) (hi, lo uint8) {
	return uint8(v >> 8), uint8(v)
}

// IncPC advances PC by one, wrapping modulo 2^16, and returns the new value.
func (r *Registers) IncPC() uint16 {
	r.PC++
	return r.PC
}

// DecPC retreats PC by one, wrapping modulo 2^16, and returns the new value.
func (r *Registers) DecPC() uint16 {
	r.PC--
	return r.PC
}

func (r *Registers) String() string {
	return fmt.Sprintf("A=%02X F=%02X(%s) BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X",
		r.A, r.F(), r.Flags, r.BC(), r.DE(), r.HL(), r.SP, r.PC)
}
