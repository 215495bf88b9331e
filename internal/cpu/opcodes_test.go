package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLDr1r2RegisterCopy(t *testing.T) {
	c := newTestCPU(t, []byte{0x41}) // LD B,C
	c.regs.C = 0x77
	cycles, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, 1, cycles)
	require.Equal(t, uint8(0x77), c.regs.B)
}

func TestLDrHLAndLDHLrUseBus(t *testing.T) {
	c := newTestCPU(t, []byte{0x46, 0x70}) // LD B,(HL) ; LD (HL),B
	c.regs.SetHL(0xC000)
	require.NoError(t, c.bus.Wb(0xC000, 0x42))

	cycles, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, 2, cycles)
	require.Equal(t, uint8(0x42), c.regs.B)

	c.regs.B = 0x55
	_, err = c.Step()
	require.NoError(t, err)
	v, err := c.bus.Rb(0xC000)
	require.NoError(t, err)
	require.Equal(t, uint8(0x55), v)
}

func TestLDAbsoluteAddrARoundTrip(t *testing.T) {
	c := newTestCPU(t, []byte{0xEA, 0x00, 0xC0, 0xFA, 0x00, 0xC0})
	c.regs.A = 0x81

	_, err := c.Step()
	require.NoError(t, err)
	c.regs.A = 0
	_, err = c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0x81), c.regs.A)
}

func TestLDCIndirectARoundTrip(t *testing.T) {
	c := newTestCPU(t, []byte{0xE2, 0xF2})
	c.regs.C = 0x10
	c.regs.A = 0x5A

	_, err := c.Step()
	require.NoError(t, err)
	c.regs.A = 0
	_, err = c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0x5A), c.regs.A)
}

func TestLDHLIncDecVariants(t *testing.T) {
	c := newTestCPU(t, []byte{0x22, 0x3A})
	c.regs.SetHL(0xC000)
	c.regs.A = 0x11
	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint16(0xC001), c.regs.HL())

	c.regs.SetHL(0xC005)
	require.NoError(t, c.bus.Wb(0xC005, 0x22))
	_, err = c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0x22), c.regs.A)
	require.Equal(t, uint16(0xC004), c.regs.HL())
}

func TestAddANSetsCarryAndHalfCarry(t *testing.T) {
	c := newTestCPU(t, []byte{0xC6, 0x01})
	c.regs.A = 0xFF

	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0x00), c.regs.A)
	require.True(t, c.regs.Flags.Zero)
	require.True(t, c.regs.Flags.Carry)
	require.True(t, c.regs.Flags.HalfCarry)
	require.False(t, c.regs.Flags.Subtract)
}

func TestLDSPHL(t *testing.T) {
	c := newTestCPU(t, []byte{0xF9})
	c.regs.SetHL(0xBEEF)
	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), c.regs.SP)
}

func TestRLAThroughCarry(t *testing.T) {
	c := newTestCPU(t, []byte{0x17}) // RLA
	c.regs.A = 0x80
	c.regs.Flags.Carry = false

	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0x00), c.regs.A)
	require.True(t, c.regs.Flags.Carry)
	require.False(t, c.regs.Flags.Zero, "RLA clears Zero unconditionally")
}
