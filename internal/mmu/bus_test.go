package mmu

import (
	"testing"

	"pocketcore/internal/cpuerr"

	"github.com/stretchr/testify/require"
)

func TestBusRoutesROMWindowToCartridge(t *testing.T) {
	bus := NewBus()
	rom := makeROM(0x8000, 0x00)
	rom[0x10] = 0x7A
	require.NoError(t, bus.LoadROM(rom))

	v, err := bus.Rb(0x10)
	require.NoError(t, err)
	require.Equal(t, uint8(0x7A), v)
}

func TestBusRoutesAboveROMToBackingArray(t *testing.T) {
	bus := NewBus()
	require.NoError(t, bus.Wb(0xC000, 0x55))
	v, err := bus.Rb(0xC000)
	require.NoError(t, err)
	require.Equal(t, uint8(0x55), v)
}

func TestBusReadROMWithoutCartridgeFaults(t *testing.T) {
	bus := NewBus()
	_, err := bus.Rb(0x0000)
	require.Error(t, err)
	var noMBC *cpuerr.NoMBC
	require.ErrorAs(t, err, &noMBC)
}

func TestBusWriteIntoROMWindowFaultsThroughCartridge(t *testing.T) {
	bus := NewBus()
	require.NoError(t, bus.LoadROM(makeROM(0x8000, 0x00)))

	err := bus.Wb(0x1000, 0x99)
	require.Error(t, err)
	var fault *cpuerr.BusFault
	require.ErrorAs(t, err, &fault)
}

func TestBusResetClearsBackingArrayNotCartridge(t *testing.T) {
	bus := NewBus()
	rom := makeROM(0x8000, 0x00)
	rom[0] = 0x11
	require.NoError(t, bus.LoadROM(rom))
	require.NoError(t, bus.Wb(0xC000, 0xFF))

	bus.Reset()

	v, err := bus.Rb(0xC000)
	require.NoError(t, err)
	require.Equal(t, uint8(0), v)

	romByte, err := bus.Rb(0x0000)
	require.NoError(t, err)
	require.Equal(t, uint8(0x11), romByte, "cartridge survives Reset")
}

func TestBusAddressSpaceIsFullyCovered(t *testing.T) {
	bus := NewBus()
	require.NoError(t, bus.LoadROM(makeROM(0x8000, 0x00)))

	// every address above the ROM window must be reachable without error
	for _, addr := range []uint16{0x4000, 0x8000, 0xC000, 0xFFFF} {
		_, err := bus.Rb(addr)
		require.NoError(t, err)
	}
}
