package mmu

import "pocketcore/internal/cpuerr"

// cartridgeTop is the last address routed to the cartridge; everything
// above it is backed by the internal working-memory array.
const cartridgeTop = 0x3FFF

// Bus is the LR35902 MMU: it owns an optional cartridge (MBC) and the 64 KiB
// internal array that backs working memory, I/O and video RAM, high RAM and
// everything else above the ROM window. It is exclusively owned by the CPU
// for the lifetime of the process; nothing else holds a reference during a
// Step.
type Bus struct {
	cart Cartridge
	ram  [65536]byte

	// ramStub exists for interface symmetry with a future external RAM
	// cartridge extension; the CPU core never touches it.
	ramStub []byte
}

// NewBus constructs an MMU with no cartridge installed.
func NewBus() *Bus {
	return &Bus{}
}

// Reset clears the internal backing array. It does not affect the
// installed cartridge.
func (b *Bus) Reset() {
	for i := range b.ram {
		b.ram[i] = 0
	}
}

// LoadROM constructs and installs a cartridge from the given ROM image.
func (b *Bus) LoadROM(rom []byte) error {
	cart, err := NewCartridge(rom)
	if err != nil {
		return err
	}
	b.cart = cart
	return nil
}

// Cartridge returns the installed cartridge, or nil if none is installed.
func (b *Bus) Cartridge() Cartridge {
	return b.cart
}

// Rb reads one byte from the address space: the cartridge ROM window below
// 0x4000, or the internal backing array everywhere else.
func (b *Bus) Rb(addr uint16) (uint8, error) {
	if addr <= cartridgeTop {
		if b.cart == nil {
			return 0, &cpuerr.NoMBC{Addr: addr}
		}
		return b.cart.Read(addr)
	}
	return b.ram[addr], nil
}

// Wb writes one byte. Writes into the ROM window are routed to the
// cartridge (the trivial MBC faults on any write, per spec.md's resolved
// open question); writes elsewhere go to the backing array.
func (b *Bus) Wb(addr uint16, v uint8) error {
	if addr <= cartridgeTop {
		if b.cart == nil {
			return &cpuerr.NoMBC{Addr: addr}
		}
		return b.cart.Write(addr, v)
	}
	b.ram[addr] = v
	return nil
}
