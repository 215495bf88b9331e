// Package mmu implements the memory-management unit that routes the
// LR35902's 16-bit address space to either cartridge ROM (through a memory
// bank controller) or the internal working-memory array, and the memory
// bank controller (MBC) abstraction itself.
package mmu

import (
	"pocketcore/internal/cpuerr"

	"github.com/cespare/xxhash"
)

// cartridgeTypeOffset is the ROM header offset that selects the MBC
// variant. 0x00 selects the trivial no-bank-controller variant; the
// original implementation this spec is grounded on does not implement any
// other variant, so every other value is detected but unsupported.
const cartridgeTypeOffset = 0x0147

// Cartridge is the memory bank controller contract. Addresses passed to
// Read/Write are absolute 16-bit CPU addresses in the 0x0000-0x3FFF ROM
// window; implementations are responsible for bounds-checking against their
// own declared ROM size.
type Cartridge interface {
	Read(addr uint16) (uint8, error)
	Write(addr uint16, v uint8) error
	TypeName() string

	// Hash returns a content hash of the loaded ROM image, for
	// identification/logging. It has no effect on CPU semantics.
	Hash() uint64
}

// NewCartridge inspects the cartridge-type byte at ROM offset 0x0147 and
// constructs the matching Cartridge variant. The ROM bytes are copied, so
// the caller may discard its slice afterwards.
func NewCartridge(rom []byte) (Cartridge, error) {
	if len(rom) <= cartridgeTypeOffset {
		return nil, &cpuerr.CartridgeUnsupported{CartridgeType: 0xFF}
	}

	cartType := rom[cartridgeTypeOffset]
	switch cartType {
	case 0x00:
		return newNoController(rom), nil
	default:
		return nil, &cpuerr.CartridgeUnsupported{CartridgeType: cartType}
	}
}

// noController is the trivial MBC variant: a flat ROM image with no bank
// switching. It is the only variant spec.md requires.
type noController struct {
	data []byte
	hash uint64
}

func newNoController(rom []byte) *noController {
	data := make([]byte, len(rom))
	copy(data, rom)
	return &noController{
		data: data,
		hash: xxhash.Sum64(data),
	}
}

func (c *noController) Read(addr uint16) (uint8, error) {
	if int(addr) >= len(c.data) {
		return 0, &cpuerr.BusFault{Addr: addr, Op: "read"}
	}
	return c.data[addr], nil
}

func (c *noController) Write(addr uint16, _ uint8) error {
	// ROM is read-only; any write faults regardless of address, matching
	// spec.md's documented behavior for the trivial variant.
	return &cpuerr.BusFault{Addr: addr, Op: "write"}
}

func (c *noController) TypeName() string {
	return "no-controller"
}

func (c *noController) Hash() uint64 {
	return c.hash
}

func (c *noController) ROMSize() int {
	return len(c.data)
}
