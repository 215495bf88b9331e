package cpu

import "pocketcore/internal/cpuerr"

// r8 index encoding shared by LD r,n / LD r1,r2 / INC r / DEC r / ADD A,r /
// ADC A,r: 0=B 1=C 2=D 3=E 4=H 5=L 6=(HL) 7=A.
const r8HL = 6

// r16 index encoding shared by LD rr,nn / INC rr / DEC rr / ADD HL,rr:
// 0=BC 1=DE 2=HL 3=SP.
const (
	r16BC = 0
	r16DE = 1
	r16HL = 2
	r16SP = 3
)

// getR8 reads the 8-bit operand named by index, routing index 6 through the
// bus at HL.
func (c *CPU) getR8(index uint8) (uint8, error) {
	switch index {
	case 0:
		return c.regs.B, nil
	case 1:
		return c.regs.C, nil
	case 2:
		return c.regs.D, nil
	case 3:
		return c.regs.E, nil
	case 4:
		return c.regs.H, nil
	case 5:
		return c.regs.L, nil
	case r8HL:
		return c.bus.Rb(c.regs.HL())
	case 7:
		return c.regs.A, nil
	}
	panic("getR8: index out of range")
}

// setR8 writes the 8-bit operand named by index, routing index 6 through
// the bus at HL.
func (c *CPU) setR8(index uint8, v uint8) error {
	switch index {
	case 0:
		c.regs.B = v
	case 1:
		c.regs.C = v
	case 2:
		c.regs.D = v
	case 3:
		c.regs.E = v
	case 4:
		c.regs.H = v
	case 5:
		c.regs.L = v
	case r8HL:
		return c.bus.Wb(c.regs.HL(), v)
	case 7:
		c.regs.A = v
	default:
		panic("setR8: index out of range")
	}
	return nil
}

func (c *CPU) getR16(index uint8) uint16 {
	switch index {
	case r16BC:
		return c.regs.BC()
	case r16DE:
		return c.regs.DE()
	case r16HL:
		return c.regs.HL()
	case r16SP:
		return c.regs.SP
	}
	panic("getR16: index out of range")
}

func (c *CPU) setR16(index uint8, v uint16) {
	switch index {
	case r16BC:
		c.regs.SetBC(v)
	case r16DE:
		c.regs.SetDE(v)
	case r16HL:
		c.regs.SetHL(v)
	case r16SP:
		c.regs.SP = v
	default:
		panic("setR16: index out of range")
	}
}

// execute dispatches a single fetched opcode byte. Handlers consume any
// remaining immediate bytes themselves via nextByte/nextWord.
func (c *CPU) execute(opcode uint8) (int, error) {
	switch {
	case opcode == 0x00:
		return 1, nil

	case opcode == 0x08:
		return c.execLDAddrSP()

	case opcode == 0xF9:
		c.regs.SP = c.regs.HL()
		return 2, nil

	case opcode == 0xF8:
		return c.execLDHLSPn()

	case opcode == 0xE0:
		return c.execLDHWriteA()
	case opcode == 0xF0:
		return c.execLDHReadA()
	case opcode == 0xE2:
		return c.execLDCWriteA()
	case opcode == 0xF2:
		return c.execLDCReadA()
	case opcode == 0xEA:
		return c.execLDAddrNNWriteA()
	case opcode == 0xFA:
		return c.execLDAddrNNReadA()

	case opcode == 0x02:
		return c.execLDIndirectWriteA(c.regs.BC(), 0)
	case opcode == 0x12:
		return c.execLDIndirectWriteA(c.regs.DE(), 0)
	case opcode == 0x22:
		return c.execLDIndirectWriteA(c.regs.HL(), +1)
	case opcode == 0x32:
		return c.execLDIndirectWriteA(c.regs.HL(), -1)
	case opcode == 0x0A:
		return c.execLDIndirectReadA(c.regs.BC(), 0)
	case opcode == 0x1A:
		return c.execLDIndirectReadA(c.regs.DE(), 0)
	case opcode == 0x2A:
		return c.execLDIndirectReadA(c.regs.HL(), +1)
	case opcode == 0x3A:
		return c.execLDIndirectReadA(c.regs.HL(), -1)

	case opcode&0xCF == 0x01:
		return c.execLDRRnn((opcode >> 4) & 0x3)
	case opcode&0xCF == 0x03:
		return c.execIncRR((opcode >> 4) & 0x3)
	case opcode&0xCF == 0x0B:
		return c.execDecRR((opcode >> 4) & 0x3)
	case opcode&0xCF == 0x09:
		return c.execAddHLRR((opcode >> 4) & 0x3)

	case opcode&0xC7 == 0x06:
		return c.execLDrn((opcode >> 3) & 0x7)
	case opcode&0xC7 == 0x04:
		return c.execIncR((opcode >> 3) & 0x7)
	case opcode&0xC7 == 0x05:
		return c.execDecR((opcode >> 3) & 0x7)

	case opcode == 0x76:
		return 0, &cpuerr.UnknownOpcode{PC: c.regs.PC - 1, Opcode: opcode}

	case opcode >= 0x40 && opcode <= 0x7F:
		return c.execLDr1r2((opcode>>3)&0x7, opcode&0x7)

	case opcode >= 0x80 && opcode <= 0x87:
		return c.execAddAR(opcode & 0x7)
	case opcode == 0xC6:
		return c.execAddAN()
	case opcode >= 0x88 && opcode <= 0x8F:
		return c.execAdcAR(opcode & 0x7)
	case opcode == 0xCE:
		return c.execAdcAN()

	case opcode == 0x07:
		c.regs.A = c.rotate(c.regs.A, rotateLeft, false)
		c.regs.Flags.Zero = false
		return 1, nil
	case opcode == 0x0F:
		c.regs.A = c.rotate(c.regs.A, rotateRight, false)
		c.regs.Flags.Zero = false
		return 1, nil
	case opcode == 0x17:
		c.regs.A = c.rotate(c.regs.A, rotateLeft, true)
		c.regs.Flags.Zero = false
		return 1, nil
	case opcode == 0x1F:
		c.regs.A = c.rotate(c.regs.A, rotateRight, true)
		c.regs.Flags.Zero = false
		return 1, nil
	}

	return 0, &cpuerr.UnknownOpcode{PC: c.regs.PC - 1, Opcode: opcode}
}

func (c *CPU) execLDRRnn(pair uint8) (int, error) {
	nn, err := c.nextWord()
	if err != nil {
		return 0, err
	}
	c.setR16(pair, nn)
	return 3, nil
}

func (c *CPU) execIncRR(pair uint8) (int, error) {
	c.setR16(pair, c.getR16(pair)+1)
	return 2, nil
}

func (c *CPU) execDecRR(pair uint8) (int, error) {
	c.setR16(pair, c.getR16(pair)-1)
	return 2, nil
}

func (c *CPU) execAddHLRR(pair uint8) (int, error) {
	c.regs.SetHL(c.add16(c.regs.HL(), c.getR16(pair)))
	return 2, nil
}

func (c *CPU) execLDrn(index uint8) (int, error) {
	n, err := c.nextByte()
	if err != nil {
		return 0, err
	}
	if err := c.setR8(index, n); err != nil {
		return 0, err
	}
	if index == r8HL {
		return 3, nil
	}
	return 2, nil
}

func (c *CPU) execIncR(index uint8) (int, error) {
	v, err := c.getR8(index)
	if err != nil {
		return 0, err
	}
	if err := c.setR8(index, c.inc8(v)); err != nil {
		return 0, err
	}
	if index == r8HL {
		return 3, nil
	}
	return 1, nil
}

func (c *CPU) execDecR(index uint8) (int, error) {
	v, err := c.getR8(index)
	if err != nil {
		return 0, err
	}
	if err := c.setR8(index, c.dec8(v)); err != nil {
		return 0, err
	}
	if index == r8HL {
		return 3, nil
	}
	return 1, nil
}

func (c *CPU) execLDr1r2(dst, src uint8) (int, error) {
	v, err := c.getR8(src)
	if err != nil {
		return 0, err
	}
	if err := c.setR8(dst, v); err != nil {
		return 0, err
	}
	if dst == r8HL || src == r8HL {
		return 2, nil
	}
	return 1, nil
}

func (c *CPU) execAddAR(index uint8) (int, error) {
	v, err := c.getR8(index)
	if err != nil {
		return 0, err
	}
	c.regs.A = c.add8(c.regs.A, v, 0)
	if index == r8HL {
		return 2, nil
	}
	return 1, nil
}

func (c *CPU) execAddAN() (int, error) {
	n, err := c.nextByte()
	if err != nil {
		return 0, err
	}
	c.regs.A = c.add8(c.regs.A, n, 0)
	return 2, nil
}

func (c *CPU) execAdcAR(index uint8) (int, error) {
	v, err := c.getR8(index)
	if err != nil {
		return 0, err
	}
	c.regs.A = c.add8(c.regs.A, v, boolToBit(c.regs.Flags.Carry))
	if index == r8HL {
		return 2, nil
	}
	return 1, nil
}

func (c *CPU) execAdcAN() (int, error) {
	n, err := c.nextByte()
	if err != nil {
		return 0, err
	}
	c.regs.A = c.add8(c.regs.A, n, boolToBit(c.regs.Flags.Carry))
	return 2, nil
}

// execLDIndirectWriteA implements LD (rr),A for rr in {BC,DE,HL+,HL-}; delta
// is applied to HL afterward for the HL+/HL- forms (0 for BC/DE).
func (c *CPU) execLDIndirectWriteA(addr uint16, delta int) (int, error) {
	if err := c.bus.Wb(addr, c.regs.A); err != nil {
		return 0, err
	}
	if delta != 0 {
		c.regs.SetHL(uint16(int32(c.regs.HL()) + int32(delta)))
	}
	return 2, nil
}

func (c *CPU) execLDIndirectReadA(addr uint16, delta int) (int, error) {
	v, err := c.bus.Rb(addr)
	if err != nil {
		return 0, err
	}
	c.regs.A = v
	if delta != 0 {
		c.regs.SetHL(uint16(int32(c.regs.HL()) + int32(delta)))
	}
	return 2, nil
}

// execLDAddrSP implements LD (nn),SP (0x08): the low byte of SP is written
// to nn before the high byte to nn+1.
func (c *CPU) execLDAddrSP() (int, error) {
	nn, err := c.nextWord()
	if err != nil {
		return 0, err
	}
	if err := c.bus.Wb(nn, uint8(c.regs.SP&0xFF)); err != nil {
		return 0, err
	}
	if err := c.bus.Wb(nn+1, uint8(c.regs.SP>>8)); err != nil {
		return 0, err
	}
	return 5, nil
}

// execLDHLSPn implements LD HL,SP+n (0xF8).
func (c *CPU) execLDHLSPn() (int, error) {
	n, err := c.nextByte()
	if err != nil {
		return 0, err
	}
	c.regs.SetHL(c.addSPSigned(c.regs.SP, int8(n)))
	return 3, nil
}

func (c *CPU) execLDHWriteA() (int, error) {
	n, err := c.nextByte()
	if err != nil {
		return 0, err
	}
	if err := c.bus.Wb(0xFF00+uint16(n), c.regs.A); err != nil {
		return 0, err
	}
	return 3, nil
}

func (c *CPU) execLDHReadA() (int, error) {
	n, err := c.nextByte()
	if err != nil {
		return 0, err
	}
	v, err := c.bus.Rb(0xFF00 + uint16(n))
	if err != nil {
		return 0, err
	}
	c.regs.A = v
	return 3, nil
}

func (c *CPU) execLDCWriteA() (int, error) {
	if err := c.bus.Wb(0xFF00+uint16(c.regs.C), c.regs.A); err != nil {
		return 0, err
	}
	return 2, nil
}

func (c *CPU) execLDCReadA() (int, error) {
	v, err := c.bus.Rb(0xFF00 + uint16(c.regs.C))
	if err != nil {
		return 0, err
	}
	c.regs.A = v
	return 2, nil
}

func (c *CPU) execLDAddrNNWriteA() (int, error) {
	nn, err := c.nextWord()
	if err != nil {
		return 0, err
	}
	if err := c.bus.Wb(nn, c.regs.A); err != nil {
		return 0, err
	}
	return 4, nil
}

func (c *CPU) execLDAddrNNReadA() (int, error) {
	nn, err := c.nextWord()
	if err != nil {
		return 0, err
	}
	v, err := c.bus.Rb(nn)
	if err != nil {
		return 0, err
	}
	c.regs.A = v
	return 4, nil
}
