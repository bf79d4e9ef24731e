package cpu

// rotateLeft rotates n left by 1 bit, with bit 7 moving to bit 0 and
// into the carry flag.
//
//	RLC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeft(value uint8) uint8 {
	carry := value >> 7
	rotated := value<<1 | carry
	c.setFlags(rotated == 0, false, false, carry == 1)
	return rotated
}

// rotateLeftThroughCarry rotates n left through the carry flag.
//
//	RL n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(value uint8) uint8 {
	var oldCarry uint8
	if c.isFlagSet(FlagCarry) {
		oldCarry = 1
	}
	rotated := value<<1 | oldCarry
	c.setFlags(rotated == 0, false, false, value&0x80 != 0)
	return rotated
}

// rotateRight rotates n right by 1 bit, with bit 0 moving to bit 7 and
// into the carry flag.
//
//	RRC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRight(value uint8) uint8 {
	carry := value & 1
	rotated := value>>1 | carry<<7
	c.setFlags(rotated == 0, false, false, carry == 1)
	return rotated
}

// rotateRightThroughCarry rotates n right through the carry flag.
//
//	RR n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(value uint8) uint8 {
	var oldCarry uint8
	if c.isFlagSet(FlagCarry) {
		oldCarry = 0x80
	}
	rotated := value>>1 | oldCarry
	c.setFlags(rotated == 0, false, false, value&1 != 0)
	return rotated
}

func init() {
	// the accumulator forms always reset Z
	DefineInstruction(0x07, "RLCA", func(c *CPU) uint8 {
		c.A = c.rotateLeft(c.A)
		c.clearFlag(FlagZero)
		return 4
	})
	DefineInstruction(0x0F, "RRCA", func(c *CPU) uint8 {
		c.A = c.rotateRight(c.A)
		c.clearFlag(FlagZero)
		return 4
	})
	DefineInstruction(0x17, "RLA", func(c *CPU) uint8 {
		c.A = c.rotateLeftThroughCarry(c.A)
		c.clearFlag(FlagZero)
		return 4
	})
	DefineInstruction(0x1F, "RRA", func(c *CPU) uint8 {
		c.A = c.rotateRightThroughCarry(c.A)
		c.clearFlag(FlagZero)
		return 4
	})
}
