package cpu

// shiftLeftIntoCarry shifts n left into the carry flag, with bit 0
// reset.
//
//	SLA n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftIntoCarry(value uint8) uint8 {
	shifted := value << 1
	c.setFlags(shifted == 0, false, false, value&0x80 != 0)
	return shifted
}

// shiftRightIntoCarry shifts n right into the carry flag, with bit 7
// unchanged.
//
//	SRA n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightIntoCarry(value uint8) uint8 {
	shifted := value>>1 | value&0x80
	c.setFlags(shifted == 0, false, false, value&1 != 0)
	return shifted
}

// shiftRightLogical shifts n right into the carry flag, with bit 7
// reset.
//
//	SRL n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(value uint8) uint8 {
	shifted := value >> 1
	c.setFlags(shifted == 0, false, false, value&1 != 0)
	return shifted
}
