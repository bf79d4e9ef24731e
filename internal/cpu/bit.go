package cpu

// testBit tests bit b of n.
//
//	BIT b, n
//	b = 0-7
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, b uint8) {
	c.setFlags(value&(1<<b) == 0, false, true, c.isFlagSet(FlagCarry))
}

// clearBit returns n with bit b reset. No flags are affected.
//
//	RES b, n
func clearBit(value uint8, b uint8) uint8 {
	return value &^ (1 << b)
}

// setBit returns n with bit b set. No flags are affected.
//
//	SET b, n
func setBit(value uint8, b uint8) uint8 {
	return value | 1<<b
}
