package cpu

// swap the upper and lower nibbles of n.
//
//	SWAP n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(value uint8) uint8 {
	c.setFlags(value == 0, false, false, false)
	return value<<4 | value>>4
}
