package cpu

import "fmt"

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register, discarding the result.
//
//	CP n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A-n == 0, true, n&0x0f > c.A&0x0f, n > c.A)
}

func init() {
	for r := uint8(0); r < 8; r++ {
		reg := r
		cycles := uint8(4)
		if reg == 6 {
			cycles = 8
		}
		DefineInstruction(0xA0|reg, fmt.Sprintf("AND %s", registerNames[reg]), func(c *CPU) uint8 {
			c.and(c.readRegister(reg))
			return cycles
		})
		DefineInstruction(0xA8|reg, fmt.Sprintf("XOR %s", registerNames[reg]), func(c *CPU) uint8 {
			c.xor(c.readRegister(reg))
			return cycles
		})
		DefineInstruction(0xB0|reg, fmt.Sprintf("OR %s", registerNames[reg]), func(c *CPU) uint8 {
			c.or(c.readRegister(reg))
			return cycles
		})
		DefineInstruction(0xB8|reg, fmt.Sprintf("CP %s", registerNames[reg]), func(c *CPU) uint8 {
			c.compare(c.readRegister(reg))
			return cycles
		})
	}

	DefineInstruction(0xE6, "AND d8", func(c *CPU) uint8 {
		c.and(c.readOperand())
		return 8
	})
	DefineInstruction(0xEE, "XOR d8", func(c *CPU) uint8 {
		c.xor(c.readOperand())
		return 8
	})
	DefineInstruction(0xF6, "OR d8", func(c *CPU) uint8 {
		c.or(c.readOperand())
		return 8
	})
	DefineInstruction(0xFE, "CP d8", func(c *CPU) uint8 {
		c.compare(c.readOperand())
		return 8
	})
}
