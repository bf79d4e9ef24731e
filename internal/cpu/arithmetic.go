package cpu

import "fmt"

// increment the given value and set the flags accordingly.
//
//	INC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 0x01
	c.setFlags(incremented == 0, false, value&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement the given value and set the flags accordingly.
//
//	DEC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 0x01
	c.setFlags(decremented == 0, true, value&0xF == 0x0, c.isFlagSet(FlagCarry))
	return decremented
}

// add is a helper function for adding two bytes together and
// setting the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(a, b uint8, shouldCarry bool) uint8 {
	newCarry := c.isFlagSet(FlagCarry) && shouldCarry
	sum := int16(a) + int16(b)
	sumHalf := int16(a&0xF) + int16(b&0xF)
	if newCarry {
		sum++
		sumHalf++
	}
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	return uint8(sum)
}

// sub is a helper function for subtracting two bytes together and
// setting the flags accordingly.
//
// Used by:
//
//	SUB A, n
//	SBC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(a, b uint8, shouldCarry bool) uint8 {
	newCarry := c.isFlagSet(FlagCarry) && shouldCarry
	sub := int16(a) - int16(b)
	subHalf := int16(a&0xF) - int16(b&0xF)
	if newCarry {
		sub--
		subHalf--
	}
	c.setFlags(uint8(sub) == 0, true, subHalf < 0, sub < 0)
	return uint8(sub)
}

// addUint16 is a helper function for adding two uint16 values together and
// setting the flags accordingly.
//
// Used by:
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := int32(a) + int32(b)
	c.setFlags(c.isFlagSet(FlagZero), false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
	return uint16(sum)
}

// addSPSigned adds the signed 8-bit immediate value to SP and returns
// the result, with carries computed on the low byte.
//
// Used by:
//
//	ADD SP, e
//	LD HL, SP+e
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	value := c.readOperand()
	result := uint16(int32(c.SP) + int32(int8(value)))
	tmp := c.SP ^ uint16(int8(value)) ^ result
	c.setFlags(false, false, tmp&0x10 == 0x10, tmp&0x100 == 0x100)
	return result
}

func init() {
	for r := uint8(0); r < 8; r++ {
		reg := r
		// INC r / DEC r occupy columns 4 and 5 of the first block
		incCycles := uint8(4)
		if reg == 6 {
			incCycles = 12
		}
		DefineInstruction(reg<<3|0x04, fmt.Sprintf("INC %s", registerNames[reg]), func(c *CPU) uint8 {
			c.writeRegister(reg, c.increment(c.readRegister(reg)))
			return incCycles
		})
		DefineInstruction(reg<<3|0x05, fmt.Sprintf("DEC %s", registerNames[reg]), func(c *CPU) uint8 {
			c.writeRegister(reg, c.decrement(c.readRegister(reg)))
			return incCycles
		})

		// ALU A, r block
		cycles := uint8(4)
		if reg == 6 {
			cycles = 8
		}
		DefineInstruction(0x80|reg, fmt.Sprintf("ADD A, %s", registerNames[reg]), func(c *CPU) uint8 {
			c.A = c.add(c.A, c.readRegister(reg), false)
			return cycles
		})
		DefineInstruction(0x88|reg, fmt.Sprintf("ADC A, %s", registerNames[reg]), func(c *CPU) uint8 {
			c.A = c.add(c.A, c.readRegister(reg), true)
			return cycles
		})
		DefineInstruction(0x90|reg, fmt.Sprintf("SUB %s", registerNames[reg]), func(c *CPU) uint8 {
			c.A = c.sub(c.A, c.readRegister(reg), false)
			return cycles
		})
		DefineInstruction(0x98|reg, fmt.Sprintf("SBC A, %s", registerNames[reg]), func(c *CPU) uint8 {
			c.A = c.sub(c.A, c.readRegister(reg), true)
			return cycles
		})
	}

	for p := uint8(0); p < 4; p++ {
		pair := p
		DefineInstruction(pair<<4|0x03, fmt.Sprintf("INC %s", pairNames[pair]), func(c *CPU) uint8 {
			c.setPairValue(pair, c.pairValue(pair)+1)
			return 8
		})
		DefineInstruction(pair<<4|0x0B, fmt.Sprintf("DEC %s", pairNames[pair]), func(c *CPU) uint8 {
			c.setPairValue(pair, c.pairValue(pair)-1)
			return 8
		})
		DefineInstruction(pair<<4|0x09, fmt.Sprintf("ADD HL, %s", pairNames[pair]), func(c *CPU) uint8 {
			c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.pairValue(pair)))
			return 8
		})
	}

	DefineInstruction(0xC6, "ADD A, d8", func(c *CPU) uint8 {
		c.A = c.add(c.A, c.readOperand(), false)
		return 8
	})
	DefineInstruction(0xCE, "ADC A, d8", func(c *CPU) uint8 {
		c.A = c.add(c.A, c.readOperand(), true)
		return 8
	})
	DefineInstruction(0xD6, "SUB d8", func(c *CPU) uint8 {
		c.A = c.sub(c.A, c.readOperand(), false)
		return 8
	})
	DefineInstruction(0xDE, "SBC A, d8", func(c *CPU) uint8 {
		c.A = c.sub(c.A, c.readOperand(), true)
		return 8
	})
	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU) uint8 {
		c.SP = c.addSPSigned()
		return 16
	})
}
