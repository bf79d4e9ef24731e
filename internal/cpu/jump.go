package cpu

import "fmt"

// pushStack pushes a 16 bit value onto the stack.
func (c *CPU) pushStack(value uint16) {
	c.SP -= 2
	c.bus.Write16(c.SP, value)
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	value := c.bus.Read16(c.SP)
	c.SP += 2
	return value
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.pushStack(c.PC)
	c.PC = address
}

// jumpRelative jumps to the address relative to the current PC.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

// ret pops the return address off the stack into PC.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popStack()
}

var pushPairNames = [4]string{"BC", "DE", "HL", "AF"}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU) uint8 {
		c.jumpRelative(c.readOperand())
		return 12
	})
	DefineInstruction(0xC3, "JP a16", func(c *CPU) uint8 {
		c.PC = c.readOperand16()
		return 16
	})
	DefineInstruction(0xE9, "JP HL", func(c *CPU) uint8 {
		c.PC = c.HL.Uint16()
		return 4
	})
	DefineInstruction(0xCD, "CALL a16", func(c *CPU) uint8 {
		c.call(c.readOperand16())
		return 24
	})
	DefineInstruction(0xC9, "RET", func(c *CPU) uint8 {
		c.ret()
		return 16
	})
	DefineInstruction(0xD9, "RETI", func(c *CPU) uint8 {
		c.ret()
		c.IME = true
		return 16
	})

	for i := uint8(0); i < 4; i++ {
		cc := i
		name := conditionNames[cc]

		DefineInstruction(0x20|cc<<3, fmt.Sprintf("JR %s, r8", name), func(c *CPU) uint8 {
			offset := c.readOperand()
			if c.condition(cc) {
				c.jumpRelative(offset)
				return 12
			}
			return 8
		})
		DefineInstruction(0xC2|cc<<3, fmt.Sprintf("JP %s, a16", name), func(c *CPU) uint8 {
			address := c.readOperand16()
			if c.condition(cc) {
				c.PC = address
				return 16
			}
			return 12
		})
		DefineInstruction(0xC4|cc<<3, fmt.Sprintf("CALL %s, a16", name), func(c *CPU) uint8 {
			address := c.readOperand16()
			if c.condition(cc) {
				c.call(address)
				return 24
			}
			return 12
		})
		DefineInstruction(0xC0|cc<<3, fmt.Sprintf("RET %s", name), func(c *CPU) uint8 {
			if c.condition(cc) {
				c.ret()
				return 20
			}
			return 8
		})
	}

	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		DefineInstruction(0xC7|i<<3, fmt.Sprintf("RST %02XH", vector), func(c *CPU) uint8 {
			c.call(vector)
			return 16
		})
	}

	for i := uint8(0); i < 4; i++ {
		pair := i
		DefineInstruction(0xC5|pair<<4, fmt.Sprintf("PUSH %s", pushPairNames[pair]), func(c *CPU) uint8 {
			if pair == 3 {
				c.pushStack(c.AF.Uint16())
			} else {
				c.pushStack(c.pairValue(pair))
			}
			return 16
		})
		DefineInstruction(0xC1|pair<<4, fmt.Sprintf("POP %s", pushPairNames[pair]), func(c *CPU) uint8 {
			value := c.popStack()
			if pair == 3 {
				// the lower nibble of F is hardwired to 0
				c.AF.SetUint16(value & 0xFFF0)
			} else {
				c.setPairValue(pair, value)
			}
			return 12
		})
	}
}
