package cpu

// Instruction is a single entry of an instruction table. fn executes
// the instruction and returns the number of clock cycles it took. A
// zero Instruction is an undefined opcode.
type Instruction struct {
	name string
	fn   func(*CPU) uint8
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Defined reports whether the instruction has behaviour.
func (i Instruction) Defined() bool {
	return i.fn != nil
}

// InstructionSet holds the unprefixed opcodes. 0xCB is decoded by Step
// and never dispatched through this table; the 11 opcodes the
// hardware leaves undefined (0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC,
// 0xED, 0xF4, 0xFC, 0xFD) are left zero.
var InstructionSet [256]Instruction

// InstructionSetCB holds the opcodes following the 0xCB prefix.
var InstructionSetCB [256]Instruction

// DefineInstruction defines the instruction in the InstructionSet,
// with the provided opcode.
func DefineInstruction(opcode uint8, name string, fn func(*CPU) uint8) {
	InstructionSet[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

// DefineInstructionCB defines the instruction in the InstructionSetCB,
// with the provided opcode.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU) uint8) {
	InstructionSetCB[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) uint8 { return 4 })
	DefineInstruction(0x10, "STOP", func(c *CPU) uint8 {
		// the byte following STOP is ignored
		c.PC++
		c.mode = ModeStop
		return 4
	})
	DefineInstruction(0x76, "HALT", func(c *CPU) uint8 {
		c.mode = ModeHalt
		return 4
	})
	DefineInstruction(0x27, "DAA", func(c *CPU) uint8 {
		c.decimalAdjust()
		return 4
	})
	DefineInstruction(0x2F, "CPL", func(c *CPU) uint8 {
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
		return 4
	})
	DefineInstruction(0x37, "SCF", func(c *CPU) uint8 {
		c.setFlags(c.isFlagSet(FlagZero), false, false, true)
		return 4
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU) uint8 {
		c.setFlags(c.isFlagSet(FlagZero), false, false, !c.isFlagSet(FlagCarry))
		return 4
	})
	DefineInstruction(0xF3, "DI", func(c *CPU) uint8 {
		c.IME = false
		return 4
	})
	DefineInstruction(0xFB, "EI", func(c *CPU) uint8 {
		c.IME = true
		return 4
	})
}

// decimalAdjust adjusts A to a valid BCD value following an addition
// or subtraction of two BCD values.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if register A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	var adjust uint8
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
			adjust |= 0x06
		}
		if carry || c.A > 0x99 {
			adjust |= 0x60
			carry = true
		}
		c.A += adjust
	} else {
		if c.isFlagSet(FlagHalfCarry) {
			adjust |= 0x06
		}
		if carry {
			adjust |= 0x60
		}
		c.A -= adjust
	}
	c.setFlags(c.A == 0, c.isFlagSet(FlagSubtract), false, carry)
}
