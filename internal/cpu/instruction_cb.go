package cpu

import "fmt"

// cbOperations are the rotate, shift and swap operations occupying
// 0x00-0x3F of the CB table, in opcode order.
var cbOperations = [8]struct {
	name string
	fn   func(*CPU, uint8) uint8
}{
	{"RLC", (*CPU).rotateLeft},
	{"RRC", (*CPU).rotateRight},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftIntoCarry},
	{"SRA", (*CPU).shiftRightIntoCarry},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

// every CB opcode encodes its operand in bits 0-2 and either an
// operation or a bit index in bits 3-5. Cycle counts include the
// prefix fetch.
func init() {
	for op := 0; op < 256; op++ {
		opcode := uint8(op)
		reg := opcode & 7
		y := opcode >> 3 & 7
		cycles := uint8(8)
		if reg == 6 {
			cycles = 16
		}

		switch opcode >> 6 {
		case 0:
			operation := cbOperations[y]
			DefineInstructionCB(opcode, fmt.Sprintf("%s %s", operation.name, registerNames[reg]), func(c *CPU) uint8 {
				c.writeRegister(reg, operation.fn(c, c.readRegister(reg)))
				return cycles
			})
		case 1:
			if reg == 6 {
				// BIT only reads (HL)
				cycles = 12
			}
			DefineInstructionCB(opcode, fmt.Sprintf("BIT %d, %s", y, registerNames[reg]), func(c *CPU) uint8 {
				c.testBit(c.readRegister(reg), y)
				return cycles
			})
		case 2:
			DefineInstructionCB(opcode, fmt.Sprintf("RES %d, %s", y, registerNames[reg]), func(c *CPU) uint8 {
				c.writeRegister(reg, clearBit(c.readRegister(reg), y))
				return cycles
			})
		case 3:
			DefineInstructionCB(opcode, fmt.Sprintf("SET %d, %s", y, registerNames[reg]), func(c *CPU) uint8 {
				c.writeRegister(reg, setBit(c.readRegister(reg), y))
				return cycles
			})
		}
	}
}
