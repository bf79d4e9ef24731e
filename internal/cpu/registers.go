package cpu

import "github.com/thelolagemann/pocketboy/internal/types"

// Register is an 8-bit CPU register.
type Register = types.Register

// RegisterPair is two Registers addressed as a 16-bit value.
type RegisterPair = types.RegisterPair

// Registers represents the GB CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// registerNames maps the 3-bit register index encoded in opcodes to
// its name. Index 6 addresses memory at HL.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// registerPointer returns a Register pointer for the given index.
// Index 6 is not a register, and returns nil.
func (c *CPU) registerPointer(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	return nil
}

// readRegister returns the operand selected by the given index,
// reading memory at HL for index 6.
func (c *CPU) readRegister(index uint8) uint8 {
	if index == 6 {
		return c.bus.Read(c.HL.Uint16())
	}
	return *c.registerPointer(index)
}

// writeRegister stores to the operand selected by the given index,
// writing memory at HL for index 6.
func (c *CPU) writeRegister(index uint8, value uint8) {
	if index == 6 {
		c.bus.Write(c.HL.Uint16(), value)
		return
	}
	*c.registerPointer(index) = value
}

// pairNames maps the 2-bit register pair index to its name, as used
// by the LD/INC/DEC/ADD families.
var pairNames = [4]string{"BC", "DE", "HL", "SP"}

// pairValue returns the value of the register pair selected by the
// given index, where index 3 is SP.
func (c *CPU) pairValue(index uint8) uint16 {
	switch index {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	}
	return c.SP
}

// setPairValue sets the register pair selected by the given index.
func (c *CPU) setPairValue(index uint8, value uint16) {
	switch index {
	case 0:
		c.BC.SetUint16(value)
	case 1:
		c.DE.SetUint16(value)
	case 2:
		c.HL.SetUint16(value)
	default:
		c.SP = value
	}
}
