package cpu

import "fmt"

func init() {
	// LD r, r' fills 0x40-0x7F, with 0x76 (LD (HL), (HL)) taken by HALT
	for op := 0x40; op < 0x80; op++ {
		if op == 0x76 {
			continue
		}
		dst, src := uint8(op>>3)&7, uint8(op)&7
		cycles := uint8(4)
		if dst == 6 || src == 6 {
			cycles = 8
		}
		DefineInstruction(uint8(op), fmt.Sprintf("LD %s, %s", registerNames[dst], registerNames[src]), func(c *CPU) uint8 {
			c.writeRegister(dst, c.readRegister(src))
			return cycles
		})
	}

	for r := uint8(0); r < 8; r++ {
		reg := r
		cycles := uint8(8)
		if reg == 6 {
			cycles = 12
		}
		DefineInstruction(reg<<3|0x06, fmt.Sprintf("LD %s, d8", registerNames[reg]), func(c *CPU) uint8 {
			c.writeRegister(reg, c.readOperand())
			return cycles
		})
	}

	for p := uint8(0); p < 4; p++ {
		pair := p
		DefineInstruction(pair<<4|0x01, fmt.Sprintf("LD %s, d16", pairNames[pair]), func(c *CPU) uint8 {
			c.setPairValue(pair, c.readOperand16())
			return 12
		})
	}

	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) uint8 {
		c.bus.Write(c.BC.Uint16(), c.A)
		return 8
	})
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) uint8 {
		c.bus.Write(c.DE.Uint16(), c.A)
		return 8
	})
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) uint8 {
		c.bus.Write(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return 8
	})
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) uint8 {
		c.bus.Write(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return 8
	})
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) uint8 {
		c.A = c.bus.Read(c.BC.Uint16())
		return 8
	})
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) uint8 {
		c.A = c.bus.Read(c.DE.Uint16())
		return 8
	})
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) uint8 {
		c.A = c.bus.Read(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return 8
	})
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) uint8 {
		c.A = c.bus.Read(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return 8
	})
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) uint8 {
		c.bus.Write16(c.readOperand16(), c.SP)
		return 20
	})
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) uint8 {
		c.bus.Write(0xFF00+uint16(c.readOperand()), c.A)
		return 12
	})
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) uint8 {
		c.A = c.bus.Read(0xFF00 + uint16(c.readOperand()))
		return 12
	})
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) uint8 {
		c.bus.Write(0xFF00+uint16(c.C), c.A)
		return 8
	})
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) uint8 {
		c.A = c.bus.Read(0xFF00 + uint16(c.C))
		return 8
	})
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) uint8 {
		c.bus.Write(c.readOperand16(), c.A)
		return 16
	})
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) uint8 {
		c.A = c.bus.Read(c.readOperand16())
		return 16
	})
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU) uint8 {
		c.HL.SetUint16(c.addSPSigned())
		return 12
	})
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) uint8 {
		c.SP = c.HL.Uint16()
		return 8
	})
}
