package cpu

import "testing"

func TestInstruction_CallReturn(t *testing.T) {
	c, m := newTestCPU(t, 0xCD, 0x00, 0xD0)
	m.Write(0xD000, 0xC9)

	if cycles := mustStep(t, c); cycles != 24 {
		t.Errorf("expected CALL to take 24 cycles, got %d", cycles)
	}
	if c.PC != 0xD000 {
		t.Errorf("expected PC to be 0xD000, got 0x%04X", c.PC)
	}
	if c.SP != 0xFFFC {
		t.Errorf("expected SP to be 0xFFFC, got 0x%04X", c.SP)
	}
	if m.Read16(0xFFFC) != 0xC003 {
		t.Errorf("expected return address 0xC003 on the stack, got 0x%04X", m.Read16(0xFFFC))
	}

	if cycles := mustStep(t, c); cycles != 16 {
		t.Errorf("expected RET to take 16 cycles, got %d", cycles)
	}
	if c.PC != 0xC003 || c.SP != 0xFFFE {
		t.Errorf("expected PC=0xC003 SP=0xFFFE, got PC=0x%04X SP=0x%04X", c.PC, c.SP)
	}
}

func TestInstruction_Restart(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		c, m := newTestCPU(t, 0xC7|i<<3)
		if cycles := mustStep(t, c); cycles != 16 {
			t.Errorf("expected 16 cycles, got %d", cycles)
		}
		if c.PC != uint16(i)*8 {
			t.Errorf("expected PC to be 0x%04X, got 0x%04X", uint16(i)*8, c.PC)
		}
		if m.Read16(c.SP) != 0xC001 {
			t.Errorf("expected return address 0xC001, got 0x%04X", m.Read16(c.SP))
		}
	}
}

func TestInstruction_Reti(t *testing.T) {
	c, m := newTestCPU(t, 0xD9)
	c.SP = 0xFFFC
	m.Write16(0xFFFC, 0x1234)
	mustStep(t, c)
	if c.PC != 0x1234 || c.SP != 0xFFFE || !c.IME {
		t.Errorf("expected PC=0x1234 SP=0xFFFE IME, got PC=0x%04X SP=0x%04X IME=%v", c.PC, c.SP, c.IME)
	}
}

func TestInstruction_PushPop(t *testing.T) {
	c, m := newTestCPU(t, 0xC5, 0xF1, 0xD5, 0xE1)
	c.BC.SetUint16(0x12FF)
	c.DE.SetUint16(0xBEEF)

	if cycles := mustStep(t, c); cycles != 16 {
		t.Errorf("expected PUSH to take 16 cycles, got %d", cycles)
	}
	if m.Read(0xFFFD) != 0x12 || m.Read(0xFFFC) != 0xFF {
		t.Errorf("expected BC to be pushed high byte first")
	}
	if cycles := mustStep(t, c); cycles != 12 {
		t.Errorf("expected POP to take 12 cycles, got %d", cycles)
	}
	if c.A != 0x12 || c.F != 0xF0 {
		t.Errorf("expected POP AF to mask the low nibble, got A=0x%02X F=0x%02X", c.A, c.F)
	}
	mustStep(t, c)
	mustStep(t, c)
	if c.HL.Uint16() != 0xBEEF || c.SP != 0xFFFE {
		t.Errorf("expected HL=0xBEEF SP=0xFFFE, got HL=0x%04X SP=0x%04X", c.HL.Uint16(), c.SP)
	}
}

func TestInstruction_JumpRelative(t *testing.T) {
	c, _ := newTestCPU(t, 0x18, 0xFE)
	mustStep(t, c)
	if c.PC != 0xC000 {
		t.Errorf("expected JR -2 to loop, got PC=0x%04X", c.PC)
	}

	c, _ = newTestCPU(t, 0x18, 0x7F)
	mustStep(t, c)
	if c.PC != 0xC081 {
		t.Errorf("expected PC=0xC081, got 0x%04X", c.PC)
	}
}

func TestInstruction_Timing(t *testing.T) {
	z := flagByte(true, false, false, false)
	cy := flagByte(false, false, false, true)
	tests := []struct {
		name    string
		program []uint8
		f       uint8
		cycles  uint8
		pc      uint16
	}{
		{"JR taken", []uint8{0x18, 0x02}, 0, 12, 0xC004},
		{"JR NZ taken", []uint8{0x20, 0x02}, 0, 12, 0xC004},
		{"JR NZ not taken", []uint8{0x20, 0x02}, z, 8, 0xC002},
		{"JR Z taken", []uint8{0x28, 0x02}, z, 12, 0xC004},
		{"JR NC not taken", []uint8{0x30, 0x02}, cy, 8, 0xC002},
		{"JR C taken", []uint8{0x38, 0x02}, cy, 12, 0xC004},
		{"JP", []uint8{0xC3, 0x00, 0xD0}, 0, 16, 0xD000},
		{"JP NZ not taken", []uint8{0xC2, 0x00, 0xD0}, z, 12, 0xC003},
		{"JP Z taken", []uint8{0xCA, 0x00, 0xD0}, z, 16, 0xD000},
		{"JP C not taken", []uint8{0xDA, 0x00, 0xD0}, 0, 12, 0xC003},
		{"JP HL", []uint8{0xE9}, 0, 4, 0x0000},
		{"CALL NZ taken", []uint8{0xC4, 0x00, 0xD0}, 0, 24, 0xD000},
		{"CALL Z not taken", []uint8{0xCC, 0x00, 0xD0}, 0, 12, 0xC003},
		{"CALL NC taken", []uint8{0xD4, 0x00, 0xD0}, 0, 24, 0xD000},
		{"CALL C not taken", []uint8{0xDC, 0x00, 0xD0}, 0, 12, 0xC003},
		{"RET NZ not taken", []uint8{0xC0}, z, 8, 0xC001},
		{"RET Z taken", []uint8{0xC8}, z, 20, 0x0000},
		{"RET C taken", []uint8{0xD8}, cy, 20, 0x0000},
		{"LD (a16), SP", []uint8{0x08, 0x00, 0xD0}, 0, 20, 0xC003},
		{"LD BC, d16", []uint8{0x01, 0x34, 0x12}, 0, 12, 0xC003},
		{"LD (HL), d8", []uint8{0x36, 0x00}, 0, 12, 0xC002},
		{"LD B, (HL)", []uint8{0x46}, 0, 8, 0xC001},
		{"LD B, C", []uint8{0x41}, 0, 4, 0xC001},
		{"LDH (a8), A", []uint8{0xE0, 0x80}, 0, 12, 0xC002},
		{"LD (a16), A", []uint8{0xEA, 0x00, 0xD0}, 0, 16, 0xC003},
		{"ADD A, (HL)", []uint8{0x86}, 0, 8, 0xC001},
		{"RLCA", []uint8{0x07}, 0, 4, 0xC001},
		{"LD SP, HL", []uint8{0xF9}, 0, 8, 0xC001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(t, tt.program...)
			c.HL.SetUint16(0x0000)
			c.F = tt.f
			if cycles := mustStep(t, c); cycles != tt.cycles {
				t.Errorf("expected %d cycles, got %d", tt.cycles, cycles)
			}
			if c.PC != tt.pc {
				t.Errorf("expected PC=0x%04X, got 0x%04X", tt.pc, c.PC)
			}
		})
	}
}
