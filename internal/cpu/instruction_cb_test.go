package cpu

import "testing"

func TestInstruction_CBTiming(t *testing.T) {
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		want := uint8(8)
		if opcode&7 == 6 {
			want = 16
			if opcode>>6 == 1 {
				want = 12
			}
		}
		c, _ := newTestCPU(t, 0xCB, opcode)
		c.HL.SetUint16(0xD000)
		if cycles := mustStep(t, c); cycles != want {
			t.Errorf("%s: expected %d cycles, got %d", InstructionSetCB[opcode].Name(), want, cycles)
		}
		if c.PC != 0xC002 {
			t.Errorf("%s: expected PC=0xC002, got 0x%04X", InstructionSetCB[opcode].Name(), c.PC)
		}
	}
}

func TestInstruction_CBOperations(t *testing.T) {
	tests := []struct {
		name  string
		in    uint8
		carry bool
		want  uint8
		wantF uint8
	}{
		{"RLC B", 0x85, false, 0x0B, 0x10},
		{"RRC B", 0x01, false, 0x80, 0x10},
		{"RL B", 0x80, false, 0x00, 0x90},
		{"RL B", 0x00, true, 0x01, 0x00},
		{"RR B", 0x01, true, 0x80, 0x10},
		{"SLA B", 0xFF, false, 0xFE, 0x10},
		{"SRA B", 0x81, false, 0xC0, 0x10},
		{"SWAP B", 0xF1, true, 0x1F, 0x00},
		{"SWAP B", 0x00, false, 0x00, 0x80},
		{"SRL B", 0x01, false, 0x00, 0x90},
		{"RES 7, B", 0xFF, true, 0x7F, 0x10},
		{"SET 0, B", 0x00, false, 0x01, 0x00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opcode := findCB(t, tt.name)
			c, _ := newTestCPU(t, 0xCB, opcode)
			c.B = tt.in
			c.F = flagByte(false, false, false, tt.carry)
			mustStep(t, c)
			if c.B != tt.want || c.F != tt.wantF {
				t.Errorf("expected B=0x%02X F=0x%02X, got B=0x%02X F=0x%02X", tt.want, tt.wantF, c.B, c.F)
			}
		})
	}
}

func TestInstruction_TestBit(t *testing.T) {
	for b := uint8(0); b < 8; b++ {
		for _, set := range []bool{false, true} {
			c, m := newTestCPU(t, 0xCB, 0x46|b<<3)
			c.HL.SetUint16(0xD000)
			if set {
				m.Write(0xD000, 1<<b)
			}
			c.F = flagByte(false, true, false, true)
			mustStep(t, c)
			if c.F != flagByte(!set, false, true, true) {
				t.Errorf("BIT %d set=%v: unexpected flags 0x%02X", b, set, c.F)
			}
		}
	}
}

func TestInstruction_RotateAccumulator(t *testing.T) {
	// the accumulator rotates reset Z even when the result is zero
	c, _ := newTestCPU(t, 0x17)
	c.A = 0x80
	mustStep(t, c)
	if c.A != 0x00 || c.F != 0x10 {
		t.Errorf("expected A=0x00 F=0x10, got A=0x%02X F=0x%02X", c.A, c.F)
	}

	c, _ = newTestCPU(t, 0x1F)
	c.A = 0x02
	c.F = 0x10
	mustStep(t, c)
	if c.A != 0x81 || c.F != 0x00 {
		t.Errorf("expected A=0x81 F=0x00, got A=0x%02X F=0x%02X", c.A, c.F)
	}
}

func findCB(t *testing.T, name string) uint8 {
	t.Helper()
	for i, instruction := range InstructionSetCB {
		if instruction.Name() == name {
			return uint8(i)
		}
	}
	t.Fatalf("no CB instruction named %s", name)
	return 0
}
