package cpu

import "testing"

func flagByte(z, n, h, c bool) uint8 {
	var f uint8
	if z {
		f |= 0x80
	}
	if n {
		f |= 0x40
	}
	if h {
		f |= 0x20
	}
	if c {
		f |= 0x10
	}
	return f
}

// aluReference computes A and F for the register forms of the ALU
// block with operands a, b and an incoming carry.
type aluReference func(a, b int, carry int) (uint8, uint8)

var aluTests = []struct {
	name   string
	opcode uint8
	ref    aluReference
}{
	{"ADD A, B", 0x80, func(a, b, _ int) (uint8, uint8) {
		r := a + b
		return uint8(r), flagByte(uint8(r) == 0, false, a&0xF+b&0xF > 0xF, r > 0xFF)
	}},
	{"ADC A, B", 0x88, func(a, b, cy int) (uint8, uint8) {
		r := a + b + cy
		return uint8(r), flagByte(uint8(r) == 0, false, a&0xF+b&0xF+cy > 0xF, r > 0xFF)
	}},
	{"SUB B", 0x90, func(a, b, _ int) (uint8, uint8) {
		r := a - b
		return uint8(r), flagByte(uint8(r) == 0, true, a&0xF < b&0xF, a < b)
	}},
	{"SBC A, B", 0x98, func(a, b, cy int) (uint8, uint8) {
		r := a - b - cy
		return uint8(r), flagByte(uint8(r) == 0, true, a&0xF-b&0xF-cy < 0, r < 0)
	}},
	{"AND B", 0xA0, func(a, b, _ int) (uint8, uint8) {
		r := uint8(a & b)
		return r, flagByte(r == 0, false, true, false)
	}},
	{"XOR B", 0xA8, func(a, b, _ int) (uint8, uint8) {
		r := uint8(a ^ b)
		return r, flagByte(r == 0, false, false, false)
	}},
	{"OR B", 0xB0, func(a, b, _ int) (uint8, uint8) {
		r := uint8(a | b)
		return r, flagByte(r == 0, false, false, false)
	}},
	{"CP B", 0xB8, func(a, b, _ int) (uint8, uint8) {
		return uint8(a), flagByte(a == b, true, a&0xF < b&0xF, a < b)
	}},
}

func TestInstruction_ALUFlags(t *testing.T) {
	c := NewCPU(nil)
	for _, tt := range aluTests {
		t.Run(tt.name, func(t *testing.T) {
			instruction := InstructionSet[tt.opcode]
			if instruction.Name() != tt.name {
				t.Fatalf("expected 0x%02X to be %s, got %s", tt.opcode, tt.name, instruction.Name())
			}
			for carry := 0; carry < 2; carry++ {
				for a := 0; a < 256; a++ {
					for b := 0; b < 256; b++ {
						c.A, c.B = uint8(a), uint8(b)
						c.F = flagByte(false, false, false, carry == 1)

						if cycles := instruction.fn(c); cycles != 4 {
							t.Fatalf("expected 4 cycles, got %d", cycles)
						}

						wantA, wantF := tt.ref(a, b, carry)
						if c.A != wantA || c.F != wantF {
							t.Fatalf("a=0x%02X b=0x%02X carry=%d: expected A=0x%02X F=0x%02X, got A=0x%02X F=0x%02X",
								a, b, carry, wantA, wantF, c.A, c.F)
						}
					}
				}
			}
		})
	}
}

func TestInstruction_ALUImmediate(t *testing.T) {
	tests := []struct {
		opcode uint8
		a, n   uint8
		wantA  uint8
		wantF  uint8
	}{
		{0xC6, 0x3A, 0xC6, 0x00, 0xB0}, // ADD A, d8
		{0xD6, 0x3E, 0x3E, 0x00, 0xC0}, // SUB d8
		{0xE6, 0x5A, 0x3F, 0x1A, 0x20}, // AND d8
		{0xEE, 0xFF, 0xFF, 0x00, 0x80}, // XOR d8
		{0xF6, 0x00, 0x00, 0x00, 0x80}, // OR d8
		{0xFE, 0x3C, 0x40, 0x3C, 0x50}, // CP d8
	}
	for _, tt := range tests {
		t.Run(InstructionSet[tt.opcode].Name(), func(t *testing.T) {
			c, _ := newTestCPU(t, tt.opcode, tt.n)
			c.A = tt.a
			if cycles := mustStep(t, c); cycles != 8 {
				t.Errorf("expected 8 cycles, got %d", cycles)
			}
			if c.A != tt.wantA || c.F != tt.wantF {
				t.Errorf("expected A=0x%02X F=0x%02X, got A=0x%02X F=0x%02X", tt.wantA, tt.wantF, c.A, c.F)
			}
		})
	}
}

func TestInstruction_DAA(t *testing.T) {
	tests := []struct {
		name     string
		a, b     uint8
		subtract bool
		want     uint8
		carry    bool
	}{
		{"15+27", 0x15, 0x27, false, 0x42, false},
		{"99+01", 0x99, 0x01, false, 0x00, true},
		{"50+50", 0x50, 0x50, false, 0x00, true},
		{"42-15", 0x42, 0x15, true, 0x27, false},
		{"00-01", 0x00, 0x01, true, 0x99, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := uint8(0x80) // ADD A, B
			if tt.subtract {
				op = 0x90 // SUB B
			}
			c, _ := newTestCPU(t, op, 0x27)
			c.A, c.B = tt.a, tt.b
			mustStep(t, c)
			mustStep(t, c)
			if c.A != tt.want {
				t.Errorf("expected A=0x%02X, got 0x%02X", tt.want, c.A)
			}
			if c.isFlagSet(FlagCarry) != tt.carry {
				t.Errorf("expected carry=%v", tt.carry)
			}
			if c.isFlagSet(FlagZero) != (tt.want == 0) {
				t.Errorf("expected zero flag to follow A")
			}
			if c.isFlagSet(FlagHalfCarry) {
				t.Errorf("expected half carry to be reset")
			}
		})
	}
}

func TestInstruction_ComplementAndCarry(t *testing.T) {
	c, _ := newTestCPU(t, 0x2F, 0x37, 0x3F)
	c.A = 0x35
	c.F = flagByte(true, false, false, false)

	mustStep(t, c) // CPL
	if c.A != 0xCA || c.F != flagByte(true, true, true, false) {
		t.Errorf("CPL: expected A=0xCA with Z N H, got A=0x%02X F=0x%02X", c.A, c.F)
	}
	mustStep(t, c) // SCF
	if c.F != flagByte(true, false, false, true) {
		t.Errorf("SCF: unexpected flags 0x%02X", c.F)
	}
	mustStep(t, c) // CCF
	if c.F != flagByte(true, false, false, false) {
		t.Errorf("CCF: unexpected flags 0x%02X", c.F)
	}
}
