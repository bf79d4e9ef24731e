package cpu

import "fmt"

// Observer is called after every retired instruction with a snapshot
// of the CPU.
type Observer func(State)

// State is a snapshot of the CPU taken after an instruction retires.
type State struct {
	// PC is the address the instruction was fetched from.
	PC       uint16
	Opcode   uint8
	Prefixed bool
	Name     string
	// Cycles is the cost of this instruction, Total the running
	// total including it.
	Cycles uint8
	Total  uint64

	A, F, B, C, D, E, H, L uint8
	SP                     uint16
	NextPC                 uint16

	Zero, Subtract, HalfCarry, Carry bool
}

// Observe registers an Observer to be called after every retired
// instruction.
func (c *CPU) Observe(o Observer) {
	c.observers = append(c.observers, o)
}

// Snapshot returns the current state of the registers.
func (c *CPU) Snapshot() State {
	return c.snapshot(c.PC, 0, false, "", 0)
}

func (c *CPU) snapshot(pc uint16, opcode uint8, prefixed bool, name string, cycles uint8) State {
	return State{
		PC:        pc,
		Opcode:    opcode,
		Prefixed:  prefixed,
		Name:      name,
		Cycles:    cycles,
		Total:     c.cycles,
		A:         c.A,
		F:         c.F,
		B:         c.B,
		C:         c.C,
		D:         c.D,
		E:         c.E,
		H:         c.H,
		L:         c.L,
		SP:        c.SP,
		NextPC:    c.PC,
		Zero:      c.isFlagSet(FlagZero),
		Subtract:  c.isFlagSet(FlagSubtract),
		HalfCarry: c.isFlagSet(FlagHalfCarry),
		Carry:     c.isFlagSet(FlagCarry),
	}
}

func (s State) String() string {
	op := fmt.Sprintf("%02X   ", s.Opcode)
	if s.Prefixed {
		op = fmt.Sprintf("CB %02X", s.Opcode)
	}
	return fmt.Sprintf("%04X %s %-14s AF:%02X%02X BC:%02X%02X DE:%02X%02X HL:%02X%02X SP:%04X Z:%d N:%d H:%d C:%d (%d cycles)",
		s.PC, op, s.Name, s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.SP,
		b2i(s.Zero), b2i(s.Subtract), b2i(s.HalfCarry), b2i(s.Carry), s.Cycles)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
