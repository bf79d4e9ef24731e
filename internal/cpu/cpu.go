// Package cpu implements the Game Boy's Sharp LR35902 CPU as a table
// driven interpreter. Each call to Step retires exactly one
// instruction and reports the number of clock cycles it consumed, so
// that the caller can advance the rest of the system in lock-step.
package cpu

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is entered by HALT. Without an interrupt controller
	// nothing wakes the CPU, so it idles for the rest of the run.
	ModeHalt
	// ModeStop is entered by STOP.
	ModeStop
)

// Bus is the memory the CPU executes from. Stack operations use the
// 16-bit accessors, which must be little-endian.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Read16(address uint16) uint16
	Write16(address uint16, value uint16)
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// IME is the interrupt master enable flag. It is tracked for
	// EI/DI/RETI, but no interrupts are ever dispatched.
	IME bool

	bus       Bus
	mode      mode
	cycles    uint64
	fault     error
	observers []Observer
}

// NewCPU creates a new CPU instance with the given Bus, which is
// used to read instructions and to read and write memory.
func NewCPU(bus Bus) *CPU {
	c := &CPU{
		Registers: Registers{},
		bus:       bus,
	}
	// create register pairs
	c.BC = &RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L}
	c.AF = &RegisterPair{High: &c.A, Low: &c.F}

	return c
}

// Step executes a single instruction and returns the number of
// clock cycles it took. Decoding an opcode with no defined behaviour
// is fatal: the CPU is left exactly as it was before the fetch, the
// returned error reports the offending byte(s), and every subsequent
// call returns the same error.
func (c *CPU) Step() (uint8, error) {
	if c.fault != nil {
		return 0, c.fault
	}

	if c.mode != ModeNormal {
		c.cycles += 4
		return 4, nil
	}

	pc := c.PC
	opcode := c.readOperand()

	var instruction Instruction
	var prefixed bool
	if opcode == 0xCB {
		prefixed = true
		opcode = c.readOperand()
		instruction = InstructionSetCB[opcode]
	} else {
		instruction = InstructionSet[opcode]
	}

	if instruction.fn == nil {
		c.PC = pc
		c.fault = &UnimplementedOpcodeError{Opcode: opcode, Prefixed: prefixed, PC: pc}
		return 0, c.fault
	}

	cycles := instruction.fn(c)
	c.cycles += uint64(cycles)

	if len(c.observers) > 0 {
		s := c.snapshot(pc, opcode, prefixed, instruction.name, cycles)
		for _, o := range c.observers {
			o(s)
		}
	}

	return cycles, nil
}

// Cycles returns the total number of clock cycles consumed since
// power on.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Halted reports whether the CPU has been stopped by HALT or STOP.
func (c *CPU) Halted() bool {
	return c.mode != ModeNormal
}

// Err returns the decode failure that terminated the CPU, if any.
func (c *CPU) Err() error {
	return c.fault
}

// readOperand reads the byte at PC and advances PC.
func (c *CPU) readOperand() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the little-endian word at PC and advances PC
// past it.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}
