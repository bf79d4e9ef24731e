package cpu

import "fmt"

// UnimplementedOpcodeError is returned by Step when the CPU decodes an
// opcode that has no defined behaviour.
type UnimplementedOpcodeError struct {
	// Opcode is the undefined byte. For prefixed opcodes this is the
	// byte following 0xCB.
	Opcode uint8
	// Prefixed is true when Opcode followed the 0xCB prefix.
	Prefixed bool
	// PC is the address the opcode was fetched from.
	PC uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: unimplemented opcode 0xCB 0x%02X at 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: unimplemented opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}
