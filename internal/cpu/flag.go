package cpu

import "github.com/thelolagemann/pocketboy/internal/types"

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// setFlags sets all four flags at once. The lower nibble of F is
// always cleared.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	var f uint8
	if zero {
		f |= types.Bit7
	}
	if subtract {
		f |= types.Bit6
	}
	if halfCarry {
		f |= types.Bit5
	}
	if carry {
		f |= types.Bit4
	}
	c.F = f
}

// setFlag sets the given flag.
func (c *CPU) setFlag(flag Flag) {
	c.F |= 1 << flag
}

// clearFlag clears the given flag.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= 1 << flag
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// conditionNames maps the 2-bit condition encoded in conditional
// jumps, calls and returns.
var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

// condition evaluates the given branch condition against the flags.
func (c *CPU) condition(cc uint8) bool {
	switch cc {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	}
	return c.isFlagSet(FlagCarry)
}
