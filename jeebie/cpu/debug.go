package cpu

import "fmt"

// The following accessors exist for debug tooling (terminal renderer,
// future disassemblers); normal execution never needs to reach into
// the CPU from outside the package.

func (c *CPU) GetA() uint8 { return c.a }
func (c *CPU) GetB() uint8 { return c.b }
func (c *CPU) GetC() uint8 { return c.c }
func (c *CPU) GetD() uint8 { return c.d }
func (c *CPU) GetE() uint8 { return c.e }
func (c *CPU) GetH() uint8 { return c.h }
func (c *CPU) GetL() uint8 { return c.l }
func (c *CPU) GetF() uint8 { return c.f }

func (c *CPU) GetSP() uint16 { return c.sp }
func (c *CPU) GetPC() uint16 { return c.pc }

func (c *CPU) GetBC() uint16 { return c.getBC() }
func (c *CPU) GetDE() uint16 { return c.getDE() }
func (c *CPU) GetHL() uint16 { return c.getHL() }
func (c *CPU) GetAF() uint16 { return c.getAF() }

func (c *CPU) IsHalted() bool { return c.halted }
func (c *CPU) InterruptsEnabled() bool { return c.interruptsEnabled }

// GetFlagString renders the Z/N/H/C flags as a 4 character string,
// using a dash for cleared flags.
func (c *CPU) GetFlagString() string {
	flag := func(set Flag, ch rune) rune {
		if c.isSetFlag(set) {
			return ch
		}
		return '-'
	}

	return fmt.Sprintf("%c%c%c%c",
		flag(zeroFlag, 'Z'),
		flag(subFlag, 'N'),
		flag(halfCarryFlag, 'H'),
		flag(carryFlag, 'C'),
	)
}
