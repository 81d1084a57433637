package cpu

import "github.com/dmgcore/emu/jeebie/bit"

func (c *CPU) pushStack(r uint16) {
	c.sp--
	c.write(c.sp, bit.Low(r))
	c.sp--
	c.write(c.sp, bit.High(r))
}

func (c *CPU) popStack() uint16 {
	high := c.read(c.sp)
	c.sp++
	low := c.read(c.sp)
	c.sp++

	return bit.Combine(high, low)
}

func (c *CPU) inc(r *uint8) {
	*r++
	value := *r

	c.setFlagToCondition(zeroFlag, value == 0)
	c.setFlagToCondition(halfCarryFlag, (value&0xF) == 0)
	c.resetFlag(subFlag)
}

func (c *CPU) dec(r *uint8) {
	*r--
	value := *r

	c.setFlagToCondition(zeroFlag, value == 0)
	c.setFlagToCondition(halfCarryFlag, (value&0xF) == 0xF)
	c.setFlag(subFlag)
}

// rlc, rl, rrc and rr set Z from the result, except when the operand is A:
// RLCA/RLA/RRCA/RRA always clear Z, and the CB forms on A set it themselves.
func (c *CPU) rlc(r *uint8) {
	value := *r

	c.setFlagToCondition(carryFlag, value > 0x7F)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)

	value = (value << 1) | (value >> 7)
	c.setFlagToCondition(zeroFlag, r != &c.a && value == 0)
	*r = value
}

func (c *CPU) rl(r *uint8) {
	value := *r
	carry := c.flagToBit(carryFlag)

	c.setFlagToCondition(carryFlag, value > 0x7F)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)

	value = (value << 1) | carry
	c.setFlagToCondition(zeroFlag, r != &c.a && value == 0)
	*r = value
}

func (c *CPU) rrc(r *uint8) {
	value := *r

	c.setFlagToCondition(carryFlag, value&1 != 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)

	value = (value >> 1) | ((value & 1) << 7)
	c.setFlagToCondition(zeroFlag, r != &c.a && value == 0)
	*r = value
}

func (c *CPU) rr(r *uint8) {
	value := *r
	carry := c.flagToBit(carryFlag) << 7

	c.setFlagToCondition(carryFlag, value&1 != 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)

	value = (value >> 1) | carry
	c.setFlagToCondition(zeroFlag, r != &c.a && value == 0)
	*r = value
}

// sla shifts the register left by one, shifting a 0 into bit 0 and the old bit 7 into carry.
func (c *CPU) sla(r *uint8) {
	value := *r

	c.setFlagToCondition(carryFlag, value > 0x7F)
	value <<= 1
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
}

// sra shifts the register right by one, preserving bit 7 and setting carry from the old bit 0.
func (c *CPU) sra(r *uint8) {
	value := *r
	msb := value & 0x80

	c.setFlagToCondition(carryFlag, value&1 != 0)
	value = (value >> 1) | msb
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
}

// srl shifts the register right by one, shifting a 0 into bit 7 and the old bit 0 into carry.
func (c *CPU) srl(r *uint8) {
	value := *r

	c.setFlagToCondition(carryFlag, value&1 != 0)
	value >>= 1
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
}

// swap exchanges the upper and lower nibbles of the register.
func (c *CPU) swap(r *uint8) {
	value := *r
	value = (value << 4) | (value >> 4)
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

// daa adjusts register A to valid packed BCD after an add or subtract.
func (c *CPU) daa() {
	a := c.a
	adjust := uint8(0)
	carry := false

	if c.isSetFlag(subFlag) {
		if c.isSetFlag(halfCarryFlag) {
			adjust += 0x06
		}
		if c.isSetFlag(carryFlag) {
			adjust += 0x60
			carry = true
		}
		a -= adjust
	} else {
		if c.isSetFlag(halfCarryFlag) || (a&0xF) > 0x9 {
			adjust += 0x06
		}
		if c.isSetFlag(carryFlag) || a > 0x99 {
			adjust += 0x60
			carry = true
		}
		a += adjust
	}

	c.a = a
	c.setFlagToCondition(zeroFlag, a == 0)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry)
}

// bit tests bit idx of the value, setting zero flag if it's clear.
func (c *CPU) bit(idx uint8, value uint8) {
	c.setFlagToCondition(zeroFlag, value&(1<<idx) == 0)
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
}

// set forces bit idx of the register to 1.
func (c *CPU) set(idx uint8, r *uint8) {
	*r |= 1 << idx
}

// res forces bit idx of the register to 0.
func (c *CPU) res(idx uint8, r *uint8) {
	*r &= ^(uint8(1) << idx)
}

// add sets the result of adding an 8 bit register to A, while setting all relevant flags.
func (c *CPU) addToA(value uint8) {
	a := c.a
	result := a + value

	carry := (uint16(a) + uint16(value)) > 0xFF
	halfCarry := (a&0xF)+(value&0xF) > 0xF

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(carryFlag, carry)
	c.setFlagToCondition(halfCarryFlag, halfCarry)

	c.a = result
}

// addToHL sets the result of adding a 16 bit register to HL, while setting relevant flags.
func (c *CPU) addToHL(reg uint16) {
	hl := bit.Combine(c.h, c.l)
	result := hl + reg

	carry := (uint32(hl) + uint32(reg)) > 0xFFFF
	halfCarry := (hl&0xFFF)+(reg&0xFFF) > 0xFFF

	c.resetFlag(subFlag)
	c.setFlagToCondition(carryFlag, carry)
	c.setFlagToCondition(halfCarryFlag, halfCarry)

	c.h = bit.High(result)
	c.l = bit.Low(result)
}

// sub will subtract the value from register A and set all relevant flags.
func (c *CPU) sub(value uint8) {
	a := c.a
	c.a = a - value

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(carryFlag, a < value)
	c.setFlagToCondition(halfCarryFlag, (int(a)&0xF)-(int(value)&0xF) < 0)
}

// adc adds the value and carry (1 if set, 0 otherwise) to register A.
func (c *CPU) adc(value uint8) {
	a := c.a
	carry := uint8(0)
	if c.isSetFlag(carryFlag) {
		carry = 1
	}

	result := uint16(a) + uint16(value) + uint16(carry)

	c.setFlagToCondition(zeroFlag, uint8(result) == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(carryFlag, result > 0xFF)
	c.setFlagToCondition(halfCarryFlag, (a&0xF)+(value&0xF)+carry > 0xF)

	c.a = uint8(result)
}

// cp compares the value against register A, setting flags as sub would without storing the result.
func (c *CPU) cp(value uint8) {
	a := c.a
	c.sub(value)
	c.a = a
}

// sbc will subtract the value and carry (1 if set, 0 otherwise) from the register A.
func (c *CPU) sbc(value uint8) {
	a := c.a
	carry := 0
	if c.isSetFlag(carryFlag) {
		carry = 1
	}

	result := int(c.a) - int(value) - carry
	c.a = uint8(result)

	c.setFlagToCondition(zeroFlag, result == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(carryFlag, result < 0)
	c.setFlagToCondition(halfCarryFlag, (int(a)&0xF)-(int(value)&0xF)-carry < 0)
}

func (c *CPU) and(value uint8) {
	c.a &= value
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) or(value uint8) {
	c.a |= value
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.resetFlag(carryFlag)
	c.resetFlag(halfCarryFlag)
}

func (c *CPU) xor(value uint8) {
	c.a ^= value
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.resetFlag(carryFlag)
	c.resetFlag(halfCarryFlag)
}

// jr performs a relative jump using the signed immediate byte following the opcode.
func (c *CPU) jr() {
	offset := int8(c.readImmediate())
	c.pc = uint16(int32(c.pc) + int32(offset))
}

// jp performs an absolute jump to the immediate word following the opcode.
func (c *CPU) jp() {
	c.pc = c.readImmediateWord()
}

// call reads the immediate word, pushes the return address and jumps to it.
func (c *CPU) call() {
	target := c.readImmediateWord()
	c.pushStack(c.pc)
	c.pc = target
}

// rst pushes the current pc and jumps to the fixed vector.
func (c *CPU) rst(vector uint16) {
	c.pushStack(c.pc)
	c.pc = vector
}
