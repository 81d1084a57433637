package cpu

import "github.com/dmgcore/emu/jeebie/addr"

// Bus is the memory-mapped interface the CPU needs to fetch, read and
// write, and to let the rest of the system advance alongside it.
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
	Tick(cycles int)
}

// Flag identifies a bit in the F register.
type Flag uint8

const (
	zeroFlag      Flag = 1 << 7
	subFlag       Flag = 1 << 6
	halfCarryFlag Flag = 1 << 5
	carryFlag     Flag = 1 << 4
)

// CPU emulates the Sharp SM83 core: registers, flags and the
// fetch-decode-execute-interrupt loop.
type CPU struct {
	bus Bus

	a, b, c, d, e, h, l, f uint8
	sp, pc                 uint16
	currentOpcode          uint16

	interruptsEnabled bool
	eiPending         bool
	halted            bool
	haltBug           bool
	stopped           bool

	cycles uint64
	ticked int // T-states already ticked to the bus during the in-flight instruction
}

// New returns a CPU in the canonical post-boot-ROM state, as if the
// boot sequence had already run and control had just passed to the
// cartridge entry point at 0x100.
func New(bus Bus) *CPU {
	return &CPU{
		bus: bus,
		a:   0x01,
		f:   0xB0,
		b:   0x00,
		c:   0x13,
		d:   0x00,
		e:   0xD8,
		h:   0x01,
		l:   0x4D,
		sp:  0xFFFE,
		pc:  0x100,
	}
}

func (c *CPU) setFlag(flag Flag) {
	c.f |= uint8(flag)
}

func (c *CPU) resetFlag(flag Flag) {
	c.f &= ^uint8(flag)
}

func (c *CPU) setFlagToCondition(flag Flag, condition bool) {
	if condition {
		c.setFlag(flag)
	} else {
		c.resetFlag(flag)
	}
}

func (c *CPU) isSetFlag(flag Flag) bool {
	return c.f&uint8(flag) != 0
}

// flagToBit returns 1 if the flag is set, 0 otherwise.
func (c *CPU) flagToBit(flag Flag) uint8 {
	if c.isSetFlag(flag) {
		return 1
	}
	return 0
}

// tick advances the bus - and everything wired to it, i.e. timer, serial,
// APU, DMA and PPU - by mCycles machine cycles, folding the same span into
// the CPU's own cycle counter and the in-flight instruction's tally.
func (c *CPU) tick(mCycles int) {
	if mCycles <= 0 {
		return
	}
	t := mCycles * 4
	c.cycles += uint64(t)
	c.ticked += t
	c.bus.Tick(t)
}

// tickRemainder makes up whatever part of an instruction's total T-state
// cost wasn't already ticked by read/write calls made during its
// execution - the internal-only cycles (ALU delay, branch redirects,
// interrupt dispatch housekeeping) that never touch the bus.
func (c *CPU) tickRemainder(total int) {
	remainder := total - c.ticked
	if remainder > 0 {
		c.tick(remainder / 4)
	}
}

// read performs a bus read and ticks one machine cycle for it, the way
// real hardware does: every access to the address bus advances the rest
// of the system - DMA, timer, PPU - by exactly one cycle alongside it.
func (c *CPU) read(address uint16) uint8 {
	value := c.bus.Read(address)
	c.tick(1)
	return value
}

// write performs a bus write and ticks one machine cycle for it.
func (c *CPU) write(address uint16, value uint8) {
	c.bus.Write(address, value)
	c.tick(1)
}

// readImmediate reads the byte at pc and advances past it.
func (c *CPU) readImmediate() uint8 {
	value := c.read(c.pc)
	c.pc++
	return value
}

// readImmediateWord reads the little-endian word at pc and advances past it.
func (c *CPU) readImmediateWord() uint16 {
	low := c.readImmediate()
	high := c.readImmediate()
	return uint16(high)<<8 | uint16(low)
}

// readSignedImmediate reads the byte at pc as a two's complement value
// and advances past it.
func (c *CPU) readSignedImmediate() int8 {
	return int8(c.readImmediate())
}

// Tick executes a single instruction (or services HALT/STOP) and
// returns the number of cycles it took. Every bus access the
// instruction makes ticks the rest of the system - timer, serial, APU,
// DMA and PPU - by one machine cycle as it happens; any cycles the
// instruction spends on internal work with no bus access (ALU delay,
// branch redirects, interrupt dispatch housekeeping) are ticked as a
// single catch-up span right after, via tickRemainder.
func (c *CPU) Tick() int {
	cycles := c.step()

	if c.eiPending {
		c.eiPending = false
		c.interruptsEnabled = true
	}

	cyclesBeforeDispatch := c.cycles
	pending := c.handleInterrupts()
	if c.halted && pending {
		c.halted = false
		if !c.interruptsEnabled {
			c.haltBug = true
		}
	}
	cycles += int(c.cycles - cyclesBeforeDispatch)

	return cycles
}

// step decodes and executes the next instruction, or spins in place
// while halted/stopped.
func (c *CPU) step() int {
	c.ticked = 0

	if c.stopped {
		c.tick(1)
		return c.ticked
	}

	if c.halted {
		c.tick(1)
		return c.ticked
	}

	opcode := Decode(c)

	if c.currentOpcode >= 0xCB00 {
		c.pc += 2
	} else {
		c.pc++
	}

	if c.haltBug {
		c.haltBug = false
		c.pc--
	}

	total := opcode(c)
	c.tickRemainder(total)
	return total
}

// handleInterrupts checks for a pending, enabled interrupt and
// dispatches it. It returns true whenever an interrupt is pending in
// IF & IE, even if IME is off and nothing was actually serviced - the
// caller uses that to wake a halted CPU without clearing the flag.
func (c *CPU) handleInterrupts() bool {
	// Unticked: inspecting latched IF/IE is internal CPU housekeeping
	// done between instructions, not a discrete bus cycle of its own.
	requested := c.bus.Read(addr.IF)
	enabled := c.bus.Read(addr.IE)
	pending := requested & enabled & 0x1F

	if pending == 0 {
		return false
	}

	if !c.interruptsEnabled {
		return true
	}

	var bit uint8
	var vector uint16
	switch {
	case pending&uint8(addr.VBlankInterrupt) != 0:
		bit, vector = 0, 0x40
	case pending&uint8(addr.LCDSTATInterrupt) != 0:
		bit, vector = 1, 0x48
	case pending&uint8(addr.TimerInterrupt) != 0:
		bit, vector = 2, 0x50
	case pending&uint8(addr.SerialInterrupt) != 0:
		bit, vector = 3, 0x58
	case pending&uint8(addr.JoypadInterrupt) != 0:
		bit, vector = 4, 0x60
	}

	c.interruptsEnabled = false

	c.ticked = 0
	c.write(addr.IF, requested & ^(uint8(1)<<bit))
	c.pushStack(c.pc)
	c.pc = vector
	c.tickRemainder(20)

	return true
}
