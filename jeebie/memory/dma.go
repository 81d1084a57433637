package memory

// dma models the OAM DMA transfer triggered by writing to 0xFF46. The
// real unit takes one machine cycle to latch the source page before it
// starts copying, then copies a single byte per machine cycle for 160
// machine cycles. MMU.Tick (and everything driving it) works in T-states,
// so tStateAccum buffers the sub-machine-cycle remainder and the transfer
// itself only advances on whole 4 T-state boundaries.
type dma struct {
	active      bool
	starting    bool
	source      uint16
	progress    uint16
	register    byte
	tStateAccum int
}

// start latches the DMA source page; the transfer itself begins on the
// following machine cycle.
func (d *dma) start(value byte) {
	d.register = value
	d.source = uint16(value) << 8
	d.starting = true
	d.progress = 0
}

// tickDMA advances the transfer by the given number of T-states, copying one
// byte from source+progress into OAM per machine cycle (4 T-states).
func (m *MMU) tickDMA(tStates int) {
	d := &m.dma
	d.tStateAccum += tStates
	for d.tStateAccum >= 4 {
		d.tStateAccum -= 4
		m.stepDMACycle()
	}
}

// stepDMACycle advances the transfer by a single machine cycle.
func (m *MMU) stepDMACycle() {
	d := &m.dma
	if d.starting {
		d.starting = false
		d.active = true
		return
	}
	if !d.active {
		return
	}

	m.memory[0xFE00+d.progress] = m.rawRead(d.source + d.progress)
	d.progress++
	if d.progress >= 160 {
		d.active = false
	}
}
