package memory

import "github.com/dmgcore/emu/jeebie/bit"

const titleLength = 11

const (
	entryPointAddress       = 0x100
	logoAddress             = 0x104
	titleAddress            = 0x134
	manufacturerCodeAddress = 0x13F
	cgbFlagAddress          = 0x143
	newLicenseCodeAddress   = 0x144
	sgbFlagAddress          = 0x146
	cartridgeTypeAddress    = 0x147
	romSizeAddress          = 0x148
	ramSizeAddress          = 0x149
	destinationCodeAddress  = 0x14A
	oldLicenseCodeAddress   = 0x14B
	versionNumberAddress    = 0x14C
	headerChecksumAddress   = 0x14D
	globalChecksumAddress   = 0x14E
)

// mbcType identifies which memory bank controller a cartridge uses.
type mbcType uint8

const (
	MBCUnknownType mbcType = iota
	NoMBCType
	MBC1Type
	MBC1MultiType
	MBC2Type
	MBC3Type
	MBC5Type
)

// ramBankCounts maps the cartridge header's RAM size byte (0x149) to a
// count of 8KB banks.
var ramBankCounts = map[uint8]uint8{
	0x00: 0,
	0x01: 1, // unofficial, 2KB in practice; one bank is close enough
	0x02: 1,
	0x03: 4,
	0x04: 16,
	0x05: 8,
}

type Cartridge struct {
	data           []byte
	title          string
	headerChecksum uint16
	globalChecksum uint16
	version        uint8
	cartType       uint8
	romSize        uint8
	ramSize        uint8

	mbcType      mbcType
	hasBattery   bool
	hasRTC       bool
	hasRumble    bool
	ramBankCount uint8
}

// NewCartridge creates an empty cartridge, useful only for debugging purposes.
func NewCartridge() *Cartridge {
	return &Cartridge{
		data:    make([]byte, 0x10000),
		mbcType: NoMBCType,
	}
}

// NewCartridgeWithData initializes a new Cartridge from a slice of bytes.
func NewCartridgeWithData(bytes []byte) *Cartridge {
	titleBytes := bytes[titleAddress : titleAddress+titleLength]

	cart := &Cartridge{
		data:           make([]byte, len(bytes)),
		title:          cleanGameboyTitle(titleBytes),
		headerChecksum: bit.Combine(bytes[headerChecksumAddress+1], bytes[headerChecksumAddress]),
		globalChecksum: bit.Combine(bytes[globalChecksumAddress+1], bytes[globalChecksumAddress]),
		version:        bytes[versionNumberAddress],
		cartType:       bytes[cartridgeTypeAddress],
		romSize:        bytes[romSizeAddress],
		ramSize:        bytes[ramSizeAddress],
	}

	copy(cart.data, bytes)
	cart.decodeMBC()

	return cart
}

// decodeMBC interprets the cartridge type byte (0x147) into the MBC
// kind and feature flags that NewWithCartridge dispatches on.
func (c *Cartridge) decodeMBC() {
	c.ramBankCount = ramBankCounts[c.ramSize]

	switch c.cartType {
	case 0x00, 0x08, 0x09:
		c.mbcType = NoMBCType
		c.hasBattery = c.cartType == 0x09
	case 0x01, 0x02, 0x03:
		c.mbcType = MBC1Type
		c.hasBattery = c.cartType == 0x03
	case 0x05, 0x06:
		c.mbcType = MBC2Type
		c.hasBattery = c.cartType == 0x06
		c.ramBankCount = 0 // MBC2's built-in RAM isn't bank-counted
	case 0x0B, 0x0C, 0x0D:
		c.mbcType = MBC1MultiType
		c.hasBattery = c.cartType == 0x0D
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		c.mbcType = MBC3Type
		c.hasRTC = c.cartType == 0x0F || c.cartType == 0x10
		c.hasBattery = c.cartType == 0x0F || c.cartType == 0x10 || c.cartType == 0x13
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E:
		c.mbcType = MBC5Type
		c.hasRumble = c.cartType >= 0x1C
		c.hasBattery = c.cartType == 0x1B || c.cartType == 0x1E
	default:
		c.mbcType = MBCUnknownType
	}
}

// ReadByte reads a byte at the specified address. Does not check bounds, so the caller must make sure the
// address is valid for the cartridge.
func (c Cartridge) ReadByte(addr uint16) uint8 {
	return c.data[addr]
}

// WriteByte does not modify the cartridge data; it returns the byte currently stored at the specified
// address and ignores value. Bank switching and cartridge RAM writes are handled by the MBC.
func (c Cartridge) WriteByte(addr uint16, value uint8) uint8 {
	return c.data[addr]
}
