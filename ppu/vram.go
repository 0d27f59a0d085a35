package ppu

import (
	"fmt"
)

const (
	NAMETABLE_0      = 0x2000
	NAMETABLE_1      = 0x2400
	NAMETABLE_2      = 0x2800
	NAMETABLE_3      = 0x2C00
	NAMETABLE_STRIDE = 0x0400
	NAMETABLE_MIRROR = 0x3000
	PALETTE_RAM      = 0x3F00
	PALETTE_MIRROR   = 0x3F20
	VRAM_END         = 0x4000 // first address past the VRAM space
)

const (
	NAMETABLE_SIZE = 0x1000 // 4 nametables, 0x400 each
	PALETTE_SIZE   = 0x20

	NAMETABLE_MASK = NAMETABLE_SIZE - 1
	PALETTE_MASK   = PALETTE_SIZE - 1
)

// Memory is implemented by the PPU's memory-like backends: VRAM and,
// eventually, OAM.
type Memory interface {
	Load(addr uint16) (uint8, error)
	Store(addr uint16, val uint8) error
	// Load16 reads addr and addr+1, lower byte first.
	Load16(addr uint16) (uint16, error)
	Store16(addr uint16, val uint16) error
}

// PatternSource gives read access to the cartridge's CHR data. The
// cartridge owns the bytes; the PPU only ever reads them.
type PatternSource interface {
	ChrRead(addr uint16) uint8
}

// PatternBytes is a PatternSource over a CHR slice owned by someone
// else. Reads past the end return 0.
type PatternBytes []byte

func (pb PatternBytes) ChrRead(addr uint16) uint8 {
	if int(addr) >= len(pb) {
		return 0
	}
	return pb[addr]
}

// VRAM is the PPU address space:
//
//	0x0000-0x1FFF  pattern tables (cartridge CHR, read only)
//	0x2000-0x3EFF  nametables, addr & 0x0FFF
//	0x3F00-0x3FFF  palette, addr & 0x001F
type VRAM struct {
	chr        PatternSource
	nametables [NAMETABLE_SIZE]uint8
	palette    [PALETTE_SIZE]uint8
}

func NewVRAM(chr PatternSource) *VRAM {
	return &VRAM{chr: chr}
}

func (m *VRAM) Load(addr uint16) (uint8, error) {
	switch {
	case addr < NAMETABLE_0:
		return m.chr.ChrRead(addr), nil
	case addr < PALETTE_RAM:
		return m.nametables[addr&NAMETABLE_MASK], nil
	case addr < VRAM_END:
		return m.palette[addr&PALETTE_MASK], nil
	}

	return 0, fmt.Errorf("%w: VRAM read at 0x%04x", ErrInvalidAddress, addr)
}

func (m *VRAM) Store(addr uint16, val uint8) error {
	switch {
	case addr < NAMETABLE_0:
		// Pattern tables are CHR ROM; writes are dropped.
	case addr < PALETTE_RAM:
		m.nametables[addr&NAMETABLE_MASK] = val
	case addr < VRAM_END:
		m.palette[addr&PALETTE_MASK] = val
	default:
		return fmt.Errorf("%w: VRAM write at 0x%04x", ErrInvalidAddress, addr)
	}

	return nil
}

func (m *VRAM) Load16(addr uint16) (uint16, error) {
	lsb, err := m.Load(addr)
	if err != nil {
		return 0, err
	}
	msb, err := m.Load(addr + 1)
	if err != nil {
		return 0, err
	}

	return (uint16(msb) << 8) | uint16(lsb), nil
}

// Store16 isn't supported. It fails before touching either byte.
func (m *VRAM) Store16(addr uint16, _ uint16) error {
	return fmt.Errorf("%w: 16 bit VRAM write at 0x%04x", ErrUnimplemented, addr)
}
