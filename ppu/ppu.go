// Package ppu implements the CPU facing register interface and the
// video address space of the NES PPU (2C02).
package ppu

import (
	"fmt"
)

// Special Registers. These are the addresses on which they're exposed
// to the CPU. They repeat every 8 bytes up to 0x3FFF; WriteReg only
// looks at the low 3 bits.
const (
	PPUCTRL   = 0x2000
	PPUMASK   = 0x2001
	PPUSTATUS = 0x2002
	OAMADDR   = 0x2003
	OAMDATA   = 0x2004
	PPUSCROLL = 0x2005
	PPUADDR   = 0x2006
	PPUDATA   = 0x2007

	REG_MIRROR_END = 0x4000 // first CPU address past the register window
)

type PPU struct {
	regs Regs
	vram Memory
	oam  Memory
}

// New returns a powered-on PPU whose pattern tables read from chr.
// chr must stay valid for the life of the PPU.
func New(chr PatternSource) *PPU {
	return NewWithMemory(NewVRAM(chr), &OAM{})
}

// NewWithMemory builds a PPU around the supplied backends.
func NewWithMemory(vram, oam Memory) *PPU {
	return &PPU{vram: vram, oam: oam}
}

func (p *PPU) String() string {
	return p.regs.String()
}

// Regs returns a copy of the current register state.
func (p *PPU) Regs() Regs {
	return p.regs
}

// VRAM exposes the video address space for readers such as a renderer.
func (p *PPU) VRAM() Memory {
	return p.vram
}

func (p *PPU) SetSpriteOverflow(on bool) {
	p.regs.Status.SetSpriteOverflow(on)
}

func (p *PPU) SetSpriteZeroHit(on bool) {
	p.regs.Status.SetSpriteZeroHit(on)
}

func (p *PPU) SetInVBlank(on bool) {
	p.regs.Status.SetInVBlank(on)
}

// WriteReg handles a CPU write to the register window 0x2000-0x3FFF.
func (p *PPU) WriteReg(addr uint16, val uint8) error {
	if addr < PPUCTRL || addr >= REG_MIRROR_END {
		return fmt.Errorf("%w: PPU register 0x%04x", ErrInvalidAddress, addr)
	}

	switch addr & 0x7 {
	case PPUCTRL & 0x7:
		p.regs.Ctrl = PpuCtrl(val)
	case PPUMASK & 0x7:
		p.regs.Mask = PpuMask(val)
	case PPUSTATUS & 0x7:
		// PPUSTATUS is read-only
	case OAMADDR & 0x7:
		p.regs.OAMAddr = val
	case OAMDATA & 0x7:
		return p.writeOAMDATA(val)
	case PPUSCROLL & 0x7:
		p.regs.Scroll.Write(val)
	case PPUADDR & 0x7:
		p.regs.writeAddr(val)
	case PPUDATA & 0x7:
		return p.writePPUDATA(val)
	}

	return nil
}

func (p *PPU) writeOAMDATA(val uint8) error {
	if err := p.oam.Store(uint16(p.regs.OAMAddr), val); err != nil {
		return fmt.Errorf("OAMDATA write: %w", err)
	}

	return nil
}

// writePPUDATA stores val at the cursor and then advances it. A failed
// store leaves the cursor alone.
func (p *PPU) writePPUDATA(val uint8) error {
	if err := p.vram.Store(p.regs.Addr, val); err != nil {
		return fmt.Errorf("PPUDATA write: %w", err)
	}
	p.regs.Addr += p.regs.Ctrl.VRAMAddrIncrement()

	return nil
}
