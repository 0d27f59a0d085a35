package ppu

import (
	"fmt"
)

// PPUCTRL bit flags
// 7  bit  0
// ---- ----
// VPHB SINN
// |||| ||||
// |||| ||++- Base nametable address
// |||| ||    (0 = $2000; 1 = $2400; 2 = $2800; 3 = $2C00)
// |||| |+--- VRAM address increment per CPU write of PPUDATA
// |||| |     (0: add 0; 1: add 32, going down)
// |||| +---- Sprite pattern table address for 8x8 sprites
// ||||       (0: $0000; 1: $1000; ignored in 8x16 mode)
// |||+------ Background pattern table address (0: $0000; 1: $1000)
// ||+------- Sprite size (0: 8x8 pixels; 1: 8x16 pixels)
// |+-------- PPU master/slave select (not modeled)
// +--------- Generate an NMI at the start of the
//
//	vertical blanking interval (0: off; 1: on)
const (
	CTRL_NAMETABLE1             = 1
	CTRL_NAMETABLE2             = 1 << 1
	CTRL_VRAM_ADD_INCREMENT     = 1 << 2
	CTRL_SPRITE_PATTERN_ADDR    = 1 << 3
	CTRL_BACKROUND_PATTERN_ADDR = 1 << 4
	CTRL_SPRITE_SIZE            = 1 << 5
	CTRL_MASTER_SLAVE_SELECT    = 1 << 6
	CTRL_GENERATE_NMI           = 1 << 7
)

// VRAM increment options. With the increment bit clear the cursor
// stays where it is.
const (
	CTRL_INCR_NONE = 0
	CTRL_INCR_DOWN = 32
)

// Pattern table base addresses selected by PPUCTRL
const (
	PATTERN_TABLE_0 = 0x0000
	PATTERN_TABLE_1 = 0x1000
)

// 7  bit  0
// ---- ----
// BGRs bMmG
// |||| ||||
// |||| |||+- Greyscale (0: normal color, 1: produce a greyscale display)
// |||| ||+-- 1: Show background in leftmost 8 pixels of screen, 0: Hide
// |||| |+--- 1: Show sprites in leftmost 8 pixels of screen, 0: Hide
// |||| +---- 1: Show background
// |||+------ 1: Show sprites
// ||+------- Emphasize red
// |+-------- Emphasize green
// +--------- Emphasize blue
const (
	MASK_GREYSCALE         = 1 << 0
	MASK_SHOW_LEFT_TILES   = 1 << 1
	MASK_SHOW_LEFT_SPRITES = 1 << 2
	MASK_RENDER_BG         = 1 << 3
	MASK_RENDER_FG         = 1 << 4
	MASK_EMPHASIZE_RED     = 1 << 5
	MASK_EMPHASIZE_GREEN   = 1 << 6
	MASK_EMPHASIZE_BLUE    = 1 << 7
)

// 7  bit  0
// ---- ----
// VSO. ....
// |||| ||||
// |||+-++++- PPU open bus. Not modeled: these bits hold whatever
// |||        they last held.
// ||+------- Sprite overflow.
// |+-------- Sprite 0 Hit.
// +--------- Vertical blank has started (0: not in vblank; 1: in vblank).
const (
	STATUS_SPRITE_OVERFLOW = 1 << 5
	STATUS_SPRITE_0_HIT    = 1 << 6
	STATUS_VERTICAL_BLANK  = 1 << 7
)

// PpuCtrl is the value written to PPUCTRL (0x2000).
type PpuCtrl uint8

type SpriteSize uint8

const (
	SpriteSize8x8 SpriteSize = iota
	SpriteSize8x16
)

func (s SpriteSize) String() string {
	if s == SpriteSize8x16 {
		return "8x16"
	}
	return "8x8"
}

func (c PpuCtrl) BaseNametableAddr() uint16 {
	return NAMETABLE_0 + uint16(c&(CTRL_NAMETABLE1|CTRL_NAMETABLE2))*NAMETABLE_STRIDE
}

// VRAMAddrIncrement is the amount the PPUADDR cursor advances after
// each PPUDATA write.
func (c PpuCtrl) VRAMAddrIncrement() uint16 {
	if c&CTRL_VRAM_ADD_INCREMENT == 0 {
		return CTRL_INCR_NONE
	}
	return CTRL_INCR_DOWN
}

func (c PpuCtrl) SpritePatternTableAddr() uint16 {
	if c&CTRL_SPRITE_PATTERN_ADDR == 0 {
		return PATTERN_TABLE_0
	}
	return PATTERN_TABLE_1
}

func (c PpuCtrl) BackgroundPatternTableAddr() uint16 {
	if c&CTRL_BACKROUND_PATTERN_ADDR == 0 {
		return PATTERN_TABLE_0
	}
	return PATTERN_TABLE_1
}

func (c PpuCtrl) SpriteSize() SpriteSize {
	if c&CTRL_SPRITE_SIZE == 0 {
		return SpriteSize8x8
	}
	return SpriteSize8x16
}

func (c PpuCtrl) VBlankNMI() bool {
	return c&CTRL_GENERATE_NMI != 0
}

// PpuMask is the value written to PPUMASK (0x2001). Every flag is a
// single independent bit.
type PpuMask uint8

func (m PpuMask) Grayscale() bool          { return m&MASK_GREYSCALE != 0 }
func (m PpuMask) ShowBackgroundLeft() bool { return m&MASK_SHOW_LEFT_TILES != 0 }
func (m PpuMask) ShowSpritesLeft() bool    { return m&MASK_SHOW_LEFT_SPRITES != 0 }
func (m PpuMask) ShowBackground() bool     { return m&MASK_RENDER_BG != 0 }
func (m PpuMask) ShowSprites() bool        { return m&MASK_RENDER_FG != 0 }
func (m PpuMask) IntensifyReds() bool      { return m&MASK_EMPHASIZE_RED != 0 }
func (m PpuMask) IntensifyGreens() bool    { return m&MASK_EMPHASIZE_GREEN != 0 }
func (m PpuMask) IntensifyBlues() bool     { return m&MASK_EMPHASIZE_BLUE != 0 }

// PpuStatus is PPUSTATUS (0x2002). The CPU can't write it; the
// renderer flips its flags one bit at a time.
type PpuStatus uint8

func (s *PpuStatus) set(flag uint8, on bool) {
	if on {
		*s |= PpuStatus(flag)
	} else {
		*s &^= PpuStatus(flag)
	}
}

func (s *PpuStatus) SetSpriteOverflow(on bool) {
	s.set(STATUS_SPRITE_OVERFLOW, on)
}

func (s *PpuStatus) SetSpriteZeroHit(on bool) {
	s.set(STATUS_SPRITE_0_HIT, on)
}

func (s *PpuStatus) SetInVBlank(on bool) {
	s.set(STATUS_VERTICAL_BLANK, on)
}

func (s PpuStatus) SpriteOverflow() bool { return s&STATUS_SPRITE_OVERFLOW != 0 }
func (s PpuStatus) SpriteZeroHit() bool  { return s&STATUS_SPRITE_0_HIT != 0 }
func (s PpuStatus) InVBlank() bool       { return s&STATUS_VERTICAL_BLANK != 0 }

// ScrollDir records which half of PPUSCROLL the next write fills.
type ScrollDir uint8

const (
	XDir ScrollDir = iota
	YDir
)

func (d ScrollDir) String() string {
	if d == YDir {
		return "y"
	}
	return "x"
}

// PpuScroll latches the two PPUSCROLL (0x2005) writes. The toggle only
// ever moves as a result of a write.
type PpuScroll struct {
	x, y uint8
	next ScrollDir
}

func (ps *PpuScroll) Write(val uint8) {
	switch ps.next {
	case XDir:
		ps.x = val
		ps.next = YDir
	default:
		ps.y = val
		ps.next = XDir
	}
}

func (ps PpuScroll) X() uint8        { return ps.x }
func (ps PpuScroll) Y() uint8        { return ps.y }
func (ps PpuScroll) Next() ScrollDir { return ps.next }

// Regs is the CPU visible register state of the PPU. The zero value is
// the power-on state.
type Regs struct {
	Ctrl    PpuCtrl   // PPUCTRL: 0x2000
	Mask    PpuMask   // PPUMASK: 0x2001
	Status  PpuStatus // PPUSTATUS: 0x2002
	OAMAddr uint8     // OAMADDR: 0x2003
	Scroll  PpuScroll // PPUSCROLL: 0x2005
	Addr    uint16    // PPUADDR: 0x2006
}

// writeAddr shifts val into the low byte of the cursor, so two writes
// assemble an address high byte first. The cursor is a full 16 bits;
// VRAM rejects anything at or above 0x4000.
func (r *Regs) writeAddr(val uint8) {
	r.Addr = (r.Addr << 8) | uint16(val)
}

func (r Regs) String() string {
	return fmt.Sprintf("ctrl=%08b, mask=%08b, status=%08b, oamaddr=0x%02x, scroll=(%d,%d next=%s), addr=0x%04x", r.Ctrl, r.Mask, r.Status, r.OAMAddr, r.Scroll.x, r.Scroll.y, r.Scroll.next, r.Addr)
}
