package ppu

import (
	"errors"
)

var (
	// ErrInvalidAddress is returned for VRAM accesses outside
	// 0x0000-0x3FFF and register writes outside 0x2000-0x3FFF.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrUnimplemented is returned by operations the PPU doesn't
	// support yet (OAM data, 16 bit VRAM stores).
	ErrUnimplemented = errors.New("unimplemented")
)
