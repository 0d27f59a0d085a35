// Package console wires the PPU register window onto a CPU bus and
// provides a small interactive monitor for poking at it.
package console

import (
	"errors"

	"github.com/bdwalton/nesppu/ppu"
)

// ErrUnmapped is returned for CPU addresses at or above 0x4000 (APU,
// I/O and cartridge space), which nothing here backs.
var ErrUnmapped = errors.New("unmapped CPU address")

// Bus is the CPU side of the machine: 2KB of work RAM and the PPU
// register window.
type Bus struct {
	mem *cpuMemory
	ppu *ppu.PPU
}

// New powers on a bus whose PPU reads pattern data from chr.
func New(chr ppu.PatternSource) *Bus {
	p := ppu.New(chr)
	return &Bus{mem: &cpuMemory{ppu: p}, ppu: p}
}

func (b *Bus) PPU() *ppu.PPU {
	return b.ppu
}

func (b *Bus) Read(addr uint16) (uint8, error) {
	return b.mem.read(addr)
}

func (b *Bus) Write(addr uint16, val uint8) error {
	return b.mem.write(addr, val)
}
