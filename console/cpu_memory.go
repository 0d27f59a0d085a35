package console

import (
	"fmt"

	"github.com/bdwalton/nesppu/ppu"
)

const (
	RAM_SIZE            = 2048
	MAX_RAM_MIRRORED    = 0x2000
	MAX_IO_REG_MIRRORED = 0x4000
)

type cpuMemory struct {
	ram [RAM_SIZE]uint8
	ppu *ppu.PPU
}

// ppuRegister folds a mirrored register address back onto 0x2000-0x2007.
func ppuRegister(addr uint16) uint16 {
	return ppu.PPUCTRL + ((addr - ppu.PPUCTRL) % 0x8)
}

func (m *cpuMemory) read(addr uint16) (uint8, error) {
	// https://www.nesdev.org/wiki/CPU_memory_map
	switch {
	case addr < MAX_RAM_MIRRORED:
		// 0x800-0x1FFF mirrors 0x0000-0x07FF
		return m.ram[addr%RAM_SIZE], nil
	case addr < MAX_IO_REG_MIRRORED:
		return 0, fmt.Errorf("%w: read of PPU register 0x%04x", ppu.ErrUnimplemented, ppuRegister(addr))
	}

	return 0, fmt.Errorf("%w: read at 0x%04x", ErrUnmapped, addr)
}

func (m *cpuMemory) write(addr uint16, val uint8) error {
	// https://www.nesdev.org/wiki/CPU_memory_map
	switch {
	case addr < MAX_RAM_MIRRORED:
		m.ram[addr%RAM_SIZE] = val
		return nil
	case addr < MAX_IO_REG_MIRRORED:
		// PPU registers are mirrored between 0x2000 and 0x4000
		return m.ppu.WriteReg(ppuRegister(addr), val)
	}

	return fmt.Errorf("%w: write at 0x%04x", ErrUnmapped, addr)
}
