package mappers

import (
	"github.com/bdwalton/nesppu/nesrom"
	"github.com/bdwalton/nesppu/ppu"
)

func init() {
	RegisterMapper(newMapper0())
}

const NROM_CHR_MASK = nesrom.CHR_BLOCK_SIZE - 1

// mapper0 (NROM) has a single fixed CHR bank. Boards that ship
// without CHR ROM use 8K of CHR RAM instead.
type mapper0 struct {
	*baseMapper
}

func newMapper0() *mapper0 {
	return &mapper0{baseMapper: newBaseMapper(0, "NROM")}
}

func (m *mapper0) Patterns(r *nesrom.ROM) ppu.PatternSource {
	if r.NumChrBlocks() == 0 {
		return ppu.PatternBytes(make([]byte, nesrom.CHR_BLOCK_SIZE))
	}
	return nromCHR{r}
}

type nromCHR struct {
	rom *nesrom.ROM
}

func (n nromCHR) ChrRead(addr uint16) uint8 {
	return n.rom.ChrRead(addr & NROM_CHR_MASK)
}
