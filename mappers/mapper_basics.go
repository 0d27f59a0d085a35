// Package mappers implements and registers mappers that are
// referenced numerically by iNES and NES2.0 ROM files. A mapper
// decides which cartridge bytes the PPU sees as its pattern tables.
package mappers

import (
	"fmt"

	"github.com/bdwalton/nesppu/nesrom"
	"github.com/bdwalton/nesppu/ppu"
)

// A global registry of mappers, keyed by mapper id
var AllMappers map[uint8]Mapper = map[uint8]Mapper{}

type Mapper interface {
	ID() uint8
	Name() string
	// Patterns returns the pattern table view of r.
	Patterns(r *nesrom.ROM) ppu.PatternSource
}

func RegisterMapper(m Mapper) {
	AllMappers[m.ID()] = m
}

// ForROM looks up the mapper r asks for.
func ForROM(r *nesrom.ROM) (Mapper, error) {
	m, ok := AllMappers[r.MapperNum()]
	if !ok {
		return nil, fmt.Errorf("unsupported mapper %d", r.MapperNum())
	}

	return m, nil
}

type baseMapper struct {
	id   uint8
	name string
}

func newBaseMapper(id uint8, name string) *baseMapper {
	return &baseMapper{id: id, name: name}
}

func (bm *baseMapper) ID() uint8 {
	return bm.id
}

func (bm *baseMapper) Name() string {
	return bm.name
}

func (bm *baseMapper) String() string {
	return fmt.Sprintf("%s(%d)", bm.name, bm.id)
}
