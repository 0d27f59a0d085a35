// package nesrom loads NES (iNES, NES2) ROM files and exposes their
// CHR data as the PPU's pattern tables. https://www.nesdev.org/wiki/INES
package nesrom

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/nes/cartridge"
)

const (
	PRG_BLOCK_SIZE = 16384
	CHR_BLOCK_SIZE = 8192
)

// ROM owns the cartridge bytes. The PPU borrows the CHR data through
// ChrRead and never writes it.
type ROM struct {
	path string
	cart *cartridge.Cartridge
}

// Open loads the ROM stored at path.
func Open(path string) (*ROM, error) {
	rf, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open ROM file %q: %w", path, err)
	}
	defer rf.Close()

	r, err := Load(rf)
	if err != nil {
		return nil, fmt.Errorf("couldn't load %q: %w", path, err)
	}
	r.path = path

	return r, nil
}

// Load parses an iNES image.
func Load(rs io.ReadSeeker) (*ROM, error) {
	cart, err := cartridge.LoadFile(rs)
	if err != nil {
		return nil, fmt.Errorf("error parsing ROM: %w", err)
	}

	return &ROM{cart: cart}, nil
}

// Blank returns a cartridge with one empty CHR bank, for running the
// PPU without a ROM.
func Blank() *ROM {
	return &ROM{
		path: "<blank>",
		cart: &cartridge.Cartridge{
			PRG: make([]byte, PRG_BLOCK_SIZE),
			CHR: make([]byte, CHR_BLOCK_SIZE),
		},
	}
}

// ChrRead returns the pattern table byte at addr. Boards without CHR
// ROM read as zero.
func (r *ROM) ChrRead(addr uint16) uint8 {
	if int(addr) >= len(r.cart.CHR) {
		return 0
	}
	return r.cart.CHR[addr]
}

func (r *ROM) MapperNum() uint8 {
	return r.cart.Mapper
}

func (r *ROM) NumPrgBlocks() int {
	return len(r.cart.PRG) / PRG_BLOCK_SIZE
}

func (r *ROM) NumChrBlocks() int {
	return len(r.cart.CHR) / CHR_BLOCK_SIZE
}

func (r *ROM) String() string {
	return fmt.Sprintf("%s: mapper(%d), prg(%d), chr(%d)", r.path, r.MapperNum(), r.NumPrgBlocks(), r.NumChrBlocks())
}
