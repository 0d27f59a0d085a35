package ppu

import (
	"fmt"
)

// OAM stands in for sprite attribute memory, which isn't implemented
// yet. Every access fails with ErrUnimplemented.
type OAM struct{}

func (o *OAM) Load(addr uint16) (uint8, error) {
	return 0, fmt.Errorf("%w: OAM read at 0x%02x", ErrUnimplemented, addr)
}

func (o *OAM) Store(addr uint16, _ uint8) error {
	return fmt.Errorf("%w: OAM write at 0x%02x", ErrUnimplemented, addr)
}

func (o *OAM) Load16(addr uint16) (uint16, error) {
	return 0, fmt.Errorf("%w: OAM read at 0x%02x", ErrUnimplemented, addr)
}

func (o *OAM) Store16(addr uint16, _ uint16) error {
	return fmt.Errorf("%w: OAM write at 0x%02x", ErrUnimplemented, addr)
}
