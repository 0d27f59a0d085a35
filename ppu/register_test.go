package ppu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestBaseNametableAddr(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		want := uint16(0x2000 + (v&3)*0x400)
		if got := PpuCtrl(v).BaseNametableAddr(); got != want {
			t.Errorf("%08b: Got 0x%04x, wanted 0x%04x", v, got, want)
		}
	}
}

func TestVRAMAddrIncrement(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		want := uint16(0)
		if v&0x04 != 0 {
			want = 32
		}
		if got := PpuCtrl(v).VRAMAddrIncrement(); got != want {
			t.Errorf("%08b: Got %d, wanted %d", v, got, want)
		}
	}
}

func TestCtrlDecode(t *testing.T) {
	cases := []struct {
		ctrl               uint8
		wantSprite, wantBG uint16
		wantSize           SpriteSize
		wantNMI            bool
		wantNametable      uint16
	}{
		{0b00000000, 0x0000, 0x0000, SpriteSize8x8, false, 0x2000},
		{0b00001000, 0x1000, 0x0000, SpriteSize8x8, false, 0x2000},
		{0b00010001, 0x0000, 0x1000, SpriteSize8x8, false, 0x2400},
		{0b00111110, 0x1000, 0x1000, SpriteSize8x16, false, 0x2800},
		// master/slave select has no decoded meaning
		{CTRL_MASTER_SLAVE_SELECT, 0x0000, 0x0000, SpriteSize8x8, false, 0x2000},
		{0b10100011, 0x0000, 0x0000, SpriteSize8x16, true, 0x2C00},
		{0b11111111, 0x1000, 0x1000, SpriteSize8x16, true, 0x2C00},
	}

	for i, tc := range cases {
		c := PpuCtrl(tc.ctrl)
		if c.SpritePatternTableAddr() != tc.wantSprite || c.BackgroundPatternTableAddr() != tc.wantBG || c.SpriteSize() != tc.wantSize || c.VBlankNMI() != tc.wantNMI || c.BaseNametableAddr() != tc.wantNametable {
			t.Errorf("%d: ctrl=%08b got sprite=0x%04x bg=0x%04x size=%s nmi=%t nt=0x%04x", i, tc.ctrl, c.SpritePatternTableAddr(), c.BackgroundPatternTableAddr(), c.SpriteSize(), c.VBlankNMI(), c.BaseNametableAddr())
		}
	}
}

func TestMaskFlags(t *testing.T) {
	flags := []func(PpuMask) bool{
		PpuMask.Grayscale,
		PpuMask.ShowBackgroundLeft,
		PpuMask.ShowSpritesLeft,
		PpuMask.ShowBackground,
		PpuMask.ShowSprites,
		PpuMask.IntensifyReds,
		PpuMask.IntensifyGreens,
		PpuMask.IntensifyBlues,
	}

	for v := 0; v <= 0xFF; v++ {
		m := PpuMask(v)
		for bit, f := range flags {
			if want := v&(1<<bit) != 0; f(m) != want {
				t.Errorf("mask=%08b bit %d: Got %t, wanted %t", v, bit, f(m), want)
			}
		}
	}
}

func TestStatusSetters(t *testing.T) {
	cases := []struct {
		status uint8
		set    func(*PpuStatus, bool)
		on     bool
		want   uint8
	}{
		{0x00, (*PpuStatus).SetSpriteOverflow, true, 0x20},
		{0xFF, (*PpuStatus).SetSpriteOverflow, false, 0xDF},
		{0x00, (*PpuStatus).SetSpriteZeroHit, true, 0x40},
		{0xFF, (*PpuStatus).SetSpriteZeroHit, false, 0xBF},
		{0x11, (*PpuStatus).SetInVBlank, true, 0x91},
		{0x91, (*PpuStatus).SetInVBlank, false, 0x11},
		// open bus bits survive untouched
		{0x1F, (*PpuStatus).SetInVBlank, true, 0x9F},
		{0x0A, (*PpuStatus).SetSpriteZeroHit, false, 0x0A},
	}

	for i, tc := range cases {
		s := PpuStatus(tc.status)
		tc.set(&s, tc.on)
		if uint8(s) != tc.want {
			t.Errorf("%d: Got 0x%02x, wanted 0x%02x", i, uint8(s), tc.want)
		}
	}
}

func TestStatusGetters(t *testing.T) {
	var s PpuStatus
	s.SetSpriteOverflow(true)
	s.SetInVBlank(true)

	assert.Equal(t, true, s.SpriteOverflow())
	assert.Equal(t, false, s.SpriteZeroHit())
	assert.Equal(t, true, s.InVBlank())
}

func TestScrollLatch(t *testing.T) {
	cases := []struct {
		val      uint8
		wantX    uint8
		wantY    uint8
		wantNext ScrollDir
	}{
		// These are cumulative
		{10, 10, 0, YDir},
		{20, 10, 20, XDir},
		{30, 30, 20, YDir},
		{40, 30, 40, XDir},
		{40, 40, 40, YDir},
	}

	var ps PpuScroll
	if ps.Next() != XDir {
		t.Fatalf("fresh scroll latch starts at %s, wanted x", ps.Next())
	}

	for i, tc := range cases {
		ps.Write(tc.val)
		if ps.X() != tc.wantX || ps.Y() != tc.wantY || ps.Next() != tc.wantNext {
			t.Errorf("%d: Got x,y,next=%d,%d,%s wanted %d,%d,%s", i, ps.X(), ps.Y(), ps.Next(), tc.wantX, tc.wantY, tc.wantNext)
		}
	}
}

func TestAddrReg(t *testing.T) {
	cases := []struct {
		inputs []uint8  // we'll feed bytes...
		wants  []uint16 // and check the value after each
	}{
		{
			[]uint8{0x12, 0x34},
			[]uint16{0x0012, 0x1234},
		},
		{
			[]uint8{0x0F, 0x0B, 0x10, 0x02},
			[]uint16{0x000F, 0x0F0B, 0x0B10, 0x1002},
		},
		{
			[]uint8{0x3F, 0xB0},
			[]uint16{0x003F, 0x3FB0},
		},
	}

	for i, tc := range cases {
		var r Regs
		for j, x := range tc.inputs {
			r.writeAddr(x)
			if r.Addr != tc.wants[j] {
				t.Errorf("%d: Got %04x, want %04x", i, r.Addr, tc.wants[j])
			}
		}
	}
}
