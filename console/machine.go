package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const monitorHelp = `(W)rite <addr> <val> - CPU bus write, eg: w 2006 3f
(R)ead <addr> - CPU bus read
(V)ram <low> <high> - dump a VRAM range, eg: v 3f00 3f1f
(P)PU - show PPU registers
(H)elp - show this list
(Q)uit - leave the monitor
`

// Monitor runs an interactive command loop against the bus, reading
// commands from in until it's exhausted, q is entered or ctx is done.
// Command failures are reported on out and don't end the loop.
func (b *Bus) Monitor(ctx context.Context, in io.Reader, out io.Writer) error {
	interactive := isTerminal(in)
	if interactive {
		fmt.Fprint(out, monitorHelp)
	}

	stop := make(chan struct{})
	defer close(stop)
	lines, scanErr := scanLines(in, stop)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if interactive {
			fmt.Fprint(out, "Choice: ")
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			line = l
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		var err error
		switch strings.ToLower(args[0]) {
		case "w", "write":
			err = b.monitorWrite(out, args[1:])
		case "r", "read":
			err = b.monitorRead(out, args[1:])
		case "v", "vram":
			err = b.monitorVRAM(out, args[1:])
		case "p", "ppu":
			fmt.Fprintf(out, "%s\n", b.ppu)
		case "h", "help":
			fmt.Fprint(out, monitorHelp)
		case "q", "quit":
			return nil
		default:
			err = fmt.Errorf("unknown command %q", args[0])
		}

		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

// scanLines feeds the lines of in to the returned channel until in is
// exhausted or stop is closed. The channel is closed once scanning
// ends, after the scanner's error is sent on the second channel. A
// read blocked on in outlives stop until in returns.
func scanLines(in io.Reader, stop <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-stop:
				return
			}
		}
		errc <- sc.Err()
	}()

	return lines, errc
}

func (b *Bus) monitorWrite(out io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: w <addr> <val>")
	}
	addr, err := parseHex(args[0], 16)
	if err != nil {
		return err
	}
	val, err := parseHex(args[1], 8)
	if err != nil {
		return err
	}

	if err := b.Write(uint16(addr), uint8(val)); err != nil {
		return err
	}
	fmt.Fprintf(out, "0x%04x <- 0x%02x\n", addr, val)

	return nil
}

func (b *Bus) monitorRead(out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: r <addr>")
	}
	addr, err := parseHex(args[0], 16)
	if err != nil {
		return err
	}

	val, err := b.Read(uint16(addr))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "0x%04x: 0x%02x\n", addr, val)

	return nil
}

func (b *Bus) monitorVRAM(out io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: v <low> <high>")
	}
	low, err := parseHex(args[0], 16)
	if err != nil {
		return err
	}
	high, err := parseHex(args[1], 16)
	if err != nil {
		return err
	}
	if low > high {
		return fmt.Errorf("low address 0x%04x above high address 0x%04x", low, high)
	}

	vram := b.ppu.VRAM()
	x := 1
	for i := uint16(low); ; i++ {
		val, err := vram.Load(i)
		if err != nil {
			fmt.Fprintln(out)
			return err
		}
		fmt.Fprintf(out, "0x%04x: 0x%02x ", i, val)
		if x%5 == 0 {
			fmt.Fprintln(out)
		}
		if i == uint16(high) || i == math.MaxUint16 {
			break
		}
		x += 1
	}
	fmt.Fprintln(out)

	return nil
}

// parseHex accepts 2f, 0x2f and $2f.
func parseHex(s string, bits int) (uint64, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$")
	n, err := strconv.ParseUint(h, 16, bits)
	if err != nil {
		return 0, fmt.Errorf("bad %d bit hex value %q", bits, s)
	}

	return n, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
