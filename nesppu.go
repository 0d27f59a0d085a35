package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bdwalton/nesppu/console"
	"github.com/bdwalton/nesppu/mappers"
	"github.com/bdwalton/nesppu/nesrom"
	"github.com/bdwalton/nesppu/script"
	"github.com/retroenv/retrogolib/buildinfo"
)

var (
	version = "0.1.0"
	commit  = ""
	date    = ""
)

var (
	romFile    = flag.String("nes_rom", "", "Path to NES ROM supplying pattern table data. A blank cartridge is used if empty.")
	scriptFile = flag.String("script", "", "Path to a Lua script to run against the console bus.")
	monitor    = flag.Bool("monitor", false, "Start the interactive monitor after any script has run.")
)

func main() {
	flag.Parse()

	fmt.Printf("nesppu %s\n", buildinfo.Version(version, commit, date))

	rom := nesrom.Blank()
	if *romFile != "" {
		var err error
		if rom, err = nesrom.Open(*romFile); err != nil {
			log.Fatalf("Invalid ROM: %v", err)
		}
	}
	fmt.Println(rom)

	m, err := mappers.ForROM(rom)
	if err != nil {
		log.Fatalf("Can't run %s: %v", rom, err)
	}

	bus := console.New(m.Patterns(rom))

	if *scriptFile != "" {
		if err := script.RunFile(bus, *scriptFile); err != nil {
			log.Fatalf("Script %q: %v", *scriptFile, err)
		}
	}

	if *monitor {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := bus.Monitor(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
			log.Fatalf("Monitor: %v", err)
		}
	}

	fmt.Println(bus.PPU())
}
