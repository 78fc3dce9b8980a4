// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/mymix/emulator"
	"github.com/ezrec/mymix/translate"
)

// patchList collects repeated -p options.
type patchList []string

func (pl *patchList) String() string {
	return strings.Join(*pl, ",")
}

func (pl *patchList) Set(value string) error {
	*pl = append(*pl, value)
	return nil
}

func main() {
	var patches patchList
	var limit int
	var quiet bool
	var verbose bool

	flag.Var(&patches, "p", "ADDR=EXPR memory patch, may be repeated")
	flag.IntVar(&limit, "n", 0, "Maximum ticks to run, 0 for no limit")
	flag.BoolVar(&quiet, "q", false, "Do not dump state before running")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if verbose {
		log.Printf("%v: language %v", os.Args[0], translate.Language())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Reset()

	err := emu.Load(emulator.Demo())
	if err != nil {
		log.Fatal(err)
	}

	for _, patch := range patches {
		err = emu.Patch(patch)
		if err != nil {
			log.Fatalf("%v: %v", patch, err)
		}
	}

	if !quiet {
		fmt.Print(emu.Cpu.String())
		fmt.Println()
	}

	if limit > 0 {
		done, err := emu.RunLimit(limit)
		if err != nil {
			log.Fatal(err)
		}
		if !done {
			log.Printf("%v: stopped after %d ticks", os.Args[0], emu.Ticks())
		}
	} else {
		err = emu.Run()
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Print(emu.Cpu.String())
}
