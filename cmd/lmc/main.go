// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/lmc/asm"
	"github.com/ezrec/lmc/emulator"
	"github.com/ezrec/lmc/internal/config"
	lmcio "github.com/ezrec/lmc/io"
	"github.com/ezrec/lmc/translate"
)

func main() {
	var configFile string
	var assemble bool

	cfg := config.Default()

	flag.StringVar(&configFile, "c", "", ".toml run configuration")
	flag.BoolVar(&assemble, "a", false, "Program is assembly source")
	flag.BoolVar(&cfg.Debug, "d", false, "Debug mode, step with ENTER")
	flag.BoolVar(&cfg.Prompt, "p", false, "Prompt for input and label output")
	flag.StringVar(&cfg.Input, "i", "-", "INP input")
	flag.StringVar(&cfg.Output, "o", "-", "OUT output")
	flag.BoolVar(&cfg.Verbose, "v", false, "Verbose mode")
	flag.StringVar(&cfg.Lang, "lang", "", "Message language, such as en-US")

	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "          From File:   %v file.lmc\n", os.Args[0])
		fmt.Fprintf(out, "    Debug From File:   %v +file.lmc\n", os.Args[0])
		fmt.Fprintf(out, "          Immediate:   %v :901308901309508209902000\n", os.Args[0])
		fmt.Fprintf(out, "    Debug Immediate:   %v +:901308901309508209902000\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if len(configFile) != 0 {
		loaded, err := config.Load(configFile)
		if err != nil {
			log.Fatal(err)
		}
		// Flags given on the command line override the file.
		flag.Visit(func(fl *flag.Flag) {
			switch fl.Name {
			case "d":
				loaded.Debug = cfg.Debug
			case "p":
				loaded.Prompt = cfg.Prompt
			case "i":
				loaded.Input = cfg.Input
			case "o":
				loaded.Output = cfg.Output
			case "v":
				loaded.Verbose = cfg.Verbose
			case "lang":
				loaded.Lang = cfg.Lang
			}
		})
		cfg = loaded
	}

	if len(cfg.Lang) != 0 {
		translate.Use(cfg.Lang)
	}

	arg := flag.Arg(0)
	if strings.HasPrefix(arg, "+") {
		cfg.Debug = true
		arg = arg[1:]
	}

	emu := emulator.NewEmulator()
	emu.Verbose = cfg.Verbose
	emu.Tape.Prompt = cfg.Prompt

	switch {
	case strings.HasPrefix(arg, ":"):
		emu.Code = arg[1:]
	case assemble:
		inf, err := os.Open(arg)
		if err != nil {
			log.Fatalf("%v: %v", arg, err)
		}
		assembler := &asm.Assembler{File: arg, Verbose: cfg.Verbose}
		emu.Program, err = assembler.Parse(inf)
		inf.Close()
		if err != nil {
			log.Fatal(err)
		}
	default:
		code, err := os.ReadFile(arg)
		if err != nil {
			log.Fatalf("%v: %v", arg, err)
		}
		emu.Code = string(code)
	}

	// INP and the debug pause share one console reader.
	stdin := bufio.NewReader(os.Stdin)

	var preset *lmcio.Queue
	if len(cfg.Inputs) != 0 {
		preset = lmcio.NewQueue(cfg.Inputs...)
		emu.Tape.Preset = preset
	} else if cfg.Input == "-" {
		emu.Tape.Input = stdin
	} else {
		inf, err := os.Open(cfg.Input)
		if err != nil {
			log.Fatalf("%v: %v", cfg.Input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if cfg.Output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(cfg.Output)
		if err != nil {
			log.Fatalf("%v: %v", cfg.Output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	if cfg.Debug {
		emu.Trace = debugger(&lmcio.Tape{Input: stdin})
	}

	err := emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", arg, err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Verbose && preset != nil && preset.Len() != 0 {
		log.Printf("lmc: %d preset inputs not read", preset.Len())
	}
}

// debugger shows the machine before every cycle, and waits for ENTER
// on the console after the first.
func debugger(console *lmcio.Tape) func(emu *emulator.Emulator) error {
	return func(emu *emulator.Emulator) (err error) {
		if emu.Ticks() != 0 {
			_, err = console.ReadLine()
			if err == io.EOF {
				err = nil
			}
			if err != nil {
				return
			}
		}

		fmt.Print("\033[2J\033[H")
		fmt.Println("LMC + DEBUG MODE")
		fmt.Print(emu.String())
		fmt.Println("[ENTER] = step")

		return
	}
}
