// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/lmc/asm"
	"github.com/ezrec/lmc/translate"
)

func main() {
	var output string
	var listing bool
	var verbose bool
	var lang string

	flag.StringVar(&output, "o", "-", "Machine code output")
	flag.BoolVar(&listing, "l", false, "Print a listing instead of machine code")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message language, such as en-US")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage:\n    %v [options] inputfile.txt > outputfile.lmc\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if len(lang) != 0 {
		translate.Use(lang)
	}

	source := flag.Arg(0)

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	assembler := &asm.Assembler{File: source, Verbose: verbose}
	prog, err := assembler.Parse(inf)
	if err != nil {
		log.Fatal(err)
	}

	ouf := os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
	}

	if listing {
		_, err = fmt.Fprint(ouf, prog.String())
	} else {
		_, err = fmt.Fprintln(ouf, prog.MachineCode())
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
