package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/lispcalc"
)

var (
	keepGoing   = flag.Bool("keep-going", false, "report a failing line and continue with the next one")
	prompt      = flag.String("prompt", "> ", "interactive prompt")
	sample      = flag.String("sample", "", "run the named bundled sample program")
	listSamples = flag.Bool("samples", false, "list the bundled sample programs")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: lispcalc [flags] [file]\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lispcalc: ")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *listSamples {
		names, err := lispcalc.Samples()
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	session := lispcalc.NewSession(os.Stdout, os.Stderr)
	if *keepGoing {
		session.Policy = lispcalc.ContinueOnError
	}

	var in io.Reader = os.Stdin
	switch {
	case *sample != "":
		f, err := lispcalc.OpenSample(*sample)
		if err != nil {
			log.Fatalf("sample %s: %v", *sample, err)
		}
		defer f.Close()
		in = f
		session.FilePath = *sample + lispcalc.SampleExt
	case flag.NArg() == 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
		session.FilePath = flag.Arg(0)
	default:
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			session.Prompt = *prompt
		}
	}

	status := session.Run(in)
	if status != 0 {
		os.Exit(status)
	}
}
