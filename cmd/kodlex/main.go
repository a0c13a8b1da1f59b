// Command kodlex prints the tokens of a Kod source file, one per line.
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/KimNorgaard/go-kod"
	"github.com/KimNorgaard/go-kod/source"
	"github.com/KimNorgaard/go-kod/token"
)

const (
	exitOK    = 0
	exitLex   = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kodlex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	debug := fs.Bool("debug", false, "Log every token at debug level")
	dumpFlag := fs.Bool("dump", false, "Dump full token values instead of one line per token")
	keepGoing := fs.Bool("keep-going", false, "Skip to the next line after a lexical error")
	keywords := fs.Bool("keywords", false, "Print the reserved words and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: kodlex [flags] file")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *keywords {
		fmt.Fprintln(stdout, strings.Join(token.Keywords(), "\n"))
		return exitOK
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	opts := []kod.Option{kod.Logger(logger)}
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
		opts = append(opts, kod.Debug())
	}
	if *keepGoing {
		opts = append(opts, kod.ContinueOnError())
	}

	toks, err := kod.TokenizeFile(fs.Arg(0), opts...)
	if stderrors.Is(err, source.ErrCannotOpen) {
		fmt.Fprintf(stderr, "kodlex: %v\n", err)
		return exitUsage
	}

	dump := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}
	for _, tok := range toks {
		if *dumpFlag {
			dump.Fdump(stdout, tok)
			continue
		}
		fmt.Fprintln(stdout, tok)
	}

	if err != nil {
		fmt.Fprintf(stderr, "kodlex: %v\n", err)
		return exitLex
	}
	return exitOK
}
