package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/codeword/internal/codeword"
	"github.com/vancomm/codeword/internal/config"
	"github.com/vancomm/codeword/internal/logging"
	"github.com/vancomm/codeword/internal/qxw"
)

var log = logrus.New()

const usage = `usage: codeword [flags] FILE...

Turns Qxw save files into codeword puzzles.

`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "codeword:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	hideChance, err := config.HideChance()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("codeword", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}

	var opts options
	fs.StringVar(&opts.title, "title", "", "puzzle title, overrides the one in the save file")
	fs.StringVar(&opts.title, "t", "", "puzzle title (shorthand)")
	fs.Float64Var(&opts.hideChance, "chance-hide-letters-in-revealed-words", hideChance,
		"probability of hiding every letter of a word sharing letters with the revealed squares")
	fs.Uint64Var(&opts.seed, "seed", 0, "random seed, random when unset")
	fs.StringVar(&opts.format, "format", formatHTML, "output format: html, text or json")
	fs.StringVar(&opts.out, "out", "", "output directory, required for more than one file")
	verbose := fs.Bool("v", config.Development(), "print diagnostics to stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}

	seedSet := false
	fs.Visit(func(f *flag.Flag) {
		seedSet = seedSet || f.Name == "seed"
	})
	if !seedSet {
		opts.seed = codeword.RandomSeed()
	}

	err = logging.Setup(log, logging.Options{
		Development: *verbose,
		File:        config.LogFile(),
		Out:         stderr,
	}, qxw.Log, codeword.Log)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"title":       opts.title,
		"hide_chance": opts.hideChance,
		"seed":        opts.seed,
		"format":      opts.format,
	}).Debug("options")

	return generate(ctx, opts, fs.Args(), stdout)
}
