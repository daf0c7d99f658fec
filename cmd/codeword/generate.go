package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/codeword/internal/codeword"
	"github.com/vancomm/codeword/internal/qxw"
	"github.com/vancomm/codeword/internal/render"
)

const (
	formatHTML = "html"
	formatText = "text"
	formatJSON = "json"
)

var extensions = map[string]string{
	formatHTML: ".html",
	formatText: ".txt",
	formatJSON: ".json",
}

var (
	errNoInput    = errors.New("no input files")
	errNeedOutDir = errors.New("-out is required for more than one input file")
)

type options struct {
	title      string
	hideChance float64
	seed       uint64
	format     string
	out        string
}

// generate derives a puzzle from every file in paths. The file at index i is
// derived with seed opts.seed+i.
func generate(ctx context.Context, opts options, paths []string, stdout io.Writer) error {
	ext, ok := extensions[opts.format]
	if !ok {
		return fmt.Errorf("unknown format %q", opts.format)
	}
	if len(paths) == 0 {
		return errNoInput
	}
	if len(paths) > 1 && opts.out == "" {
		return errNeedOutDir
	}
	if opts.out != "" {
		if err := os.MkdirAll(opts.out, 0o755); err != nil {
			return err
		}
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		seed := opts.seed + uint64(i)
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			output, err := derive(path, opts, seed)
			if err != nil {
				return err
			}
			if opts.out == "" {
				_, err = stdout.Write(output)
				return err
			}
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			return os.WriteFile(filepath.Join(opts.out, base+ext), output, 0o644)
		})
	}

	return g.Wait()
}

func derive(path string, opts options, seed uint64) ([]byte, error) {
	p, err := qxw.ParseFile(path)
	if err != nil {
		return nil, err
	}

	cwOpts := codeword.DefaultOptions()
	cwOpts.Title = opts.title
	cwOpts.HideChance = opts.hideChance

	cw, err := codeword.Derive(p, cwOpts, codeword.NewRand(seed))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"file":           path,
		"seed":           seed,
		"words":          cw.Words,
		"masked_words":   cw.MaskedWords,
		"hidden_letters": cw.HiddenLetters,
	}).Debug("derived codeword")

	var buf bytes.Buffer
	switch opts.format {
	case formatHTML:
		err = render.HTML(&buf, cw)
	case formatText:
		err = render.Text(&buf, cw)
	case formatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(cw)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
