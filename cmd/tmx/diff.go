package main

import (
	"bytes"
	"fmt"

	"github.com/zaidmade/tmx/encode"
	"github.com/zaidmade/tmx/format"
	"github.com/zaidmade/tmx/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.render(cc, args[0])
	if err != nil {
		return err
	}
	b, err := cfg.render(cc, args[1])
	if err != nil {
		return err
	}
	edits := libdiff.Lines(a, b)
	if libdiff.Same(edits) {
		return nil
	}
	var colors *libdiff.Colors
	if cfg.useColor(cc.Out) {
		colors = &libdiff.Colors{Insert: color.GreenString, Delete: color.RedString}
	}
	if err := libdiff.Write(cc.Out, edits, colors); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func (cfg *DiffConfig) render(cc *cli.Context, file string) (string, error) {
	doc, err := cfg.load(cc, file)
	if err != nil {
		return "", err
	}
	defer doc.Close()
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc.IR(), buf, encode.EncodeFormat(format.TextFormat)); err != nil {
		return "", fmt.Errorf("error encoding %s: %w", file, err)
	}
	return buf.String(), nil
}
