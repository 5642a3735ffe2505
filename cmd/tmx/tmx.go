package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/zaidmade/tmx"

	"github.com/scott-cotton/cli"
)

func tmxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// load opens file, or reads stdin for "-".
func (cfg *MainConfig) load(cc *cli.Context, file string) (*tmx.Document, error) {
	var (
		doc *tmx.Document
		err error
	)
	if file == "-" {
		doc, err = tmx.Read(cc.In, cfg.parseOpts()...)
	} else {
		doc, err = tmx.Open(file, cfg.parseOpts()...)
	}
	if err != nil {
		return nil, err
	}
	theLog.Debug("loaded map", "file", file, "issues", len(doc.Issues()))
	return doc, nil
}

func filesOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
