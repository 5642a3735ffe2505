package main

import (
	"fmt"
	"io"
	"os"

	"github.com/zaidmade/tmx/encode"
	"github.com/zaidmade/tmx/format"
	"github.com/zaidmade/tmx/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Binary  bool `cli:"name=binary desc='decode base64 and compressed tile data'"`
	Strict  bool `cli:"name=strict desc='fail when tile data cannot be loaded'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.WithLogger(theLog),
		parse.DecodeBinary(cfg.Binary),
		parse.Strict(cfg.Strict),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var f format.Format
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
	}
	if f.IsText() && cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor honours an explicit -color and otherwise colours terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DumpConfig struct {
	*MainConfig
	Depth int `cli:"name=depth desc='levels to render below the map, -1 for all'"`

	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig
	Depth int `cli:"name=depth desc='levels to render below each result, -1 for all'"`

	Get *cli.Command
}

type FindConfig struct {
	*MainConfig
	Render bool `cli:"name=r aliases=render desc='render matching nodes, not just their paths'"`

	Find *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
