package main

import (
	"fmt"

	"github.com/zaidmade/tmx/encode"
	"github.com/zaidmade/tmx/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a tree path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := append(cfg.encOpts(cc.Out), encode.Depth(cfg.Depth))
	for _, file := range filesOrStdin(args[1:]) {
		if err := getFile(cfg, cc, file, path, opts); err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, file, path string, opts []encode.EncodeOption) error {
	doc, err := cfg.load(cc, file)
	if err != nil {
		return err
	}
	defer doc.Close()
	nodes, err := doc.IR().ListPath(nil, path)
	if err != nil {
		return err
	}
	if len(nodes) == 0 {
		return fmt.Errorf("%w: nothing at %s", ir.ErrBadPath, path)
	}
	for _, n := range nodes {
		if err := encode.Encode(n, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
