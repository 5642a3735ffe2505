package main

import (
	"fmt"

	"github.com/zaidmade/tmx/encode"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	files := filesOrStdin(args)
	opts := append(cfg.encOpts(cc.Out), encode.Depth(cfg.Depth))
	for i, file := range files {
		doc, err := cfg.load(cc, file)
		if err != nil {
			return err
		}
		err = encode.Encode(doc.IR(), cc.Out, opts...)
		doc.Close()
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if i < len(files)-1 {
			if _, err := cc.Out.Write([]byte("\n---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
