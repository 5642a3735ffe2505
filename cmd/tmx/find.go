package main

import (
	"fmt"

	"github.com/zaidmade/tmx/encode"
	"github.com/zaidmade/tmx/ir"
	"github.com/zaidmade/tmx/query"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires one argument, an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := filesOrStdin(args[1:])
	for _, file := range files {
		doc, err := cfg.load(cc, file)
		if err != nil {
			return err
		}
		err = findDoc(cfg, cc, q, file, doc.IR(), len(files) > 1)
		doc.Close()
		if err != nil {
			return fmt.Errorf("error searching %s: %w", file, err)
		}
	}
	return nil
}

func findDoc(cfg *FindConfig, cc *cli.Context, q *query.Query, file string, root *ir.Node, prefix bool) error {
	hits, err := query.Find(root, q)
	if err != nil {
		return err
	}
	for _, hit := range hits {
		line := hit.Path
		if prefix {
			line = file + ":" + line
		}
		if _, err := fmt.Fprintln(cc.Out, line); err != nil {
			return err
		}
		if !cfg.Render {
			continue
		}
		if err := encode.Encode(hit.Node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
