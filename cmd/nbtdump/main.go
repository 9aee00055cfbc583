// nbtdump decodes an NBT file and prints its tag tree.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/minetools/nbt/internal/pretty"
	"github.com/minetools/nbt/nbt"
)

func main() {
	app := &cli.App{
		Name:      "nbtdump",
		Usage:     "decode an NBT file and print its tag tree",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "raw",
				Aliases: []string{"r"},
				Usage:   "input is raw NBT, not gzip-compressed",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Value: nbt.DefaultMaxDepth,
				Usage: "maximum tag nesting depth",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colorized output",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "nbtdump:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("no-color") {
		color.NoColor = true
	}

	var in io.Reader = os.Stdin
	if c.NArg() > 0 {
		f, err := os.Open(c.Args().First())
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	opt := nbt.WithMaxDepth(c.Int("max-depth"))
	var (
		root nbt.NamedTag
		err  error
	)
	if c.Bool("raw") {
		root, err = nbt.DecodeUncompressed(in, opt)
	} else {
		root, err = nbt.Decode(in, opt)
	}
	if err != nil {
		return err
	}

	pretty.Fprint(os.Stdout, root)
	return nil
}
