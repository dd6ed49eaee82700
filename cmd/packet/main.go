package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alttpo/packet"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "packet",
		Usage: "order distress signal packet pairs",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "input file or glob pattern (** allowed), repeatable",
				EnvVars:  []string{"PACKET_INPUT"},
				Required: true,
			},
			&cli.IntFlag{
				Name:    "cache-size",
				Usage:   "number of parsed packets to keep cached",
				Value:   packet.DefaultCacheSize,
				EnvVars: []string{"PACKET_CACHE_SIZE"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log per file statistics",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "sum",
				Usage: "sum the 1-based indices of pairs that are in the right order",
				Action: func(c *cli.Context) error {
					return run(c, packet.SumOrdered)
				},
			},
			{
				Name:  "decoder-key",
				Usage: "sort all packets with the divider packets and multiply their positions",
				Action: func(c *cli.Context) error {
					return run(c, packet.DecoderKey)
				},
			},
		},
	}
}

// run evaluates solve over every input file, aborting on the first
// malformed file.
func run(c *cli.Context, solve func([]packet.Pair) int) error {
	paths, err := expandInputs(c.StringSlice("input"))
	if err != nil {
		return err
	}

	d, err := packet.NewDecoder(c.Int("cache-size"))
	if err != nil {
		return err
	}

	verbose := c.Bool("verbose")
	for _, path := range paths {
		pairs, size, err := readPairsFile(d, path)
		if err != nil {
			return err
		}
		if verbose {
			log.Printf("%s: %s, %s pairs (cache %s hits, %s misses)",
				path,
				humanize.Bytes(uint64(size)),
				humanize.Comma(int64(len(pairs))),
				humanize.Comma(int64(d.Hits())),
				humanize.Comma(int64(d.Misses())))
		}

		result := solve(pairs)
		if len(paths) > 1 {
			fmt.Fprintf(c.App.Writer, "%s\t%d\n", path, result)
		} else {
			fmt.Fprintln(c.App.Writer, result)
		}
	}

	return nil
}
