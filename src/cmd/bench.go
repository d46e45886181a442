package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"sortdemo/src/sort"
)

func CmdBench() *cli.Command {
	return &cli.Command{
		Name:      "bench",
		Action:    bench,
		Category:  "SORT",
		Usage:     "time every algorithm on random inputs",
		ArgsUsage: "",
		Description: `
For every size one random input is generated and each algorithm sorts its own
copy of it.

Examples:
$ sortdemo bench
$ sortdemo bench -n 50000 -a quick -a insertion --seed 42`,
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:    "size",
				Aliases: []string{"n"},
				Value:   cli.NewIntSlice(100, 1000, 10000),
				Usage:   "number of elements, may be repeated",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed (0 picks one from the clock)",
			},
			&cli.StringSliceFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "algorithm to time (bubble, quick, insertion), may be repeated",
			},
			&cli.BoolFlag{
				Name:  "early-exit",
				Usage: "stop bubble sort after the first pass without a swap",
			},
		},
	}
}

func bench(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}

	algos, err := selectAlgorithms(ctx.StringSlice("algorithm"), ctx.Bool("early-exit"))
	if err != nil {
		return err
	}

	seed := ctx.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debugf("bench seed %d", seed)
	rng := rand.New(rand.NewSource(seed))

	w := ctx.App.Writer
	for _, n := range ctx.IntSlice("size") {
		if n < 0 {
			return errors.Errorf("invalid size %d", n)
		}
		input := make([]int, n)
		for i := range input {
			input[i] = rng.Int()
			if rng.Intn(2) == 0 {
				input[i] = -input[i]
			}
		}

		fmt.Fprintf(w, "n=%s\n", humanize.Comma(int64(n)))
		for _, a := range algos {
			data := append([]int(nil), input...)
			start := time.Now()
			sort.NewSorter(a.algo).SortData(data)
			elapsed := time.Since(start)
			if !sort.IsSorted(data) || !sort.SameElements(input, data) {
				return errors.Errorf("%s produced an invalid result for n=%d", a.name, n)
			}
			fmt.Fprintf(w, "  %-28s %s\n", a.title+":", elapsed)
		}
	}
	return nil
}
