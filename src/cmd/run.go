package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"sortdemo/src/sort"
	"sortdemo/src/store"
)

var defaultInput = []int{4, 3, 9, 1, 4, 7}

func CmdRun() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Action:    run,
		Category:  "SORT",
		Usage:     "sort copies of one input with every selected algorithm",
		ArgsUsage: "[NUM...]",
		Description: `
Each algorithm gets its own copy of the input, so the results can be compared
side by side. Without arguments the input is 4 3 9 1 4 7.

Examples:
$ sortdemo run
$ sortdemo run -a quick --show-tree 5 2 8 1 9
# negative numbers go after --
$ sortdemo run -- -3 10 -7
# record the runs
$ sortdemo -m "sqlite3:///tmp/sortdemo.db" run 3 2 1`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "algorithm to apply (bubble, quick, insertion), may be repeated",
			},
			&cli.BoolFlag{
				Name:  "early-exit",
				Usage: "stop bubble sort after the first pass without a swap",
			},
			&cli.BoolFlag{
				Name:  "show-tree",
				Usage: "print the quicksort partition tree",
			},
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "fail unless every result is a sorted permutation of the input",
			},
		},
	}
}

func run(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}

	input := defaultInput
	if ctx.NArg() > 0 {
		var err error
		if input, err = parseInts(ctx.Args().Slice()); err != nil {
			return err
		}
	}

	algos, err := selectAlgorithms(ctx.StringSlice("algorithm"), ctx.Bool("early-exit"))
	if err != nil {
		return err
	}

	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	if st != nil {
		defer closeStore(st)
	}

	w := ctx.App.Writer
	fmt.Fprint(w, "Original array: ")
	printVector(w, input)

	for _, a := range algos {
		data := append([]int(nil), input...)

		algo := a.algo
		var tree *partitionTree
		if q, ok := algo.(sort.Quick); ok && ctx.Bool("show-tree") {
			tree = newPartitionTree()
			q.Trace = tree.add
			algo = q
		}

		start := time.Now()
		sort.NewSorter(algo).SortData(data)
		elapsed := time.Since(start)
		logger.Debugf("%s sorted %d items in %s", a.name, len(data), elapsed)

		fmt.Fprintf(w, "%s: ", a.title)
		printVector(w, data)
		if tree != nil {
			tree.show(w)
		}

		sorted := sort.IsSorted(data) && sort.SameElements(input, data)
		if !sorted {
			logger.Errorf("%s produced an invalid result: %v", a.name, data)
			if ctx.Bool("verify") {
				return errors.Errorf("%s produced an invalid result", a.name)
			}
		}

		if st != nil {
			r := &store.Run{
				Algorithm: a.name,
				Size:      len(input),
				Input:     input,
				Output:    data,
				Sorted:    sorted,
				Elapsed:   int64(elapsed),
			}
			if err := st.Save(r); err != nil {
				return err
			}
			logger.Debugf("saved run %d", r.Id)
		}
	}
	return nil
}
