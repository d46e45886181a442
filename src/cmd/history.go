package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"sortdemo/src/sort"
)

func CmdHistory() *cli.Command {
	return &cli.Command{
		Name:      "history",
		Action:    history,
		Category:  "INSPECTOR",
		Usage:     "show recorded runs",
		ArgsUsage: "",
		Description: `
It lists the runs recorded by "run" in the database given with --meta-url,
newest first.

Examples:
$ sortdemo -m "mysql://sd:mypassword@(127.0.0.1:3306)/sortdemo" history
# A safer alternative
$ export META_PASSWORD=mypassword
$ sortdemo -m "mysql://sd:@(127.0.0.1:3306)/sortdemo" history -a quick`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "only show runs of this algorithm",
			},
			&cli.IntFlag{
				Name:  "limit",
				Value: 20,
				Usage: "maximum number of runs to show (0 for all)",
			},
		},
	}
}

func history(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}

	algorithm := ctx.String("algorithm")
	if algorithm != "" {
		if _, err := sort.Lookup(algorithm); err != nil {
			return err
		}
		algorithm = strings.ToLower(strings.TrimSpace(algorithm))
	}

	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	if st == nil {
		return errors.New("history needs --meta-url")
	}
	defer closeStore(st)

	runs, err := st.List(algorithm, ctx.Int("limit"))
	if err != nil {
		return err
	}
	w := ctx.App.Writer
	for _, r := range runs {
		var out strings.Builder
		printVector(&out, r.Output)
		fmt.Fprintf(w, "%d\t%s\t%-9s\tn=%d\t%s\tsorted=%t\t%s",
			r.Id, r.Created.Format("2006-01-02 15:04:05"), r.Algorithm, r.Size, r.Duration(), r.Sorted, out.String())
	}
	return nil
}
