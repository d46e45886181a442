package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"sortdemo/src/sort"
)

func CmdList() *cli.Command {
	return &cli.Command{
		Name:     "list",
		Action:   list,
		Category: "INSPECTOR",
		Usage:    "show the available algorithms",
	}
}

func list(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	for _, name := range sort.Names() {
		title, _ := sort.Title(name)
		fmt.Fprintf(ctx.App.Writer, "%-10s %s\n", name, title)
	}
	return nil
}
