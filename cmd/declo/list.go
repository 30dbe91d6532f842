package main

import (
	"fmt"
	"os"

	"github.com/declo/declo/client"
	"github.com/spf13/cobra"
)

var listCommand = &cobra.Command{
	Use:     "list [dir]",
	Aliases: []string{"ls"},
	Short:   "List validated descriptors in source order",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"."}
		}

		cli := &client.Client{Logger: newLogger(cmd)}

		dir, err := cli.FindRoot(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		reg, err := cli.Validate(dir)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitCode(err))
		}

		for _, d := range reg.All() {
			fmt.Printf("%s %s\n", d.Block, d.Key())
		}
	},
}

func init() {
	cmd.AddCommand(listCommand)
}
