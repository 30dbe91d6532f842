package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/declo/declo/client"
	"github.com/declo/declo/config"
	"github.com/declo/declo/registry"
	"github.com/declo/declo/validation"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// Exit codes for validate, one per error class.
const (
	exitSyntax     = 2
	exitSchema     = 3
	exitDuplicate  = 4
	exitUnreadable = 5
)

var validateCommand = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate configuration descriptors",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"."}
		}
		all, err := cmd.Flags().GetBool("all")
		if err != nil {
			log.Fatalf("Get all flag: %v", err)
		}

		cli := &client.Client{
			AccumulateAll: all,
			Logger:        newLogger(cmd),
		}

		dir, err := cli.FindRoot(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		reg, err := cli.Validate(dir)
		if err != nil {
			var syn *config.SyntaxError
			if errors.As(err, &syn) {
				cli.WriteDiagnostics(os.Stderr, syn.Diagnostics())
			} else {
				for _, e := range multierr.Errors(err) {
					fmt.Fprintln(os.Stderr, e)
				}
			}
			os.Exit(exitCode(err))
		}

		fmt.Printf("OK: %d descriptors\n", reg.Len())
	},
}

func init() {
	validateCommand.Flags().Bool("all", false, "Report all errors instead of stopping at the first")
	cmd.AddCommand(validateCommand)
}

// exitCode maps a load error to the validate exit code. With accumulated
// errors, the first one decides.
func exitCode(err error) int {
	if errs := multierr.Errors(err); len(errs) > 0 {
		err = errs[0]
	}
	var (
		syntaxErr     *config.SyntaxError
		duplicateErr  *registry.DuplicateError
		unreadableErr *validation.UnreadableFileError
		missingErr    *validation.MissingFieldError
		mismatchErr   *validation.TypeMismatchError
		unknownType   *validation.UnknownTypeError
		unknownField  *validation.UnknownFieldError
	)
	switch {
	case errors.As(err, &syntaxErr):
		return exitSyntax
	case errors.As(err, &duplicateErr):
		return exitDuplicate
	case errors.As(err, &unreadableErr):
		return exitUnreadable
	case errors.As(err, &missingErr),
		errors.As(err, &mismatchErr),
		errors.As(err, &unknownType),
		errors.As(err, &unknownField):
		return exitSchema
	default:
		return 1
	}
}
