package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cmd = &cobra.Command{
	Use:           "declo",
	Short:         "Load and validate declarative resource descriptors",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newLogger builds the CLI logger: debug output with --verbose, errors only
// otherwise.
func newLogger(c *cobra.Command) *zap.Logger {
	verbose, err := c.Flags().GetBool("verbose")
	if err != nil {
		log.Fatalf("Get verbose flag: %v", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Build logger: %v", err)
	}
	return logger
}
