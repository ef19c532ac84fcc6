// Package cmd implements the xword command-line tool: grid creation,
// inspection, dictionary diagnostics, one-shot autofill, an interactive
// editing session, and an HTTP server, all built on pkg/engine.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crossplay/xword/internal/config"
)

const version = "0.1.0"

var (
	cfgFile   string
	verbosity int
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "xword",
	Short:   "Crossword grid construction and autofill tool",
	Long:    `xword builds, fills, and inspects crossword grids using constraint-propagated backtracking search.`,
	Version: version,
}

// Execute adds all child commands to the root command and runs it.
// Called once by main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=errors only, 1=info, 2=debug)")
}

func initConfig() {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xword: %v\n", err)
		os.Exit(1)
	}
	if verbosity > 0 {
		loaded.Verbosity = verbosity
	}
	cfg = loaded

	if cfg.Verbosity > 0 {
		fmt.Fprintf(os.Stderr, "xword: dict=%s store=%s\n", cfg.DictPath, cfg.StorePath)
	}
}
