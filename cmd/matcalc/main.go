// SPDX-License-Identifier: MIT

// Command matcalc is an interactive structured-matrix calculator.
//
// Run without arguments to start the numbered menu. The show and calc
// subcommands work on matrix files directly:
//
//	matcalc show a.txt
//	matcalc calc + a.txt b.txt
//	matcalc calc scalar a.txt 2.5
//	matcalc calc det a.txt
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matcalc/calculator"
	"github.com/katalvlaran/matcalc/config"
	"github.com/katalvlaran/matcalc/internal/shell"
	"github.com/katalvlaran/matcalc/registry"
	"github.com/katalvlaran/matcalc/textio"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "matcalc",
	Short: "matcalc - structured matrix calculator",
	Long: `matcalc keeps a list of named matrices and runs arithmetic on them.

General, lower triangular, upper triangular and diagonal layouts are
supported; operations between structured matrices keep the compact layout
where the result allows it.

Run without arguments to start the interactive menu.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		zc, err := cfg.ZapConfig(verbose)
		if err != nil {
			return err
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the matcalc version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "matcalc %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd, showCmd, calcCmd)
}

// runInteractive loads the configured session, runs the menu and saves the
// session on a clean exit.
func runInteractive(cmd *cobra.Command, args []string) error {
	calc := calculator.New(registry.New(), logger)

	if path := cfg.Session.LoadOnStart; path != "" {
		n, err := textio.LoadCollection(path, calc.Registry())
		switch {
		case errors.Is(err, os.ErrNotExist):
			logger.Info("no session to restore", zap.String("path", path))
		case err != nil:
			return fmt.Errorf("restore session: %w", err)
		default:
			logger.Info("session restored", zap.String("path", path), zap.Int("matrices", n))
		}
	}

	sh := shell.New(calc, cmd.InOrStdin(), cmd.OutOrStdout(),
		shell.WithFormat(cfg.FormatOptions()...),
		shell.WithLogger(logger))
	if err := sh.Run(); err != nil {
		return err
	}

	if path := cfg.Session.SaveOnExit; path != "" {
		if err := textio.SaveCollection(path, calc.Registry()); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		logger.Info("session saved", zap.String("path", path), zap.Int("matrices", calc.Registry().Len()))
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
