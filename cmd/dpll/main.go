// Command dpll reads a DIMACS CNF file, runs the DPLL search, and
// prints a satisfiability verdict and witness, mirroring the original
// babysat CLI's quiet/verbose/no-witness flags and exit code
// conventions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	exitSatisfiable   = 10
	exitUnsatisfiable = 20
	exitError         = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitError)
	}
}

var cfgFile string

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:          "dpll",
		Short:        "A DPLL-based SAT solver",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional; no file is read when unset)")

	cobra.OnInitialize(func() { initConfig(v) })

	root.AddCommand(newSolveCmd(v))
	root.AddCommand(newVersionCmd())
	return root
}

// initConfig layers DPLL_* environment variables and an optional config
// file on top of viper's defaults, matching the original CLI's use of
// environment-driven configuration for batch/CI invocations.
func initConfig(v *viper.Viper) {
	v.SetEnvPrefix("DPLL")
	v.AutomaticEnv()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		_ = v.ReadInConfig()
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dpll version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"
