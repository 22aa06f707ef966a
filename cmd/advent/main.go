package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/advent/internal/cli"
	_ "github.com/example/advent/internal/days"
	"github.com/example/advent/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "advent",
		Short:   "advent - daily puzzle workspace",
		Version: version.String(),
		Long: `advent is a workspace for solving daily coding puzzles.
Each day is a small solver over a text input; this tool runs them,
lists them, and scaffolds new ones.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.SolveCmd())
	rootCmd.AddCommand(cli.DaysCmd())
	rootCmd.AddCommand(cli.NewCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
