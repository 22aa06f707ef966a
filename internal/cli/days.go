package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/advent/internal/solver"
)

// DaysCmd returns the days command
func DaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the implemented puzzle days",
		RunE: func(cmd *cobra.Command, args []string) error {
			all := solver.All()
			if len(all) == 0 {
				fmt.Println("No puzzle days implemented yet.")
				return nil
			}

			cyan := color.New(color.FgCyan)
			for _, s := range all {
				fmt.Printf("  %s  %s\n", cyan.Sprintf("day %2d", s.Day), s.Title)
			}
			return nil
		},
	}
}
