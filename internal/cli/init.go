package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/advent/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the puzzle workspace",
		Long:  `Initialize the workspace: write .advent/config.json and create the input directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, _ := cmd.Flags().GetInt("year")
			inputDir, _ := cmd.Flags().GetString("input-dir")

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			cfg := config.Default()
			cfg.Year = year
			cfg.InputDir = inputDir

			if err := config.Save(cwd, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Println("✓ Config written to .advent/config.json")

			if err := os.MkdirAll(cfg.InputDir, 0755); err != nil {
				return fmt.Errorf("failed to create input dir: %w", err)
			}
			fmt.Printf("✓ Input directory created at %s/\n", cfg.InputDir)

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Printf("  put a puzzle input at %s\n", cfg.InputPath(2))
			fmt.Println("  advent solve 2")

			return nil
		},
	}
	cmd.Flags().Int("year", config.DefaultYear, "puzzle year the workspace tracks")
	cmd.Flags().String("input-dir", config.DefaultInputDir, "directory for puzzle input files")
	return cmd
}
