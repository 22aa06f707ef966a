package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/advent/internal/config"
	"github.com/example/advent/internal/scaffold"
)

// NewCmd returns the new command
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <day>",
		Short: "Scaffold a new puzzle day package",
		Long: `Generate the solver package, test file, and input placeholder for a
new puzzle day.

Examples:
  advent new 9
  advent new 9 --title "Beam Splitters"
  advent new 9 --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q: expected a number", args[0])
			}
			title, _ := cmd.Flags().GetString("title")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			spec, err := scaffold.BuildDaySpec(day, title)
			if err != nil {
				return err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			cfg, err := config.Load(cwd)
			if err != nil {
				cfg = config.Default()
			}

			files, err := scaffold.GenerateDay(spec, cfg.InputDir)
			if err != nil {
				return fmt.Errorf("failed to generate day: %w", err)
			}

			for _, f := range files {
				if _, err := os.Stat(f.Path); err == nil {
					return fmt.Errorf("%s already exists, refusing to overwrite", f.Path)
				}
			}

			if dryRun {
				fmt.Println("Files to create:")
				for _, f := range files {
					fmt.Printf("  %s\n", f.Path)
				}
				return nil
			}

			for _, f := range files {
				if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
					return fmt.Errorf("failed to create %s: %w", filepath.Dir(f.Path), err)
				}
				if err := os.WriteFile(f.Path, []byte(f.Content), 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", f.Path, err)
				}
				fmt.Printf("✓ %s\n", f.Path)
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Printf("  add %s to internal/days/days.go\n", scaffold.RegistrationImport(spec))
			fmt.Printf("  put the puzzle input at %s\n", cfg.InputPath(day))

			return nil
		},
	}
	cmd.Flags().String("title", "", "display title for the day")
	cmd.Flags().Bool("dry-run", false, "show the files without creating them")
	return cmd
}
