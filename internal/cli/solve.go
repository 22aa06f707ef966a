package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/advent/internal/solver"
)

// SolveCmd returns the solve command
func SolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Run a day's solver against its puzzle input",
		Long: `Run a day's solver and print both part answers.

Input resolution order:
  1. --input FILE
  2. piped stdin
  3. <input_dir>/dayNN.txt from the workspace config

Examples:
  advent solve 2
  advent solve 2 --input sample.txt --stats
  echo "11-99" | advent solve 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q: expected a number", args[0])
			}

			s, ok := solver.Lookup(day)
			if !ok {
				return fmt.Errorf("no solver registered for day %d (run 'advent days' to see what exists)", day)
			}

			inputFlag, _ := cmd.Flags().GetString("input")
			showStats, _ := cmd.Flags().GetBool("stats")

			input, source, err := readInput(day, inputFlag)
			if err != nil {
				return err
			}

			start := time.Now()
			answers, err := s.Solve(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("day %d: %w", day, err)
			}
			elapsed := time.Since(start)

			fmt.Printf("Day %d: %s (input: %s)\n", s.Day, s.Title, source)
			green := color.New(color.FgGreen)
			fmt.Printf("Part 1: %s\n", green.Sprint(answers.Part1))
			fmt.Printf("Part 2: %s\n", green.Sprint(answers.Part2))

			if showStats {
				fmt.Println()
				fmt.Printf("  input size: %s\n", humanize.Bytes(uint64(len(input))))
				if answers.Scanned > 0 {
					fmt.Printf("  candidates: %s\n", humanize.Comma(int64(answers.Scanned)))
				}
				fmt.Printf("  elapsed:    %s\n", elapsed.Round(time.Millisecond))
			}

			return nil
		},
	}
	cmd.Flags().String("input", "", "path to the puzzle input file")
	cmd.Flags().Bool("stats", false, "print input and scan statistics")
	return cmd
}
