package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/munhak/internal/catalog"
)

var quizzesCmd = &cobra.Command{
	Use:   "quizzes",
	Short: "List the literature works in the quiz bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close(cmd.Context())

		var passages []catalog.QuizPassage
		if category != "" {
			if _, ok := d.catalog.Category(category); !ok {
				return fmt.Errorf("unknown category %q", category)
			}
			passages = d.catalog.QuizzesByCategory(category)
		} else {
			passages = d.catalog.Passages()
		}

		completed := d.state.CompletedWorks()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
			pad("", 2), pad("ID", 22), pad("갈래", 10), pad("작품", 18), "문항")
		fmt.Fprintln(w, strings.Repeat("─", 70))
		for _, p := range passages {
			mark := " "
			if slices.Contains(completed, p.ID) {
				mark = "✓"
			}
			genre := p.CategoryID
			if c, ok := d.catalog.Category(p.CategoryID); ok {
				genre = c.Name
			}
			fmt.Fprintf(w, "%s  %s  %s  %s  %d\n",
				pad(mark, 2), pad(p.ID, 22), pad(genre, 10),
				pad(clip(p.Title+" · "+p.Author, 18), 18), len(p.Questions))
		}
		fmt.Fprintf(w, "\n%d works\n", len(passages))
		return nil
	},
}

func init() {
	quizzesCmd.Flags().String("category", "", "Filter by category id (e.g. modern-poetry)")
}
