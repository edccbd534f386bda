package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/munhak/internal/studystate"
	"github.com/abhisek/munhak/internal/ui/layout"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close(cmd.Context())

		printStats(cmd.OutOrStdout(), d.state.Snapshot())
		return nil
	},
}

func printStats(w io.Writer, s studystate.Snapshot) {
	sum := studystate.Summarize(s)

	fmt.Fprintf(w, "수능 %s   연속 %d일   오늘 %d분\n\n",
		layout.DDayLabel(s.DDay), s.Streak, s.LearningTime/60)

	fmt.Fprintf(w, "%s  %s\n", pad("오늘의 진도", 14), percent(s.DailyProgress))
	fmt.Fprintf(w, "%s  %d/%d (%s)\n", pad("전체 차시", 14),
		sum.CompletedLessons, sum.TotalLessons, percent(sum.OverallProgress))
	fmt.Fprintf(w, "%s  %d/%d\n", pad("어휘", 14), sum.VocabLearned, sum.VocabTotal)
	fmt.Fprintf(w, "%s  %d편\n\n", pad("완료한 작품", 14), len(s.CompletedWorks))

	fmt.Fprintf(w, "%s  %s  %s\n", pad("갈래", 14), pad("진도", 8), "차시")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, sc := range s.SubCategories {
		status := percent(sc.Progress)
		if !sc.Unlocked {
			status = "잠김"
		}
		fmt.Fprintf(w, "%s  %s  %d/%d\n", pad(sc.Name, 14), pad(status, 8),
			sc.CompletedLessons, sc.TotalLessons)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s  %s  %s\n", pad("유형", 14), pad("오답", 8), "북마크")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, t := range studystate.AllNoteTypes() {
		fmt.Fprintf(w, "%s  %s  %d\n", pad(t.DisplayName(), 14),
			pad(fmt.Sprint(sum.IncorrectByType[t]), 8), sum.BookmarksByType[t])
	}
}

func percent(f float64) string {
	return fmt.Sprintf("%d%%", int(f*100+0.5))
}
