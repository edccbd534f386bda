package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Track the vocabulary drill",
}

var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vocabulary terms and which are learned",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close(cmd.Context())

		progress := d.state.VocabProgress()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s  %s  %s  %s\n", pad("", 2), pad("ID", 5), pad("어휘", 12), "뜻")
		fmt.Fprintln(w, strings.Repeat("─", 60))
		for _, v := range d.catalog.VocabItems() {
			mark := " "
			if slices.Contains(progress.CompletedIDs, v.ID) {
				mark = "✓"
			}
			fmt.Fprintf(w, "%s  %s  %s  %s\n", pad(mark, 2), pad(v.ID, 5), pad(v.Term, 12), clip(v.Meaning, 40))
		}

		status := ""
		if d.state.IsVocabCompletedToday() {
			status = ", 오늘 완료"
		}
		fmt.Fprintf(w, "\n%d/%d learned (Day %d%s)\n",
			progress.LearnedCount, progress.TotalCount, progress.CurrentDay, status)
		return nil
	},
}

var vocabLearnCmd = &cobra.Command{
	Use:   "learn <vocab-id>...",
	Short: "Mark vocabulary terms as learned",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close(cmd.Context())

		for _, id := range args {
			if _, ok := d.catalog.VocabByID(id); !ok {
				return fmt.Errorf("unknown vocabulary id %q", id)
			}
		}
		var learned int
		for _, id := range args {
			learned = d.state.UpdateVocabProgress(id).LearnedCount
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d/%d learned\n", learned, d.state.VocabProgress().TotalCount)
		return nil
	},
}

var vocabCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Mark today's vocabulary drill as done",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close(cmd.Context())

		if d.state.IsVocabCompletedToday() {
			fmt.Fprintln(cmd.OutOrStdout(), "오늘 어휘 학습은 이미 완료했습니다.")
			return nil
		}
		p := d.state.MarkVocabCompleted()
		fmt.Fprintf(cmd.OutOrStdout(), "Day %d 완료\n", p.CurrentDay)
		return nil
	},
}

func init() {
	vocabCmd.AddCommand(vocabListCmd)
	vocabCmd.AddCommand(vocabLearnCmd)
	vocabCmd.AddCommand(vocabCompleteCmd)
}
