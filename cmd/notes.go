package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/munhak/internal/catalog"
	"github.com/abhisek/munhak/internal/screens/notes"
	"github.com/abhisek/munhak/internal/studystate"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Review incorrect notes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List incorrect notes, newest first (optionally filtered by type)",
	RunE: func(cmd *cobra.Command, args []string) error {
		typeName, _ := cmd.Flags().GetString("type")

		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close(cmd.Context())

		list := d.state.IncorrectNotes()
		if typeName != "" {
			t, ok := studystate.ParseNoteType(typeName)
			if !ok {
				return fmt.Errorf("unknown note type %q (want literature, vocab or exam)", typeName)
			}
			list = studystate.NotesOfType(list, t)
		}
		list = notes.Sorted(list)

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
			pad("ID", 22), pad("유형", 4), pad("작품", 16), pad("답", 5), "진술")
		fmt.Fprintln(w, strings.Repeat("─", 100))
		for _, n := range list {
			title := n.QuizTitle
			if n.Type() == studystate.NoteVocab {
				title = n.SourceTitle
			}
			answers := n.UserAnswer + "→" + catalog.AnswerLabel(n.IsTrue)
			fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
				pad(n.QuestionID, 22), pad(n.Type().DisplayName(), 4),
				pad(clip(title, 16), 16), pad(answers, 5), clip(n.Statement, 46))
		}
		fmt.Fprintf(w, "\n%d notes\n", len(list))
		return nil
	},
}

var notesRemoveCmd = &cobra.Command{
	Use:   "remove <question-id>...",
	Short: "Remove incorrect notes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close(cmd.Context())

		var missing []string
		for _, id := range args {
			if _, ok := d.state.IncorrectNote(id); !ok {
				missing = append(missing, id)
				continue
			}
			d.state.RemoveIncorrectNote(id)
			fmt.Fprintln(cmd.OutOrStdout(), "removed", id)
		}
		if len(missing) > 0 {
			return fmt.Errorf("no incorrect note for %s", strings.Join(missing, ", "))
		}
		return nil
	},
}

var notesExplainCmd = &cobra.Command{
	Use:   "explain <question-id>",
	Short: "Ask the AI tutor why the recorded answer was wrong",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, true)
		if err != nil {
			return err
		}
		defer d.Close(cmd.Context())

		note, ok := d.state.IncorrectNote(args[0])
		if !ok {
			return fmt.Errorf("no incorrect note for %s", args[0])
		}
		if d.tutor == nil {
			return errors.New("AI tutor unavailable: set MUNHAK_LLM_PROVIDER or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), d.cfg.LLM.Timeout)
		defer cancel()
		exp, err := d.tutor.Explain(ctx, note)
		if err != nil {
			return fmt.Errorf("explain %s: %w", note.QuestionID, err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, note.Statement)
		fmt.Fprintf(w, "내 답 %s / 정답 %s\n\n", note.UserAnswer, catalog.AnswerLabel(note.IsTrue))
		fmt.Fprintln(w, exp.Summary)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "핵심:", exp.KeyPoint)
		fmt.Fprintln(w, "팁:", exp.Tip)
		return nil
	},
}

func init() {
	notesListCmd.Flags().String("type", "", "Filter by type (literature, vocab, exam)")

	notesCmd.AddCommand(notesListCmd)
	notesCmd.AddCommand(notesRemoveCmd)
	notesCmd.AddCommand(notesExplainCmd)
}
