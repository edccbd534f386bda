package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/munhak/internal/catalog"
	"github.com/abhisek/munhak/internal/screens/bookmarks"
	"github.com/abhisek/munhak/internal/studystate"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Manage bookmarked questions",
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks by work title",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close(cmd.Context())

		items := bookmarks.Sorted(d.state.Bookmarks())
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s  %s  %s  %s\n", pad("ID", 22), pad("작품", 16), pad("정답", 4), "진술")
		fmt.Fprintln(w, strings.Repeat("─", 100))
		for _, b := range items {
			title := b.QuizTitle
			if b.Type() == studystate.NoteVocab {
				title = b.SourceTitle
			}
			fmt.Fprintf(w, "%s  %s  %s  %s\n",
				pad(b.QuestionID, 22), pad(clip(title, 16), 16),
				pad(catalog.AnswerLabel(b.IsTrue), 4), clip(b.Statement, 50))
		}
		fmt.Fprintf(w, "\n%d bookmarks\n", len(items))
		return nil
	},
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add <question-id>",
	Short: "Bookmark a quiz question or vocabulary term by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close(cmd.Context())

		item, err := bookmarkFor(d.catalog, args[0])
		if err != nil {
			return err
		}
		d.state.AddBookmark(item)
		fmt.Fprintln(cmd.OutOrStdout(), "bookmarked", item.QuestionID)
		return nil
	},
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:   "remove <question-id>",
	Short: "Remove a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close(cmd.Context())

		if !d.state.IsBookmarked(args[0]) {
			return fmt.Errorf("%s is not bookmarked", args[0])
		}
		d.state.RemoveBookmark(args[0])
		fmt.Fprintln(cmd.OutOrStdout(), "removed", args[0])
		return nil
	},
}

func bookmarkFor(cat *catalog.Catalog, id string) (studystate.BookmarkItem, error) {
	if p, q, ok := cat.QuestionByID(id); ok {
		return catalog.Bookmark(p, q), nil
	}
	if v, ok := cat.VocabByID(id); ok {
		return catalog.VocabBookmark(v), nil
	}
	return studystate.BookmarkItem{}, fmt.Errorf("unknown question or vocabulary id %q", id)
}

func init() {
	bookmarksCmd.AddCommand(bookmarksListCmd)
	bookmarksCmd.AddCommand(bookmarksAddCmd)
	bookmarksCmd.AddCommand(bookmarksRemoveCmd)
}
