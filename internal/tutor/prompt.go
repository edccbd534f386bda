package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/munhak/internal/catalog"
	"github.com/abhisek/munhak/internal/studystate"
)

const systemPrompt = `You are a Korean high-school literature teacher preparing students for the 수능. Students answer O/X statements about poems, novels, classic verse and prose, and vocabulary. Answer only in Korean, in a warm but concise register.`

func buildUserMessage(note studystate.IncorrectNote) string {
	var b strings.Builder

	switch note.Type() {
	case studystate.NoteVocab:
		fmt.Fprintf(&b, "어휘: %s\n", note.SourceTitle)
	default:
		fmt.Fprintf(&b, "작품: %s", note.QuizTitle)
		if note.QuizAuthor != "" {
			fmt.Fprintf(&b, " (%s)", note.QuizAuthor)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "진술: %s\n", note.Statement)
	fmt.Fprintf(&b, "정답: %s\n", catalog.AnswerLabel(note.IsTrue))
	fmt.Fprintf(&b, "학생의 답: %s\n", note.UserAnswer)
	if note.Explanation != "" {
		fmt.Fprintf(&b, "교재 해설: %s\n", note.Explanation)
	}

	b.WriteString(`
Instructions:
1. Explain in 2-3 sentences why the correct answer is O or X, building on the textbook explanation rather than repeating it.
2. Name the one literary concept or word sense the student missed as the key point.
3. Give one tip for recognising the same trap in other O/X statements.
Do not restate the question. Do not use Markdown.`)

	return b.String()
}
