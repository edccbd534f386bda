package tutor

import "github.com/abhisek/munhak/internal/llm"

// ExplanationSchema is the response shape requested from the model.
var ExplanationSchema = &llm.Schema{
	Name:        "note-explanation",
	Description: "Why the learner's O/X answer was wrong, with one key point and one study tip",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "2-3 sentences in Korean explaining why the statement is true or false",
			},
			"keyPoint": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The single concept the learner should remember, in Korean",
			},
			"tip": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "One concrete tip for similar O/X questions, in Korean",
			},
		},
		"required":             []any{"summary", "keyPoint", "tip"},
		"additionalProperties": false,
	},
}
