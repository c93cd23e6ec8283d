package aiquiz

import (
	"fmt"

	"google.golang.org/genai"
)

func BuildPrompt(req GenerationRequest) string {
	return fmt.Sprintf(
		"Generate a quiz about %q for a %s level. "+
			"The quiz should have exactly %d questions and be designed to be completed within %d minutes. "+
			"For each question, provide the question text, exactly four options (labeled A, B, C, D), "+
			"and the index (0-3) of the single correct option. "+
			"Format the output as a JSON object matching the provided response schema.",
		req.Topic, req.Level, req.NumberOfQuestions, req.TimeLimit,
	)
}

// ResponseSchema is the structured-output contract sent with every generation call.
func ResponseSchema(req GenerationRequest) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: fmt.Sprintf("A JSON object representing a quiz about %s.", req.Topic),
		Properties: map[string]*genai.Schema{
			"quizTitle": {
				Type:        genai.TypeString,
				Description: fmt.Sprintf("A title for the quiz about %s", req.Topic),
			},
			"questions": {
				Type:        genai.TypeArray,
				Description: fmt.Sprintf("An array of %d quiz questions.", req.NumberOfQuestions),
				Items: &genai.Schema{
					Type:        genai.TypeObject,
					Description: "A single quiz question with options and the correct answer.",
					Properties: map[string]*genai.Schema{
						"questionText": {
							Type:        genai.TypeString,
							Description: "The text of the quiz question.",
						},
						"options": {
							Type:        genai.TypeArray,
							Description: "An array containing exactly four answer options for the question.",
							MinItems:    genai.Ptr[int64](OptionsPerQuestion),
							MaxItems:    genai.Ptr[int64](OptionsPerQuestion),
							Items: &genai.Schema{
								Type:        genai.TypeString,
								Description: "An option for the question (e.g., 'A. Option text').",
							},
						},
						"correctAnswer": {
							Type:        genai.TypeInteger,
							Description: "The index of the correct option (0, 1, 2 or 3).",
							Minimum:     genai.Ptr[float64](0),
							Maximum:     genai.Ptr[float64](OptionsPerQuestion - 1),
						},
					},
					Required:         []string{"questionText", "options", "correctAnswer"},
					PropertyOrdering: []string{"questionText", "options", "correctAnswer"},
				},
			},
		},
		Required:         []string{"quizTitle", "questions"},
		PropertyOrdering: []string{"quizTitle", "questions"},
	}
}
