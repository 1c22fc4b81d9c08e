package quizgen

import "fmt"

const maxContentChars = 4000

const systemPrompt = `
You are a multiple-choice question generator for a learning platform.

Your role is to turn a piece of learning material into a short quiz that
checks whether the learner actually understood the material.

Rules:
1. Generate questions only about the provided material. Do not invent facts
   that are not in it.
2. Generate **exactly 3** questions, in increasing difficulty: the first easy,
   the second medium, the third hard.
3. Each question must have **exactly 4** options, labeled "A", "B", "C", "D".
4. Each question must have **exactly one** option with "is_correct": true.
5. All options must be plausible and of similar length; the correct answer
   must not stand out.
6. Never reveal the answer in the question text.

Expected JSON format:

[
  {
    "question": "<question text>",
    "difficulty": "<easy | medium | hard>",
    "options": [
      {"letter": "A", "text": "...", "is_correct": false},
      {"letter": "B", "text": "...", "is_correct": true},
      {"letter": "C", "text": "...", "is_correct": false},
      {"letter": "D", "text": "...", "is_correct": false}
    ]
  }
]

Always return **pure, valid JSON** with no text outside the JSON array and no
markdown fences.
`

func BuildUserPrompt(title, content string) string {
	if len(content) > maxContentChars {
		content = content[:maxContentChars]
	}

	return fmt.Sprintf(
		"Generate 3 multiple-choice questions for the learning material below. "+
			"Follow the format from the system prompt exactly: 3 questions of increasing "+
			"difficulty (easy, medium, hard), 4 labeled options each, exactly one correct.\n\n"+
			"Title: %s\n\nMaterial:\n%s",
		title, content,
	)
}
