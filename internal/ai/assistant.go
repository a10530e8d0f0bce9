package ai

import "context"

// QuestionWriter produces interview questions for a free-text technology stack.
type QuestionWriter interface {
	WriteQuestions(ctx context.Context, techStack string, count int) ([]string, error)
}
