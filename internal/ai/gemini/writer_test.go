package gemini

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubGenerator struct {
	system string
	prompt string
	output string
	err    error
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, prompt string) (string, error) {
	s.system = system
	s.prompt = prompt
	return s.output, s.err
}

func TestWriteQuestionsParsesJSONArray(t *testing.T) {
	gen := &stubGenerator{output: `["How does the Go scheduler park goroutines?", "When would you pick Redis streams over lists?"]`}
	w := NewQuestionWriter(gen, nil, 0)

	got, err := w.WriteQuestions(context.Background(), " Go, Redis ", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"How does the Go scheduler park goroutines?",
		"When would you pick Redis streams over lists?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if gen.system != systemInstruction {
		t.Fatalf("unexpected system instruction %q", gen.system)
	}
	if !strings.Contains(gen.prompt, "stack: Go, Redis") || !strings.Contains(gen.prompt, "exactly 5 technical") {
		t.Fatalf("prompt missing stack or count:\n%s", gen.prompt)
	}
	if strings.Contains(gen.prompt, "{{") {
		t.Fatalf("prompt has unreplaced placeholders:\n%s", gen.prompt)
	}
}

func TestWriteQuestionsCapsAtCount(t *testing.T) {
	gen := &stubGenerator{output: "```json\n[\"One long question here?\", \"Two long question here?\", \"Three long question here?\"]\n```"}
	got, err := NewQuestionWriter(gen, zap.NewNop(), 50).WriteQuestions(context.Background(), "Rust", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1] != "Two long question here?" {
		t.Fatalf("unexpected questions %v", got)
	}
}

func TestWriteQuestionsErrors(t *testing.T) {
	tests := []struct {
		name  string
		gen   *stubGenerator
		stack string
		count int
	}{
		{name: "empty stack", gen: &stubGenerator{}, stack: "  ", count: 3},
		{name: "zero count", gen: &stubGenerator{}, stack: "Go", count: 0},
		{name: "generator failure", gen: &stubGenerator{err: errors.New("boom")}, stack: "Go", count: 3},
		{name: "no questions", gen: &stubGenerator{output: "Sorry, I cannot help with that."}, stack: "Go", count: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewQuestionWriter(tt.gen, nil, 0).WriteQuestions(context.Background(), tt.stack, tt.count); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestWriteQuestionsLogsTruncatedPreviews(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	gen := &stubGenerator{output: `["How do Kafka consumer groups rebalance?"]`}

	if _, err := NewQuestionWriter(gen, zap.New(core), 8).WriteQuestions(context.Background(), "Kafka", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.FilterMessage("gemini generate content response").All()
	if len(entries) != 1 {
		t.Fatalf("expected one response log, got %d", len(entries))
	}
	preview := entries[0].ContextMap()["response_preview"]
	if preview != `["How do...` {
		t.Fatalf("unexpected preview %q", preview)
	}
}

func TestParseQuestionsFallsBackToLines(t *testing.T) {
	raw := `Here are your questions:
1. How would you tune PostgreSQL autovacuum for a write-heavy table?
- Why?
* When does Docker invalidate a build cache layer?
"How do you profile a slow Django view?",
Good luck!`

	got := parseQuestions(raw)
	want := []string{
		"How would you tune PostgreSQL autovacuum for a write-heavy table?",
		"When does Docker invalidate a build cache layer?",
		"How do you profile a slow Django view?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := map[string]string{
		"```json\n[\"a\"]\n```": `["a"]`,
		"```\n[\"b\"]\n```":     `["b"]`,
		"  [\"c\"]  ":           `["c"]`,
	}
	for in, want := range tests {
		if got := extractJSON(in); got != want {
			t.Fatalf("%q: expected %q, got %q", in, want, got)
		}
	}
}
