package resume

import (
	"strings"
	"testing"
)

func TestGenerateQuestionsPriority(t *testing.T) {
	questions := GenerateQuestions(
		[]string{"Go", "Elixir"},
		[]string{"Ledger Service", "Search Indexer", "Third Project"},
		[]string{"Acme", "Globex"},
	)

	if len(questions) != maxQuestions {
		t.Fatalf("expected %d questions, got %d", maxQuestions, len(questions))
	}

	want := []struct {
		category Category
		source   string
	}{
		{CategoryProject, "Ledger Service"},
		{CategoryProject, "Search Indexer"},
		{CategoryExperience, "Acme"},
		{CategoryExperience, "Acme / Globex"},
		{CategoryTechnical, "Go"},
	}
	for i, w := range want {
		if questions[i].Category != w.category || questions[i].Source != w.source {
			t.Fatalf("question %d: expected %s/%s, got %s/%s", i, w.category, w.source, questions[i].Category, questions[i].Source)
		}
	}

	// Four questions precede the skill, so the pool is indexed at 4 % 3.
	if questions[4].Text != skillTemplates["Go"][1] {
		t.Fatalf("unexpected Go question: %q", questions[4].Text)
	}
}

func TestGenerateQuestionsSkillsOnly(t *testing.T) {
	questions := GenerateQuestions([]string{"Go", "Elixir", "Go"}, nil, nil)

	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d: %+v", len(questions), questions)
	}
	if questions[0].Text != skillTemplates["Go"][0] {
		t.Fatalf("unexpected first question: %q", questions[0].Text)
	}
	want := "Describe a challenging technical problem you solved using Elixir in a real project."
	if questions[1].Text != want {
		t.Fatalf("expected generic template, got %q", questions[1].Text)
	}
}

func TestGenerateQuestionsShortensLongTitles(t *testing.T) {
	long := strings.Repeat("a", 50)
	questions := GenerateQuestions(nil, []string{long}, nil)

	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	source := questions[0].Source
	if len([]rune(source)) != maxTitleLen-2 || !strings.HasSuffix(source, "…") {
		t.Fatalf("unexpected shortened title %q", source)
	}
	if !strings.Contains(questions[0].Text, source) {
		t.Fatalf("expected question to mention %q", source)
	}
}

func TestGenerateQuestionsEmpty(t *testing.T) {
	if got := GenerateQuestions(nil, nil, nil); len(got) != 0 {
		t.Fatalf("expected no questions, got %+v", got)
	}
}
