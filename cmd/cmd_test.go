package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spigell/talent-screener/internal/ai/gemini"
	"github.com/spigell/talent-screener/internal/questionbank"
	"github.com/spigell/talent-screener/internal/screening"
	"github.com/spigell/talent-screener/internal/storage"
	"github.com/spigell/talent-screener/internal/textextract"
)

func TestUploadFromInput(t *testing.T) {
	dir := t.TempDir()
	cv := filepath.Join(dir, "Resume.DOCX")
	if err := os.WriteFile(cv, []byte("docx bytes"), 0o600); err != nil {
		t.Fatal(err)
	}
	notes := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notes, []byte("plain"), 0o600); err != nil {
		t.Fatal(err)
	}

	upload, ok, err := uploadFromInput(` "` + cv + `" `)
	if !ok || err != nil {
		t.Fatalf("expected upload, got ok=%v err=%v", ok, err)
	}
	if upload.Name != "Resume.DOCX" || upload.MediaType != textextract.MediaDOCX || string(upload.Data) != "docx bytes" {
		t.Fatalf("unexpected upload %+v", upload)
	}

	upload, ok, _ = uploadFromInput(notes)
	if !ok || !strings.HasPrefix(upload.MediaType, textextract.MediaText) {
		t.Fatalf("unexpected text upload %+v", upload)
	}

	for _, input := range []string{"", "skip", dir, filepath.Join(dir, "missing.pdf")} {
		if _, ok, _ := uploadFromInput(input); ok {
			t.Fatalf("%q: expected no upload", input)
		}
	}
}

func TestRenderPrintsAssistantMessages(t *testing.T) {
	var out bytes.Buffer
	render(&out, []screening.Message{
		{Role: screening.RoleUser, Text: "hello"},
		{Role: screening.RoleAssistant, Text: "Hi there"},
	})

	if got := out.String(); got != "assistant: Hi there\n\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestPrintHistory(t *testing.T) {
	var out bytes.Buffer
	if err := printHistory(&out, nil, 10); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "no screenings recorded yet") {
		t.Fatalf("unexpected empty output %q", out.String())
	}

	records := []storage.Record{
		{Timestamp: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), Name: "Grace Hopper", TechStack: "COBOL,  Fortran", QuestionsAsked: 4, ScreeningComplete: true},
		{Timestamp: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), Name: "Ada Lovelace"},
	}
	out.Reset()
	if err := printHistory(&out, records, 1); err != nil {
		t.Fatal(err)
	}

	text := out.String()
	if !strings.Contains(text, "Grace Hopper") || strings.Contains(text, "Ada Lovelace") {
		t.Fatalf("limit not applied:\n%s", text)
	}
	if !strings.Contains(text, "2026-03-02 10:00:00") || !strings.Contains(text, "COBOL, Fortran") {
		t.Fatalf("unexpected row:\n%s", text)
	}
}

func TestPrintBank(t *testing.T) {
	bank := questionbank.Default()

	var out bytes.Buffer
	if err := printBank(&out, bank); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(bank.Keys())+1 {
		t.Fatalf("expected header plus %d rows, got %d", len(bank.Keys()), len(lines))
	}

	out.Reset()
	if err := printAliases(&out, bank); err != nil {
		t.Fatal(err)
	}
	lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(bank.Aliases())+1 {
		t.Fatalf("expected header plus %d aliases, got %d", len(bank.Aliases()), len(lines))
	}
}

func TestNewQuestionWriter(t *testing.T) {
	writer, err := newQuestionWriter(context.Background(), &AIConfig{Enabled: false}, nil)
	if writer != nil || err != nil {
		t.Fatalf("expected disabled writer without error, got %v %v", writer, err)
	}

	if _, err := newQuestionWriter(context.Background(), &AIConfig{Enabled: true, Provider: "openai"}, nil); err == nil {
		t.Fatal("expected unsupported provider error")
	}

	t.Setenv("GEMINI_API_KEY", "")
	_, err = newQuestionWriter(context.Background(), &AIConfig{Enabled: true, Gemini: &gemini.Config{}}, nil)
	if err == nil || !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Fatalf("expected missing key error, got %v", err)
	}
}

func TestRedactedHidesKey(t *testing.T) {
	config := &Config{AI: &AIConfig{Gemini: &gemini.Config{APIKey: "secret", Model: "m"}}}

	out := redacted(config)
	if out.AI.Gemini.APIKey != "***" || out.AI.Gemini.Model != "m" {
		t.Fatalf("unexpected redacted config %+v", out.AI.Gemini)
	}
	if config.AI.Gemini.APIKey != "secret" {
		t.Fatal("original config modified")
	}
}

func TestLoadBankFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	data := `technologies:
  elixir:
    fresher: ["What is a process in the BEAM?"]
    experienced: ["How would you design a supervision tree for flaky IO?"]
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	bank, err := loadBank(&QuestionsConfig{BankFile: path})
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if keys := bank.Keys(); len(keys) != 1 || keys[0] != "elixir" {
		t.Fatalf("unexpected keys %v", keys)
	}

	if bank, _ := loadBank(nil); len(bank.Keys()) != len(questionbank.Default().Keys()) {
		t.Fatal("expected embedded bank when no file configured")
	}
}
