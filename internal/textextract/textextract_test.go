package textextract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestExtractPlainText(t *testing.T) {
	e := New(Config{}, zap.NewNop())

	got, err := e.Extract([]byte("  Jane Doe\nGo, Kubernetes \n"), "text/plain; charset=utf-8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Jane Doe\nGo, Kubernetes" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestExtractCapsCharacters(t *testing.T) {
	e := New(Config{MaxChars: 10}, nil)

	got, err := e.Extract([]byte(strings.Repeat("é", 25)), MediaText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len([]rune(got)) != 10 {
		t.Fatalf("expected 10 characters, got %d", len([]rune(got)))
	}
}

func TestExtractErrors(t *testing.T) {
	t.Parallel()

	e := New(Config{MaxBytes: 64}, nil)

	tests := []struct {
		name      string
		data      []byte
		mediaType string
		want      error
	}{
		{name: "too large", data: bytes.Repeat([]byte("a"), 65), mediaType: MediaText, want: ErrTooLarge},
		{name: "image", data: []byte{0x89, 'P', 'N', 'G'}, mediaType: "image/png", want: ErrNoText},
		{name: "unsupported", data: []byte("{}"), mediaType: "application/json", want: ErrUnsupportedType},
		{name: "blank text", data: []byte(" \n\t "), mediaType: MediaText, want: ErrNoText},
		{name: "broken pdf", data: []byte("%PDF-1.4 nonsense"), mediaType: MediaPDF, want: ErrUnreadable},
		{name: "broken docx", data: []byte("not a zip"), mediaType: MediaDOCX, want: ErrUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := e.Extract(tt.data, tt.mediaType)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestExtractDOCX(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Engineer at Acme &amp; Co, Berlin</w:t></w:r></w:p>` +
		`<w:p></w:p>` +
		`</w:body></w:document>`

	e := New(Config{}, nil)
	got, err := e.Extract(buildDOCX(t, body), MediaDOCX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Jane Doe\nEngineer at Acme & Co, Berlin" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestDocxPlainText(t *testing.T) {
	got := docxPlainText(`<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p><w:p><w:t>&lt;3</w:t></w:p>`)
	if got != "Line one\nLine two\n<3" {
		t.Fatalf("unexpected text %q", got)
	}
}

func buildDOCX(t *testing.T, document string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/document.xml":            document,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}
