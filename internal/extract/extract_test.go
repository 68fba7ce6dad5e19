package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractTextFromBytes_DocxParagraphs(t *testing.T) {
	doc := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p></w:body></w:document>`
	data := buildDocx(t, doc)

	text, err := ExtractTextFromBytes(context.Background(), data, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "resume.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if !strings.Contains(text, "Jane Doe") || !strings.Contains(text, "Software Engineer") {
		t.Fatalf("unexpected docx text: %q", text)
	}
	if !strings.Contains(text, "\n") {
		t.Fatalf("expected paragraph break in %q", text)
	}
}

func TestExtractTextFromBytes_ZipDocxNormalizes(t *testing.T) {
	doc := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>hello</w:t></w:r></w:p></w:body></w:document>`
	data := buildDocx(t, doc)

	if _, err := ExtractTextFromBytes(context.Background(), data, "application/zip", "test.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestExtractTextFromBytes_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = ExtractTextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtractTextFromBytes_TexPassthrough(t *testing.T) {
	src := "\\documentclass{article}\n\\begin{document}\n\\name{Jane Doe}\n\\end{document}\n"

	text, err := ExtractTextFromBytes(context.Background(), []byte(src), "text/plain; charset=utf-8", "resume.tex")
	if err != nil {
		t.Fatalf("extract tex: %v", err)
	}
	if text != src {
		t.Fatalf("expected verbatim passthrough, got %q", text)
	}
}

func TestIsLaTeX(t *testing.T) {
	if !IsLaTeX("resume.tex", "text/plain") {
		t.Fatalf("expected .tex to be latex")
	}
	if !IsLaTeX("resume", "text/x-tex") {
		t.Fatalf("expected text/x-tex to be latex")
	}
	if IsLaTeX("resume.pdf", "application/pdf") {
		t.Fatalf("expected pdf not to be latex")
	}
}
