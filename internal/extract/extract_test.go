package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Word Counts</title>
</head>
<body>
    <header>
        <h1>Site Header</h1>
        <nav>Navigation</nav>
    </header>
    <main>
        <article>
            <h1>Why Editors Count Words</h1>
            <p>Counting words is the oldest habit of editors. Every manuscript gets measured before it gets read, and the measurement shapes the reading.</p>
            <p>Sentence length tells a different story than word totals. A page of short declaratives reads nothing like a page of nested clauses, even at the same count.</p>
            <p>Frequency tables surface the crutch words a writer leans on. Most drafts repeat a handful of fillers far more often than their authors expect.</p>
        </article>
    </main>
    <aside>
        <p>Sidebar content that should be filtered out.</p>
    </aside>
    <footer>
        <p>Footer boilerplate</p>
    </footer>
</body>
</html>`

func TestToTextPlainText(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		source string
		want   string
	}{
		{
			name:   "paragraph structure passes through untouched",
			data:   "First line.\n\nSecond paragraph with   spacing kept.",
			source: "notes.txt",
			want:   "First line.\n\nSecond paragraph with   spacing kept.",
		},
		{
			name:   "leading BOM is stripped",
			data:   "\ufeffHello, World!",
			source: "bom.txt",
			want:   "Hello, World!",
		},
		{
			name:   "empty input",
			data:   "",
			source: "empty.txt",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToText([]byte(tt.data), tt.source, "")
			if err != nil {
				t.Fatalf("ToText() error = %v, expected no error", err)
			}
			if got != tt.want {
				t.Errorf("ToText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToTextInvalidEncoding(t *testing.T) {
	_, err := ToText([]byte{0x80, 0x81, 0xfe}, "garbage.txt", "")
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("ToText() error = %v, want ErrInvalidEncoding", err)
	}
}

func TestToTextHTMLSelector(t *testing.T) {
	tests := []struct {
		name        string
		selector    string
		expectError bool
		contains    []string
		notContains []string
	}{
		{
			name:        "article paragraphs",
			selector:    "article p",
			contains:    []string{"oldest habit of editors", "Sentence length tells", "crutch words"},
			notContains: []string{"Site Header", "Sidebar content", "Footer boilerplate"},
		},
		{
			name:        "single element by tag",
			selector:    "footer",
			contains:    []string{"Footer boilerplate"},
			notContains: []string{"oldest habit"},
		},
		{
			name:        "selector with no matches",
			selector:    ".does-not-exist",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToText([]byte(articleHTML), "page.html", tt.selector)

			if tt.expectError {
				if err == nil {
					t.Errorf("ToText() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("ToText() error = %v, expected no error", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ToText() result missing %q:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("ToText() result should not contain %q:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestToTextArticleExtraction(t *testing.T) {
	got, err := ToText([]byte(articleHTML), "https://example.com/word-counts", "")
	if err != nil {
		t.Fatalf("ToText() error = %v, expected no error", err)
	}

	for _, want := range []string{"oldest habit of editors", "Frequency tables"} {
		if !strings.Contains(got, want) {
			t.Errorf("extracted article missing %q:\n%s", want, got)
		}
	}
	for _, unwanted := range []string{"Navigation", "Footer boilerplate"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("extracted article should not contain %q:\n%s", unwanted, got)
		}
	}
}

func TestToTextDOCX(t *testing.T) {
	raw := buildDOCX(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	tests := []struct {
		name   string
		source string
	}{
		{"by extension", "essay.docx"},
		{"by zip sniff", "essay.bin"},
	}
	want := "First paragraph.\n\nSecond paragraph."

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToText(raw, tt.source, "")
			if err != nil {
				t.Fatalf("ToText() error = %v, expected no error", err)
			}
			if got != want {
				t.Errorf("ToText() = %q, want %q", got, want)
			}
		})
	}
}

func TestToTextDOCXMissingDocument(t *testing.T) {
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	f, err := zw.Create("word/styles.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := f.Write([]byte("<styles/>")); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = ToText(b.Bytes(), "broken.docx", "")
	if err == nil || !strings.Contains(err.Error(), "not found in archive") {
		t.Errorf("ToText() error = %v, want missing document.xml error", err)
	}
}

func TestSourceExt(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"report.PDF", ".pdf"},
		{"essay.docx", ".docx"},
		{"https://example.com/page.html?q=1", ".html"},
		{"https://example.com/path#frag", ""},
		{"noextension", ""},
		{"dir.v2/file", ""},
		{"archive.tar.gz", ".gz"},
		{"-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := sourceExt(tt.source); got != tt.want {
				t.Errorf("sourceExt(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses spaces and blank runs",
			in:   "  a   b  \n\n\n\nc",
			want: "a b\n\nc",
		},
		{
			name: "drops leading blank lines",
			in:   "\n\n\nfirst",
			want: "first",
		},
		{
			name: "drops trailing blank lines",
			in:   "last\n\n\n",
			want: "last",
		},
		{
			name: "keeps single paragraph break",
			in:   "one\n\ntwo",
			want: "one\n\ntwo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeText(tt.in); got != tt.want {
				t.Errorf("normalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func buildDOCX(t *testing.T, bodyXML string) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	doc := `<?xml version="1.0" encoding="UTF-8"?>` + bodyXML
	if _, err := f.Write([]byte(doc)); err != nil {
		t.Fatalf("write xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return b.Bytes()
}
