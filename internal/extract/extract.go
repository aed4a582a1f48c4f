// Package extract turns fetched source bytes into analyzable plain text.
// It recognizes PDF, DOCX, and HTML payloads and falls back to UTF-8 text.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/ledongthuc/pdf"
)

// ErrInvalidEncoding reports source bytes that are not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("source is not valid UTF-8 text")

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")
)

// ToText extracts plain text from raw source bytes. The format is decided by
// the source name's extension first and content sniffing second:
//
//   - PDF pages via their embedded text
//   - DOCX paragraphs from word/document.xml
//   - HTML through a CSS selector when given, otherwise article extraction
//   - anything else passes through as UTF-8 text
//
// Markup formats are whitespace-normalized; plain text is returned verbatim
// so line and paragraph structure survives.
func ToText(data []byte, source, selector string) (string, error) {
	ext := sourceExt(source)

	switch {
	case ext == ".pdf" || bytes.HasPrefix(data, pdfMagic):
		return fromPDF(data)
	case ext == ".docx" || bytes.HasPrefix(data, zipMagic):
		return fromDOCX(data)
	case ext == ".html" || ext == ".htm" || ext == ".xhtml" || sniffsAsHTML(data):
		return fromHTML(data, source, selector)
	default:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: %q", ErrInvalidEncoding, source)
		}
		return strings.TrimPrefix(string(data), "\uFEFF"), nil
	}
}

// sourceExt returns the lowercased extension of a path or URL source,
// ignoring any query string or fragment.
func sourceExt(source string) string {
	if i := strings.IndexAny(source, "?#"); i >= 0 {
		source = source[:i]
	}
	if i := strings.LastIndex(source, "."); i >= 0 && !strings.ContainsAny(source[i:], "/\\") {
		return strings.ToLower(source[i:])
	}
	return ""
}

func sniffsAsHTML(data []byte) bool {
	return strings.HasPrefix(http.DetectContentType(data), "text/html")
}

func fromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no extractable text found in PDF")
	}
	return normalizeText(b.String()), nil
}

func fromDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX archive: %w", err)
	}

	xmlData, err := readArchiveFile(zr, "word/document.xml")
	if err != nil {
		return "", err
	}

	text, err := docxText(xmlData)
	if err != nil {
		return "", err
	}
	return normalizeText(text), nil
}

func readArchiveFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}

// docxText walks the document XML and collects the text runs, separating
// paragraph elements with blank lines so paragraph counts survive extraction.
func docxText(xmlData []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(xmlData))
	var b strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to decode document XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "p":
				if b.Len() > 0 {
					b.WriteString("\n\n")
				}
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

func fromHTML(data []byte, source, selector string) (string, error) {
	if selector != "" {
		return selectorText(data, selector)
	}

	pageURL := &url.URL{}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if u, err := url.Parse(source); err == nil {
			pageURL = u
		}
	}

	article, err := readability.FromReader(bytes.NewReader(data), pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract article content: %w", err)
	}
	return normalizeText(article.TextContent), nil
}

func selectorText(data []byte, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	var parts []string
	selection.Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return "", fmt.Errorf("selector %s matched only empty elements", selector)
	}
	return normalizeText(strings.Join(parts, "\n\n")), nil
}

// normalizeText collapses runs of spaces inside lines and runs of blank lines
// down to one, keeping single blank lines so paragraph boundaries remain.
func normalizeText(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	pendingBlank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			pendingBlank = true
			continue
		}
		if pendingBlank && len(out) > 0 {
			out = append(out, "")
		}
		pendingBlank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
