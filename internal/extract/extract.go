// Package extract pulls best-effort plain text out of uploaded slide
// documents. Word-processing and PDF formats flatten paragraph, table cell
// and page boundaries to newlines; anything else is decoded as plain text.
package extract

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrNoText is returned when nothing extractable remains. Downstream timeline
// planning has no text to ground itself in, so callers must treat this as
// fatal for the request.
var ErrNoText = errors.New("could not extract any text from the document")

// Text extracts plain text from raw file bytes, dispatching on the filename
// extension.
func Text(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ".docx", ".doc":
		text, err = docxText(data)
	case ".pdf":
		text, err = pdfText(data)
	default:
		text = plainText(data)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

// plainText decodes bytes as UTF-8, dropping undecodable bytes instead of
// failing.
func plainText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	var b strings.Builder
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			data = data[1:]
			continue
		}
		b.WriteRune(r)
		data = data[size:]
	}
	return b.String()
}
