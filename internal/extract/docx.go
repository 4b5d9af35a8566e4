package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/wml/ctypes"
)

// docxText reads paragraph and table cell text from a Word document. Blank
// paragraphs are skipped; each paragraph and each cell becomes one line.
func docxText(data []byte) (string, error) {
	// godocx opens by path, so stage the bytes in a temp file.
	tmp, err := os.CreateTemp("", "slidecast-*.docx")
	if err != nil {
		return "", fmt.Errorf("stage docx: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("stage docx: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("stage docx: %w", err)
	}

	doc, err := godocx.OpenDocument(tmp.Name())
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var lines []string
	for _, child := range doc.Document.Body.Children {
		if child.Para != nil {
			if text := paragraphText(child.Para.GetCT()); strings.TrimSpace(text) != "" {
				lines = append(lines, text)
			}
		}
		if child.Table != nil {
			lines = append(lines, tableText(child.Table.GetCT())...)
		}
	}

	return strings.Join(lines, "\n"), nil
}

func paragraphText(p *ctypes.Paragraph) string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	for _, child := range p.Children {
		if child.Run == nil {
			continue
		}
		for _, rc := range child.Run.Children {
			if rc.Text != nil {
				b.WriteString(rc.Text.Text)
			}
		}
	}
	return b.String()
}

func tableText(t *ctypes.Table) []string {
	if t == nil {
		return nil
	}
	var lines []string
	for _, rc := range t.RowContents {
		if rc.Row == nil {
			continue
		}
		for _, cc := range rc.Row.Contents {
			if cc.Cell == nil {
				continue
			}
			for _, bc := range cc.Cell.Contents {
				if bc.Paragraph == nil {
					continue
				}
				if text := strings.TrimSpace(paragraphText(bc.Paragraph)); text != "" {
					lines = append(lines, text)
				}
			}
		}
	}
	return lines
}
