package extract

import (
	"bytes"
	"fmt"
	"strings"

	dslipak "github.com/dslipak/pdf"
	ledongthuc "github.com/ledongthuc/pdf"
)

// pdfText extracts per-page text, joining pages with newlines. The primary
// reader is tried first and the alternate library takes over if it fails;
// both readers are known to panic on malformed files, hence the recover.
func pdfText(data []byte) (string, error) {
	text, err := primaryPDFText(data)
	if err == nil {
		return text, nil
	}

	text, ferr := fallbackPDFText(data)
	if ferr == nil {
		return text, nil
	}

	return "", fmt.Errorf("read pdf: %w (fallback: %v)", err, ferr)
}

func primaryPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panicked: %v", r)
		}
	}()

	reader, err := ledongthuc.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(content) != "" {
			pages = append(pages, content)
		}
	}

	return strings.Join(pages, "\n"), nil
}

func fallbackPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fallback pdf reader panicked: %v", r)
		}
	}()

	reader, err := dslipak.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(content) != "" {
			pages = append(pages, content)
		}
	}

	return strings.Join(pages, "\n"), nil
}
