package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestTextPlainFallback(t *testing.T) {
	got, err := Text([]byte("Slide 1\nIntroduction"), "notes.txt")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "Slide 1\nIntroduction" {
		t.Errorf("got %q", got)
	}
}

func TestTextUnknownExtension(t *testing.T) {
	got, err := Text([]byte("raw bytes treated as text"), "mystery.bin")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "raw bytes treated as text" {
		t.Errorf("got %q", got)
	}
}

func TestTextDropsInvalidBytes(t *testing.T) {
	data := []byte{'h', 'i', 0xff, 0xfe, ' ', 't', 'h', 'e', 'r', 'e'}
	got, err := Text(data, "garbled.txt")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "hi there" {
		t.Errorf("got %q, want invalid bytes dropped", got)
	}
}

func TestTextEmptyResult(t *testing.T) {
	_, err := Text([]byte("   \n\t  "), "blank.txt")
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("err = %v, want ErrNoText", err)
	}

	// A file of nothing but undecodable bytes also ends up empty.
	_, err = Text([]byte{0xff, 0xfe, 0xfd}, "binary.txt")
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("err = %v, want ErrNoText", err)
	}
}

func TestTextBadDocx(t *testing.T) {
	// Not a zip archive, so the docx reader must fail, not panic.
	_, err := Text([]byte("definitely not a docx"), "slides.docx")
	if err == nil {
		t.Error("Text accepted a non-docx payload")
	}
}

func TestTextBadPDF(t *testing.T) {
	_, err := Text([]byte("%PDF-1.4 truncated garbage"), "slides.pdf")
	if err == nil {
		t.Error("Text accepted a broken PDF")
	}
	if err != nil && !strings.Contains(err.Error(), "pdf") {
		t.Errorf("error does not mention pdf: %v", err)
	}
}

func TestPlainTextValidUTF8Passthrough(t *testing.T) {
	in := "mixed ascii and 中文 and émojis 🎬"
	if got := plainText([]byte(in)); got != in {
		t.Errorf("plainText altered valid UTF-8: %q", got)
	}
}
