package ocr

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileRecognizer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.txt")
	if err := os.WriteFile(path, []byte("Q1: an answer"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewFileRecognizer(0.8)
	res, err := r.Recognize(context.Background(), path)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if res.Text != "Q1: an answer" {
		t.Errorf("text = %q", res.Text)
	}
	if res.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", res.Confidence)
	}
}

func TestFileRecognizerDefaultConfidence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.txt")
	if err := os.WriteFile(path, []byte("text"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := NewFileRecognizer(0).Recognize(context.Background(), path)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if res.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", res.Confidence)
	}
}

func TestFileRecognizerMissingFile(t *testing.T) {
	if _, err := NewFileRecognizer(0.9).Recognize(context.Background(), "/does/not/exist.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
