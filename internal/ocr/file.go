package ocr

import (
	"context"
	"fmt"
	"os"
)

// FileRecognizer reads already-recognized sheet text from disk. It is
// the bridge for hosts that run recognition out of band and hand this
// module plain text files.
type FileRecognizer struct {
	// Confidence is reported for every sheet, since plain text files
	// carry no per-token detail. Zero means fully trusted (1.0).
	Confidence float64
}

// NewFileRecognizer creates a FileRecognizer reporting the given
// aggregate confidence for every sheet.
func NewFileRecognizer(confidence float64) *FileRecognizer {
	return &FileRecognizer{Confidence: confidence}
}

// Recognize reads the file at ref and returns its content as the
// recognized text.
func (f *FileRecognizer) Recognize(_ context.Context, ref string) (*Result, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("read sheet text: %w", err)
	}

	conf := f.Confidence
	if conf <= 0 {
		conf = 1.0
	}
	return &Result{Text: string(data), Confidence: conf}, nil
}

var _ Recognizer = (*FileRecognizer)(nil)
