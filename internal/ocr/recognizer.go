// Package ocr defines the external text-recognition capability the
// grading pipeline consumes. Rasterization, image enhancement and the
// recognition call itself live outside this module; the pipeline only
// sees recognized text plus confidence.
package ocr

import "context"

// TokenConfidence is the recognizer's confidence for a single token.
type TokenConfidence struct {
	Token      string
	Confidence float64
}

// Result is the output of recognizing one sheet (all pages concatenated).
type Result struct {
	// Text is the full recognized text in reading order.
	Text string

	// Confidence is the aggregate recognition confidence in [0,1].
	Confidence float64

	// Tokens carries per-token confidence when the recognizer provides it.
	Tokens []TokenConfidence
}

// Recognizer is the external recognition capability.
type Recognizer interface {
	// Recognize returns the text of one sheet identified by ref
	// (a file path, object key, or whatever the host system uses).
	Recognize(ctx context.Context, ref string) (*Result, error)
}

// MeanTokenConfidence averages the per-token confidences, falling back
// to the aggregate confidence when no token detail is available.
func (r *Result) MeanTokenConfidence() float64 {
	if len(r.Tokens) == 0 {
		return r.Confidence
	}
	var sum float64
	for _, t := range r.Tokens {
		sum += t.Confidence
	}
	return sum / float64(len(r.Tokens))
}
