package charstream

import (
	"fmt"

	"github.com/saintfish/chardet"
)

// DetectEncoding samples bytes (typically the first few KB of a source) and
// reports the most likely source encoding, for callers that don't already
// know it and want to pick an encoding name to hand to Open/NewTransducer.
//
// This is a convenience layered on top of the core Stream contract, which
// always requires an explicit encoding name; Open never detects on its own.
func DetectEncoding(sample []byte) (name string, confidence float64, err error) {
	detector := chardet.NewTextDetector()

	best, err := detector.DetectBest(sample)
	if err != nil {
		return "", 0, fmt.Errorf("charstream: detecting encoding: %w", err)
	}

	return best.Charset, float64(best.Confidence) / 100.0, nil //nolint:mnd
}
