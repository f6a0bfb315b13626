package charstream

import "errors"

var (
	// ErrUnknownEncoding is returned by NewNamedEncodingTransducer when the
	// requested source encoding name is not recognized.
	ErrUnknownEncoding = errors.New("charstream: unknown source encoding")
	// ErrNoMark is returned by mark operations when the mark stack is empty.
	ErrNoMark = errors.New("charstream: no mark set")
	// ErrDecoding is the error a Stream reports when its transducer rejects
	// the input; a failed byte-source read is reported as ErrDecoding
	// wrapping the read error.
	ErrDecoding = errors.New("charstream: decoding error")
)
