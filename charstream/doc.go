// Package charstream provides a streaming character-decoding pipeline. A
// Stream converts bytes read from a named source encoding into a sequence of
// grapheme clusters (plain runes, except that a CRLF pair is always coalesced
// into a single two-rune cluster so callers never see a lone CR followed by
// an LF as two separate reads).
//
// Decoding happens on a dedicated background goroutine per Stream, reading
// ahead up to a configurable watermark so that a slow consumer does not stall
// a fast producer and vice versa. The goroutine is started by Open and
// stopped by Close; a Stream is not reusable once closed.
//
// A Stream also supports a stack of marks: MarkSet remembers the current read
// position so that MarkReset can later replay every cluster read since, as if
// the stream had been rewound. This is implemented by recording clusters
// consumed after a mark rather than by seeking the underlying byte source,
// which may not support seeking at all.
//
// A Stream is only safe for use by a single goroutine at a time on the
// consumer side; the producer goroutine is internal and does not count
// against that rule.
package charstream
