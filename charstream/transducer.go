package charstream

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ConvertStatus reports the outcome of a single Transducer.Convert or
// Transducer.Flush call.
type ConvertStatus int

const (
	// ConvertOK means every rune decodable from the supplied input (given
	// the room available in outRunes) was produced.
	ConvertOK ConvertStatus = iota
	// ConvertOutputFull means outRunes was filled before the available
	// input was exhausted; call Convert again with a fresh outRunes to get
	// the rest.
	ConvertOutputFull
	// ConvertIncompleteTrailing means inBytes ended mid-sequence; the
	// trailing partial bytes are not counted in bytesConsumed, so the caller
	// must supply them again, followed by more bytes, on a later Convert call.
	ConvertIncompleteTrailing
	// ConvertError means the underlying encoding rejected the input
	// outright (as opposed to simply needing more of it).
	ConvertError
)

// Transducer is the external encoding-to-Unicode collaborator a Stream
// drives. It mirrors golang.org/x/text/transform.Transformer's contract
// (dst/src byte buffers, an atEOF flag, and a short-buffer-vs-hard-error
// distinction in the returned error) but reports its output as decoded runes
// instead of re-encoded UTF-8 bytes, since that is what a Stream ultimately
// needs to hand to its consumer.
type Transducer interface {
	// Convert decodes as many runes as will fit in outRunes from inBytes.
	// bytesConsumed reports how many bytes of inBytes were actually
	// consumed from the underlying encoding transform this call (it can be
	// 0 on a call that only drains previously transformed, not-yet-emitted
	// output — callers should keep calling Convert with the same unconsumed
	// remainder of inBytes until bytesConsumed is 0 and runesProduced is 0
	// before reading more source bytes).
	Convert(inBytes []byte, outRunes []rune) (status ConvertStatus, bytesConsumed, runesProduced int)
	// Flush decodes any remaining buffered state once the byte source is
	// exhausted (atEOF). Call it repeatedly until it reports 0 runes
	// produced and a status other than ConvertOutputFull.
	Flush(outRunes []rune) (status ConvertStatus, runesProduced int)
}

// NewTransducer constructs the default Transducer implementation for a named
// source encoding (for example "utf-8", "iso-8859-1", "shift_jis").
func NewTransducer(sourceEncodingName string) (Transducer, error) {
	return NewNamedEncodingTransducer(sourceEncodingName)
}

// namedEncodingTransducer implements Transducer on top of
// golang.org/x/net/html/charset's encoding registry and
// golang.org/x/text/transform's byte-oriented Transform contract.
type namedEncodingTransducer struct {
	decoder transform.Transformer
	scratch []byte
	// buffered holds UTF-8 bytes already produced by decoder.Transform but
	// not yet emitted as runes, because the last Convert/Flush call's
	// outRunes filled up first.
	buffered []byte
	lastErr  error
}

// NewNamedEncodingTransducer looks up name in the same encoding registry
// golang.org/x/net/html/charset uses for HTML/MIME charset labels and
// returns a Transducer that decodes bytes in that encoding into runes.
func NewNamedEncodingTransducer(name string) (Transducer, error) {
	enc, _, _ := charset.Lookup(name)
	if enc == nil {
		if !isUTF8Alias(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
		}

		return &namedEncodingTransducer{
			decoder: unicode.UTF8.NewDecoder(),
			scratch: make([]byte, defaultByteChunkSize),
		}, nil
	}

	return &namedEncodingTransducer{
		decoder: enc.NewDecoder(),
		scratch: make([]byte, defaultByteChunkSize),
	}, nil
}

func isUTF8Alias(name string) bool {
	switch name {
	case "utf-8", "utf8", "UTF-8", "UTF8", "":
		return true
	default:
		return false
	}
}

func (d *namedEncodingTransducer) Convert(inBytes []byte, outRunes []rune) (ConvertStatus, int, int) {
	bytesConsumed := 0

	if len(d.buffered) == 0 {
		nDst, nSrc, err := d.decoder.Transform(d.scratch, inBytes, false)
		d.buffered = append(d.buffered[:0], d.scratch[:nDst]...)
		bytesConsumed = nSrc
		d.lastErr = err
	}

	runesProduced := d.drainBuffered(outRunes)

	return d.statusFor(runesProduced), bytesConsumed, runesProduced
}

func (d *namedEncodingTransducer) Flush(outRunes []rune) (ConvertStatus, int) {
	if len(d.buffered) == 0 {
		nDst, _, err := d.decoder.Transform(d.scratch, nil, true)
		d.buffered = append(d.buffered[:0], d.scratch[:nDst]...)
		d.lastErr = err
	}

	runesProduced := d.drainBuffered(outRunes)

	return d.statusFor(runesProduced), runesProduced
}

// drainBuffered copies as many complete runes out of d.buffered into
// outRunes as will fit, leaving any trailing incomplete UTF-8 sequence (or
// anything past outRunes' capacity) in d.buffered for next time.
func (d *namedEncodingTransducer) drainBuffered(outRunes []rune) int {
	produced := 0

	for len(d.buffered) > 0 && produced < len(outRunes) {
		if !utf8.FullRune(d.buffered) {
			break
		}

		r, size := utf8.DecodeRune(d.buffered)
		outRunes[produced] = r
		produced++
		d.buffered = d.buffered[size:]
	}

	return produced
}

func (d *namedEncodingTransducer) statusFor(runesProduced int) ConvertStatus {
	switch {
	case len(d.buffered) > 0:
		return ConvertOutputFull
	case d.lastErr == transform.ErrShortSrc:
		return ConvertIncompleteTrailing
	case d.lastErr != nil && d.lastErr != transform.ErrShortDst: //nolint:errorlint
		return ConvertError
	default:
		return ConvertOK
	}
}
