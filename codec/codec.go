// Package codec handles the byte-layer concern vt.Screen deliberately
// stays out of: turning a host process's raw output bytes into the UTF-8
// vt.Screen.Feed expects, for hosts that still talk a legacy single-byte
// encoding. DOCS ("ESC % @"/"ESC % G") toggles vt.Screen's own in-band
// single-byte/UTF-8 mode; Codec is the out-of-band counterpart an embedder
// reaches for when the bytes arriving over the wire were never UTF-8 to
// begin with (legacy DOS/mainframe sessions, some serial links).
package codec

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Codec decodes a byte stream in one named encoding to UTF-8.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// named lists the encodings this emulator knows how to fall back to. UTF-8
// is included so Select("utf-8") is always valid even though it is a
// no-op transform.
var named = map[string]encoding.Encoding{
	"utf-8":      unicode.UTF8,
	"latin1":     charmap.ISO8859_1,
	"iso-8859-1": charmap.ISO8859_1,
	"cp437":      charmap.CodePage437,
	"cp850":      charmap.CodePage850,
	"windows-1252": charmap.Windows1252,
}

// Select returns the Codec for a named encoding. Unknown names fail rather
// than silently falling back, since a wrong guess here corrupts every byte
// that follows it.
func Select(name string) (*Codec, error) {
	enc, ok := named[name]
	if !ok {
		return nil, fmt.Errorf("codec: unknown encoding %q", name)
	}
	return &Codec{name: name, enc: enc}, nil
}

// Name reports the encoding this Codec was selected for.
func (c *Codec) Name() string { return c.name }

// Decode converts src, assumed to be entirely in this Codec's encoding,
// to UTF-8. Each call is decoded on its own: a multi-byte sequence split
// across two calls is not reassembled.
func (c *Codec) Decode(src []byte) ([]byte, error) {
	// x/text decoders write U+FFFD for undecodable bytes instead of failing,
	// so UTF-8 input is validated first; otherwise a Chain could never fall
	// past a UTF-8 entry.
	if c.enc == unicode.UTF8 && !utf8.Valid(src) {
		return nil, fmt.Errorf("codec: decode %s: invalid UTF-8", c.name)
	}
	out, err := c.enc.NewDecoder().Bytes(src)
	if err != nil {
		return nil, fmt.Errorf("codec: decode %s: %w", c.name, err)
	}
	return out, nil
}

// Chain tries each Codec in order and returns the first successful
// decode, falling back to the next on error. This models a host that
// cannot declare its encoding up front: Latin-1 never errors (every byte
// is a valid code point), so a Chain should list it last as the universal
// fallback.
type Chain struct {
	codecs []*Codec
}

// NewChain builds a Chain trying codecs in the given order.
func NewChain(codecs ...*Codec) *Chain {
	return &Chain{codecs: codecs}
}

// Decode runs src through the chain, returning the first codec that
// decodes it cleanly along with its output.
func (c *Chain) Decode(src []byte) (decoded []byte, used *Codec, err error) {
	var lastErr error
	for _, codec := range c.codecs {
		out, decErr := codec.Decode(src)
		if decErr == nil {
			return out, codec, nil
		}
		lastErr = decErr
	}
	return nil, nil, fmt.Errorf("codec: all encodings in chain failed, last error: %w", lastErr)
}
