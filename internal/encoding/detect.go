// Package encoding normalizes uploaded legacy dumps to UTF-8. Exports from
// older browsers and spreadsheet round-trips arrive in a mix of charsets.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset names the encoding a payload was decoded from.
type Charset string

const (
	UTF8        Charset = "UTF-8"
	UTF8BOM     Charset = "UTF-8-BOM"
	UTF16LE     Charset = "UTF-16LE"
	UTF16BE     Charset = "UTF-16BE"
	Windows1252 Charset = "windows-1252"
	ISO88599    Charset = "ISO-8859-9"
)

const sampleSize = 4096

var boms = []struct {
	prefix  []byte
	charset Charset
}{
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8BOM},
	{[]byte{0xFF, 0xFE}, UTF16LE},
	{[]byte{0xFE, 0xFF}, UTF16BE},
}

// Detect guesses the charset of sample. A byte-order mark wins, then valid
// UTF-8, then chardet's best guess; Windows-1252 is the fallback.
func Detect(sample []byte) Charset {
	for _, b := range boms {
		if bytes.HasPrefix(sample, b.prefix) {
			return b.charset
		}
	}

	if utf8.Valid(sample) {
		return UTF8
	}

	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		return Windows1252
	}

	switch result.Charset {
	case "UTF-8":
		return UTF8
	case "ISO-8859-9":
		return ISO88599
	}

	return Windows1252
}

func decoder(cs Charset) encoding.Encoding {
	switch cs {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case Windows1252:
		return charmap.Windows1252
	case ISO88599:
		return charmap.ISO8859_9
	}

	return nil
}

// NewUTF8Reader wraps r so that reads yield UTF-8, reporting the charset it
// detected from the first few kilobytes.
func NewUTF8Reader(r io.Reader) (io.Reader, Charset, error) {
	br := bufio.NewReaderSize(r, sampleSize)

	sample, err := br.Peek(sampleSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", fmt.Errorf("peeking input: %w", err)
	}

	cs := Detect(sample)

	if cs == UTF8BOM {
		_, _ = br.Discard(len(boms[0].prefix))
		return br, cs, nil
	}

	enc := decoder(cs)
	if enc == nil {
		return br, cs, nil
	}

	return transform.NewReader(br, enc.NewDecoder()), cs, nil
}

// ReadAll reads r to the end as UTF-8.
func ReadAll(r io.Reader) ([]byte, Charset, error) {
	ur, cs, err := NewUTF8Reader(r)
	if err != nil {
		return nil, "", err
	}

	b, err := io.ReadAll(ur)
	if err != nil {
		return nil, cs, fmt.Errorf("decoding %s input: %w", cs, err)
	}

	return b, cs, nil
}
