package encoding

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode turns one raw input line written in the named charset into a UTF-8
// pattern with surrounding whitespace removed.
//
// The empty name means UTF-8. A leading byte order mark is dropped there, and
// lines that are not valid UTF-8 are read as MacRoman, which older macOS tools
// still produce.
func Decode(input []byte, name string) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}

	if enc != unicode.UTF8 {
		decoded, err := enc.NewDecoder().Bytes(input)
		if err != nil {
			return "", fmt.Errorf("encoding: could not decode from %s: %w", name, err)
		}

		return strings.TrimSpace(string(decoded)), nil
	}

	line := bytes.TrimPrefix(input, utf8BOM)

	if !utf8.Valid(line) {
		line, err = charmap.Macintosh.NewDecoder().Bytes(line)
		if err != nil {
			return "", fmt.Errorf("encoding: could not decode from macintosh: %w", err)
		}
	}

	return strings.TrimSpace(strings.ToValidUTF8(string(line), "")), nil
}
