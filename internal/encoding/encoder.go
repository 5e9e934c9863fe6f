package encoding

import (
	"errors"
	"fmt"
	"strings"

	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var ErrUnknownCharset = errors.New("unknown charset")

// Lookup resolves an IANA or MIME charset name. The empty name is UTF-8.
func Lookup(name string) (xencoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}

	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}

	if enc, err := ianaindex.MIME.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}

	for _, enc := range charmap.All {
		if cm, ok := enc.(*charmap.Charmap); ok && strings.EqualFold(cm.String(), name) {
			return enc, nil
		}
	}

	return nil, fmt.Errorf("encoding: %w '%s'", ErrUnknownCharset, name)
}

// Encode converts s into the named charset. Runes the charset cannot
// represent make it fail.
func Encode(s string, name string) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	out, err := enc.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("encoding: could not encode to %s: %w", name, err)
	}

	return []byte(out), nil
}
