package textio

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when Options.Encoding is empty.
const DefaultEncoding = "utf-8"

var namedEncodings = map[string]encoding.Encoding{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"cp437":        charmap.CodePage437,
	"ibm437":       charmap.CodePage437,
	"cp850":        charmap.CodePage850,
	"ibm850":       charmap.CodePage850,
	"utf-16":       unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
}

// LookupDecoder returns the transformer that converts the named encoding to
// UTF-8. UTF-8 input has a leading byte order mark stripped, and a UTF-16 BOM
// switches decoding to UTF-16. Labels outside the built-in table are resolved
// through the WHATWG encoding index.
func LookupDecoder(name string) (transform.Transformer, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "", DefaultEncoding, "utf8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	}
	if enc, ok := namedEncodings[key]; ok {
		return enc.NewDecoder(), nil
	}
	enc, err := htmlindex.Get(key)
	if err != nil {
		return nil, fmt.Errorf("unsupported text encoding %q", name)
	}
	return enc.NewDecoder(), nil
}
