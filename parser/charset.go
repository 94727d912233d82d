package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// charsetAliases covers the non-canonical charset names some GenICam
// vendors emit in <?xml encoding="..."?> (no hyphen, wrong case, or the
// Windows code-page number alone) that htmlindex.Get doesn't recognize on
// its own.
var charsetAliases = map[string]encoding.Encoding{
	"iso8859-1":   charmap.ISO8859_1,
	"latin1":      charmap.ISO8859_1,
	"cp1252":      charmap.Windows1252,
	"windows1252": charmap.Windows1252,
}

// charsetReader adapts a non-UTF-8 encoding declared in an XML document's
// <?xml encoding="..."?> declaration to a UTF-8 io.Reader, so
// encoding/xml.Decoder can consume register-description documents
// produced by vendors that still emit ISO-8859-1 or Windows-1252 text in
// ToolTip/Description elements.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	if enc, ok := charsetAliases[strings.ToLower(charset)]; ok {
		return enc.NewDecoder().Reader(input), nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("parser: unsupported charset %q: %w", charset, err)
	}
	return enc.NewDecoder().Reader(input), nil
}
