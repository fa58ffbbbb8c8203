package source

import (
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"
)

// decodeText converts raw bytes from the configured charset to a UTF-8
// string. UTF-8 input passes through untouched.
func decodeText(raw []byte, charset string) (string, error) {
	if charset == "" || strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "utf8") {
		return string(raw), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", eris.Wrapf(err, "source: unsupported charset %q", charset)
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", eris.Wrapf(err, "source: decode %s", charset)
	}
	return string(decoded), nil
}
