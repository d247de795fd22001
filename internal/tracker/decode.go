package tracker

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// uriReserved are the characters whose escapes decodeURI leaves encoded.
const uriReserved = ";/?:@&=+$,#"

var errMalformedEscape = errors.New("malformed percent escape")

// decodeURI percent-decodes s with URI semantics: UTF-8 sequences are
// decoded, escapes of reserved characters are kept as-is.
func decodeURI(s string) (string, error) {
	if !strings.Contains(s, "%") {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '%' {
			b.WriteByte(s[i])
			i++
			continue
		}

		c, ok := unhexAt(s, i)
		if !ok {
			return "", errMalformedEscape
		}

		if c < utf8.RuneSelf {
			if strings.IndexByte(uriReserved, c) >= 0 {
				b.WriteString(s[i : i+3])
			} else {
				b.WriteByte(c)
			}
			i += 3
			continue
		}

		n := sequenceLen(c)
		if n == 0 {
			return "", errMalformedEscape
		}
		buf := make([]byte, 0, n)
		buf = append(buf, c)
		j := i + 3
		for len(buf) < n {
			cc, ok := unhexAt(s, j)
			if !ok || cc&0xC0 != 0x80 {
				return "", errMalformedEscape
			}
			buf = append(buf, cc)
			j += 3
		}
		if !utf8.Valid(buf) {
			return "", errMalformedEscape
		}
		b.Write(buf)
		i = j
	}
	return b.String(), nil
}

// decodeOrRaw returns the decoded form of s, or s unchanged when it holds a
// malformed escape.
func decodeOrRaw(s string) string {
	decoded, err := decodeURI(s)
	if err != nil {
		return s
	}
	return decoded
}

// sequenceLen returns the UTF-8 sequence length announced by lead byte c.
func sequenceLen(c byte) int {
	switch {
	case c&0xE0 == 0xC0:
		return 2
	case c&0xF0 == 0xE0:
		return 3
	case c&0xF8 == 0xF0:
		return 4
	}
	return 0
}

// unhexAt decodes the escape "%XX" starting at s[i].
func unhexAt(s string, i int) (byte, bool) {
	if i+2 >= len(s) || s[i] != '%' {
		return 0, false
	}
	hi, ok1 := fromHex(s[i+1])
	lo, ok2 := fromHex(s[i+2])
	if !ok1 || !ok2 {
		return 0, false
	}
	return hi<<4 | lo, true
}

func fromHex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
