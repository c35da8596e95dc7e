package domain

import (
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// reserved characters are never decoded. %25 is kept too, so that decoding
// never creates a new escape sequence.
const keepEscaped = ";/?:@&=+$,#%"

const unescaped = "-_.!~*'();/?:@&=+$,#"

//NormalizeLocator decodes and then re-encodes a locator so that input which is
//already percent encoded is not encoded a second time. Applying it to its own
//output returns the same value.
func NormalizeLocator(locator string) string {
	return encodeLocator(decodeLocator(locator))
}

// decodeLocator never fails. A stray percent sign becomes %25 and escaped bytes
// that do not form valid UTF-8 are left as they are.
func decodeLocator(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '%' {
			b.WriteByte(s[i])
			i++
			continue
		}

		if !isEscape(s, i) {
			b.WriteString("%25")
			i++
			continue
		}

		c := unhex(s[i+1])<<4 | unhex(s[i+2])
		if c < utf8.RuneSelf {
			if strings.IndexByte(keepEscaped, c) >= 0 {
				b.WriteString(s[i : i+3])
			} else {
				b.WriteByte(c)
			}
			i += 3
			continue
		}

		start := i
		run := []byte{}
		for isEscape(s, i) {
			c = unhex(s[i+1])<<4 | unhex(s[i+2])
			if c < utf8.RuneSelf {
				break
			}
			run = append(run, c)
			i += 3
		}

		if utf8.Valid(run) {
			b.Write(run)
		} else {
			b.WriteString(s[start:i])
		}
	}

	return b.String()
}

func isEscape(s string, i int) bool {
	return i+2 < len(s) && s[i] == '%' && isHex(s[i+1]) && isHex(s[i+2])
}

func encodeLocator(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isEscape(s, i):
			b.WriteString(s[i : i+3])
			i += 2
		case isAlphaNum(c) || strings.IndexByte(unescaped, c) >= 0:
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}

	return b.String()
}

func isAlphaNum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
