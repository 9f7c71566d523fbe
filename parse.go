package oledbuf

import (
	"io"
	"regexp"
	"strings"
)

// Stats describes how a text input was consumed by ParseStats.
type Stats struct {
	Tokens   int // Whitespace separated tokens after cleanup
	Accepted int // Tokens stored in the buffer (at most BufferSize)
	Dropped  int // Tokens that were neither hex nor decimal
	Ignored  int // Tokens left unread after the buffer was full
}

// Padded returns the number of zero bytes appended to fill the buffer.
func (s Stats) Padded() int {
	return BufferSize - s.Accepted
}

var separators = regexp.MustCompile(`(?i)\[|\]|0x`)

// Parse converts a textual dump of a framebuffer into a Buffer.
//
// Brackets, commas and 0x prefixes are treated as separators. Each remaining
// token of one or two hex digits is read as hex, otherwise a token of decimal
// digits is read as decimal (modulo 256). Anything else is skipped. The
// result is zero padded, and tokens beyond the first BufferSize values are
// ignored. Parse never fails.
//
// Hex wins for short tokens: "30" is 0x30, not 30.
func Parse(text string) Buffer {
	b, _ := ParseStats(text)
	return b
}

// ParseStats is Parse with a report of dropped and ignored tokens. The
// returned buffer is always identical to Parse(text).
func ParseStats(text string) (Buffer, Stats) {
	var (
		b  Buffer
		st Stats
	)
	if text == "" {
		return b, st
	}

	text = separators.ReplaceAllLiteralString(text, " ")
	text = strings.ReplaceAll(text, ",", " ")
	tokens := strings.Fields(text)
	st.Tokens = len(tokens)

	for i, tok := range tokens {
		v, ok := parseToken(tok)
		if !ok {
			st.Dropped++
			continue
		}
		b[st.Accepted] = v
		st.Accepted++
		if st.Accepted == BufferSize {
			st.Ignored = len(tokens) - i - 1
			break
		}
	}
	return b, st
}

// ParseReader reads all of r and parses it. The only possible error is the
// one returned by r.
func ParseReader(r io.Reader) (Buffer, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return Buffer{}, err
	}
	return Parse(string(text)), nil
}

// parseToken reads a single non-empty token.
func parseToken(tok string) (byte, bool) {
	if len(tok) <= 2 {
		var v byte
		hex := true
		for i := 0; i < len(tok); i++ {
			n, ok := hexDigit(tok[i])
			if !ok {
				hex = false
				break
			}
			v = v<<4 | n
		}
		if hex {
			return v, true
		}
	}

	// Byte arithmetic wraps, which keeps the value modulo 256 for any length.
	var v byte
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + (c - '0')
	}
	return v, true
}

func hexDigit(c byte) (byte, bool) {
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
