package showif

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// unquote evaluates a single- or double-quoted string literal.
//
// Escapes follow the usual C-like rules, with \0 for NUL. An escape that is
// unknown or malformed stands for the escaped character itself.
func unquote(raw string) (string, error) {
	if len(raw) < 2 || (raw[0] != '"' && raw[0] != '\'') || raw[len(raw)-1] != raw[0] {
		return "", fmt.Errorf("invalid string literal %s", raw)
	}
	quote := raw[0]
	body := raw[1 : len(raw)-1]

	var b strings.Builder
	b.Grow(len(body))
	for len(body) > 0 {
		if body[0] == '\\' && len(body) > 1 {
			switch body[1] {
			case '0':
				if len(body) == 2 || body[2] < '0' || body[2] > '7' {
					b.WriteByte(0)
					body = body[2:]
					continue
				}
			case '\n':
				body = body[2:]
				continue
			}
		}

		// \xXX and octal escapes name code points, not bytes.
		value, _, tail, err := strconv.UnquoteChar(body, quote)
		if err != nil {
			if body[0] != '\\' || len(body) < 2 {
				return "", fmt.Errorf("invalid string literal %s: %w", raw, err)
			}
			r, size := utf8.DecodeRuneInString(body[1:])
			b.WriteRune(r)
			body = body[1+size:]
			continue
		}
		b.WriteRune(value)
		body = tail
	}
	return b.String(), nil
}

func parseNumber(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}
