package commonfmt

import (
	"strconv"
	"unicode/utf8"
)

var escapedRunes = map[rune]string{
	'\b': `'\b'`,
	'\f': `'\f'`,
	'\n': `'\n'`,
	'\r': `'\r'`,
	'\t': `'\t'`,
	'\v': `'\v'`,
	'\'': `'\''`,
	'\\': `'\\'`,
}

// FmtRune returns r surrounded by single quotes, control characters, quotes and backslashes are escaped.
func FmtRune(r rune) string {
	if escaped, ok := escapedRunes[r]; ok {
		return escaped
	}
	if !utf8.ValidRune(r) {
		return `'�'`
	}

	b := make([]byte, 0, 2+utf8.UTFMax)
	b = append(b, '\'')
	b = utf8.AppendRune(b, r)
	b = append(b, '\'')
	return string(b)
}

// FmtText returns s surrounded by double quotes, using Go escape sequences for special characters.
func FmtText(s string) string {
	return strconv.Quote(s)
}
