package value

import "strconv"

// IsDigit reports whether v is an integer, or a character or text that is exactly the
// canonical decimal form of an integer: "5" and "-5" are digits, "05", "+5", " 5" and "abc" are not.
func IsDigit(v any) bool {
	switch val := Of(v).(type) {
	case Int:
		return true
	case Char:
		return isCanonicalInteger(val.String())
	case Text:
		return isCanonicalInteger(string(val))
	case Other:
		//unsigned integer too large for Int
		_, ok := val.V.(uint64)
		return ok
	default:
		return false
	}
}

func isCanonicalInteger(s string) bool {
	i, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return strconv.Itoa(i) == s
}
