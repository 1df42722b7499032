package value

import (
	"cmp"

	"github.com/maruel/natural"
)

// HashOrder compares the digests of a and b. The resulting order is deterministic
// but carries no meaning: 2 is not guaranteed to sort before 10.
func HashOrder(a, b any) int {
	return cmp.Compare(Digest(a), Digest(b))
}

// NaturalOrder compares the unquoted textual forms of a and b, runs of digits are
// compared numerically ("item2" < "item10").
func NaturalOrder(a, b any) int {
	s1 := Of(a).String()
	s2 := Of(b).String()

	switch {
	case s1 == s2:
		return 0
	case natural.Less(s1, s2):
		return -1
	default:
		return 1
	}
}
