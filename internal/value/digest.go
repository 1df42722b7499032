package value

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/zeebo/blake3"
)

const (
	INT_DIGEST_TAG   = 'i'
	CHAR_DIGEST_TAG  = 'c'
	TEXT_DIGEST_TAG  = 's'
	OTHER_DIGEST_TAG = 'o'
)

var (
	// pointers are followed and map keys are sorted so that deeply equal values
	// have the same dump.
	otherDigestPrinter = spew.ConfigState{
		Indent:                  " ",
		SortKeys:                true,
		SpewKeys:                true,
		DisableMethods:          true,
		DisablePointerMethods:   true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
)

// Digest returns the structural digest of v: the first 8 bytes of the BLAKE3 hash
// of a type-tagged encoding of Of(v). Structurally equal values have the same digest,
// the digest does not depend on the process. Exceptions for Other values: 0.0 and -0.0 are
// deeply equal but have different digests, channels and funcs are encoded by address.
func Digest(v any) uint64 {
	canonical := Of(v).appendCanonical(make([]byte, 0, 16))
	sum := blake3.Sum256(canonical)
	return binary.LittleEndian.Uint64(sum[:8])
}

func (i Int) appendCanonical(b []byte) []byte {
	b = append(b, INT_DIGEST_TAG)
	return binary.LittleEndian.AppendUint64(b, uint64(i))
}

func (c Char) appendCanonical(b []byte) []byte {
	b = append(b, CHAR_DIGEST_TAG)
	return utf8.AppendRune(b, rune(c))
}

func (t Text) appendCanonical(b []byte) []byte {
	b = append(b, TEXT_DIGEST_TAG)
	return append(b, t...)
}

func (o Other) appendCanonical(b []byte) []byte {
	b = append(b, OTHER_DIGEST_TAG)
	return append(b, otherDigestPrinter.Sdump(o.V)...)
}
