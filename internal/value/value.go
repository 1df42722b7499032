// Package value contains the element variant stored by heterogeneous sequences
// and the element policies (equality, digest, ordering, rendering) sequences use by default.
package value

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/inoxlang/dynseq/internal/commonfmt"
	"golang.org/x/exp/constraints"
)

var (
	_ = []Value{Int(0), Char(0), Text(""), Other{}}
)

// A Value is an integer, a character, a text or any other Go value.
// The set of implementations is closed.
type Value interface {
	// Equal reports whether other has the same variant and the same content.
	Equal(other Value) bool

	// Repr returns the representation used when rendering sequences:
	// characters are single-quoted, texts are double-quoted.
	Repr() string

	// String returns the unquoted textual form.
	String() string

	appendCanonical(b []byte) []byte
}

type Int int64

// FromInteger returns i as an Int, unsigned integers above math.MaxInt64 do not fit
// and are wrapped as an Other holding a uint64.
func FromInteger[T constraints.Integer](i T) Value {
	if i > 0 && uint64(i) > math.MaxInt64 {
		return Other{V: uint64(i)}
	}
	return Int(i)
}

func (i Int) Equal(other Value) bool {
	o, ok := other.(Int)
	return ok && i == o
}

func (i Int) Repr() string {
	return i.String()
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

type Char rune

func (c Char) Equal(other Value) bool {
	o, ok := other.(Char)
	return ok && c == o
}

func (c Char) Repr() string {
	return commonfmt.FmtRune(rune(c))
}

func (c Char) String() string {
	return string(rune(c))
}

type Text string

func (t Text) Equal(other Value) bool {
	o, ok := other.(Text)
	return ok && t == o
}

func (t Text) Repr() string {
	return commonfmt.FmtText(string(t))
}

func (t Text) String() string {
	return string(t)
}

// Other wraps a Go value that is neither an integer nor a string.
// Two Other values are equal if their wrapped values are deeply equal.
type Other struct {
	V any
}

func (o Other) Equal(other Value) bool {
	x, ok := other.(Other)
	return ok && reflect.DeepEqual(o.V, x.V)
}

func (o Other) Repr() string {
	return o.String()
}

func (o Other) String() string {
	return fmt.Sprint(o.V)
}

// Of lifts v into a Value: Go integers become Int (see FromInteger), strings become Text and values
// that already are a Value are returned as is. Runes are int32 values, so they
// become Int, use Char explicitly for characters.
func Of(v any) Value {
	switch val := v.(type) {
	case Value:
		return val
	case string:
		return Text(val)
	case int:
		return FromInteger(val)
	case int8:
		return FromInteger(val)
	case int16:
		return FromInteger(val)
	case int32:
		return FromInteger(val)
	case int64:
		return FromInteger(val)
	case uint:
		return FromInteger(val)
	case uint8:
		return FromInteger(val)
	case uint16:
		return FromInteger(val)
	case uint32:
		return FromInteger(val)
	case uint64:
		return FromInteger(val)
	default:
		return Other{V: v}
	}
}

// Equal reports whether a and b are structurally equal once lifted with Of.
// Values of different variants are never equal: Int(3) and Text("3") differ.
func Equal(a, b any) bool {
	return Of(a).Equal(Of(b))
}

// Format returns the representation of v used when rendering sequences.
func Format(v any) string {
	return Of(v).Repr()
}
