package value

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// MarshalJSON encodes the character as a one-character JSON string.
func (c Char) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// MarshalJSON encodes the wrapped value.
func (o Other) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.V)
}

// ParseJSONList decodes a JSON array into values: integral numbers become Int (see FromInteger),
// strings become Text and everything else is wrapped in Other. Integers that fit neither
// in an int64 nor in a uint64 are kept as json.Number.
// Characters are encoded as strings and therefore come back as Text.
func ParseJSONList(b []byte) ([]Value, error) {
	var elements []any

	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()

	if err := decoder.Decode(&elements); err != nil {
		return nil, fmt.Errorf("failed to parse list of values: %w", err)
	}

	values := make([]Value, len(elements))
	for i, e := range elements {
		values[i] = fromJSON(e)
	}
	return values, nil
}

func fromJSON(e any) Value {
	switch val := e.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return Int(i)
		}
		if u, err := strconv.ParseUint(string(val), 10, 64); err == nil {
			return FromInteger(u)
		}
		if strings.ContainsAny(string(val), ".eE") {
			if f, err := val.Float64(); err == nil {
				return Other{V: f}
			}
		}
		//integer outside of the uint64 & int64 ranges, the text is kept to avoid losing precision.
		return Other{V: val}
	case string:
		return Text(val)
	default:
		return Other{V: val}
	}
}
