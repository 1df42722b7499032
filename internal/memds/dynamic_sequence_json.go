package memds

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/inoxlang/dynseq/internal/value"
)

// MarshalJSON encodes the elements as a JSON array.
func (s *DynamicSequence[T]) MarshalJSON() ([]byte, error) {
	if s.length == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(s.storage[:s.length])
}

// UnmarshalJSON replaces the elements of s by the elements of a JSON array, the capacity of s becomes
// the number of decoded elements (1 if there are none). Sequences of value.Value are decoded with
// value.ParseJSONList.
func (s *DynamicSequence[T]) UnmarshalJSON(b []byte) error {
	var elements []T

	if _, ok := any(&elements).(*[]value.Value); ok {
		values, err := value.ParseJSONList(b)
		if err != nil {
			return err
		}
		elements = any(values).([]T)
	} else if err := json.Unmarshal(b, &elements); err != nil {
		return fmt.Errorf("failed to decode sequence: %w", err)
	}

	s.storage = make([]T, max(len(elements), MIN_DYNAMIC_SEQ_CAPACITY))
	s.length = copy(s.storage, elements)
	return nil
}
