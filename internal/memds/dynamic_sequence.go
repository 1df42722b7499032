package memds

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/inoxlang/dynseq/internal/value"
	"github.com/rs/zerolog"
)

const (
	SOURCE_LOG_FIELD_NAME    = "src"
	DYNAMIC_SEQ_LOG_SRC      = "dynseq"
	DYNAMIC_SEQ_ELEM_SEP     = " , "
	GROWTH_FACTOR            = 2
	MIN_DYNAMIC_SEQ_CAPACITY = 1
)

var (
	ErrElementNotFound = errors.New("element not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// thread unsafe growable sequence, the capacity doubles each time an insertion would exceed it.
// The zero value is an empty sequence ready to use.
type DynamicSequence[T any] struct {
	storage []T //len(storage) is the capacity
	length  int

	config DynamicSequenceConfig[T]
	logger *zerolog.Logger
}

type DynamicSequenceConfig[T any] struct {
	// Equal is used by Remove, Contains and IndexOf, defaults to value.Equal.
	Equal func(a, b T) bool

	// Compare is used by Sort, defaults to value.HashOrder.
	Compare func(a, b T) int

	// Format renders an element in String(), defaults to value.Format.
	Format func(e T) string

	// Logger receives debug events such as growth, no logging if nil.
	Logger *zerolog.Logger
}

// NewDynamicSequence creates a sequence containing a copy of elements, its capacity is len(elements)
// or 1 if no elements are passed.
func NewDynamicSequence[T any](elements ...T) *DynamicSequence[T] {
	return NewDynamicSequenceWithConfig(DynamicSequenceConfig[T]{}, elements...)
}

func NewDynamicSequenceWithConfig[T any](config DynamicSequenceConfig[T], elements ...T) *DynamicSequence[T] {
	capacity := max(len(elements), MIN_DYNAMIC_SEQ_CAPACITY)

	s := &DynamicSequence[T]{
		storage: make([]T, capacity),
		length:  len(elements),
		config:  config,
	}
	copy(s.storage, elements)

	if config.Logger != nil {
		logger := config.Logger.With().Str(SOURCE_LOG_FIELD_NAME, DYNAMIC_SEQ_LOG_SRC).Logger()
		s.logger = &logger
	}

	return s
}

// Len returns the number of elements.
func (s *DynamicSequence[T]) Len() int {
	return s.length
}

// Cap returns the number of allocated slots.
func (s *DynamicSequence[T]) Cap() int {
	return len(s.storage)
}

// Append adds v at the end of the sequence, growing the storage if it is full.
func (s *DynamicSequence[T]) Append(v T) {
	if s.length == len(s.storage) {
		s.grow()
	}
	s.storage[s.length] = v
	s.length++
}

// Extend appends each value in order.
func (s *DynamicSequence[T]) Extend(values ...T) {
	for _, v := range values {
		s.Append(v)
	}
}

func (s *DynamicSequence[T]) grow() {
	oldCapacity := len(s.storage)
	newCapacity := max(GROWTH_FACTOR*oldCapacity, MIN_DYNAMIC_SEQ_CAPACITY)

	newStorage := make([]T, newCapacity)
	copy(newStorage, s.storage[:s.length])
	s.storage = newStorage

	if s.logger != nil {
		s.logger.Debug().
			Int("old-capacity", oldCapacity).
			Int("new-capacity", newCapacity).
			Msg("sequence storage grown")
	}
}

// At returns the element at index i.
func (s *DynamicSequence[T]) At(i int) (T, error) {
	if i < 0 || i >= s.length {
		var zero T
		return zero, s.fmtIndexOutOfRange(i)
	}
	return s.storage[i], nil
}

// Contains reports whether an element is equal to v.
func (s *DynamicSequence[T]) Contains(v T) bool {
	_, found := s.indexOf(v)
	return found
}

// IndexOf returns the index of the first element equal to v, or (-1, ErrElementNotFound) if there is none.
func (s *DynamicSequence[T]) IndexOf(v T) (int, error) {
	index, found := s.indexOf(v)
	if !found {
		return -1, fmt.Errorf("%w: %s is not in the sequence", ErrElementNotFound, s.format(v))
	}
	return index, nil
}

func (s *DynamicSequence[T]) indexOf(v T) (int, bool) {
	for i, e := range s.storage[:s.length] {
		if s.equal(e, v) {
			return i, true
		}
	}
	return -1, false
}

// Remove removes the first element equal to v by shifting the next elements to the left.
// It returns false and does nothing if no element is equal to v.
func (s *DynamicSequence[T]) Remove(v T) bool {
	index, found := s.indexOf(v)
	if !found {
		return false
	}

	copy(s.storage[index:], s.storage[index+1:s.length])
	s.length--

	//release the reference held by the now unused slot.
	var zero T
	s.storage[s.length] = zero
	return true
}

// Update replaces the element at index by v. The sequence is left unchanged if the index is out of range.
func (s *DynamicSequence[T]) Update(index int, v T) error {
	if index < 0 || index >= s.length {
		return s.fmtIndexOutOfRange(index)
	}
	s.storage[index] = v
	return nil
}

// Clear removes all elements, the capacity is kept.
func (s *DynamicSequence[T]) Clear() {
	clear(s.storage[:s.length])
	s.length = 0
}

// Reverse reverses the order of the elements in place.
func (s *DynamicSequence[T]) Reverse() {
	for i, j := 0, s.length-1; i < j; i, j = i+1, j-1 {
		s.storage[i], s.storage[j] = s.storage[j], s.storage[i]
	}
}

// Snapshot returns an independent sequence with the same configuration containing the elements of s,
// its capacity is equal to its length (1 if empty).
func (s *DynamicSequence[T]) Snapshot() *DynamicSequence[T] {
	storage := make([]T, max(s.length, MIN_DYNAMIC_SEQ_CAPACITY))
	copy(storage, s.storage[:s.length])

	return &DynamicSequence[T]{
		storage: storage,
		length:  s.length,
		config:  s.config,
		logger:  s.logger,
	}
}

// Values returns a copy of the elements.
func (s *DynamicSequence[T]) Values() []T {
	return slices.Clone(s.storage[:s.length])
}

func (s *DynamicSequence[T]) ForEachElem(fn func(i int, e T) error) error {
	for i, e := range s.storage[:s.length] {
		err := fn(i, e)
		if err != nil {
			return err
		}
	}
	return nil
}

// String returns the elements separated by " , " between square brackets, an empty sequence is rendered as [].
func (s *DynamicSequence[T]) String() string {
	buf := strings.Builder{}
	buf.WriteByte('[')

	for i, e := range s.storage[:s.length] {
		if i != 0 {
			buf.WriteString(DYNAMIC_SEQ_ELEM_SEP)
		}
		buf.WriteString(s.format(e))
	}

	buf.WriteByte(']')
	return buf.String()
}

func (s *DynamicSequence[T]) equal(a, b T) bool {
	if s.config.Equal != nil {
		return s.config.Equal(a, b)
	}
	return value.Equal(a, b)
}

func (s *DynamicSequence[T]) format(e T) string {
	if s.config.Format != nil {
		return s.config.Format(e)
	}
	return value.Format(e)
}

func (s *DynamicSequence[T]) fmtIndexOutOfRange(index int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, s.length)
}
