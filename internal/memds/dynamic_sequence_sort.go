package memds

import "github.com/inoxlang/dynseq/internal/value"

// Sort sorts the elements in place with the configured comparator, by default the elements are ordered
// by structural digest (value.HashOrder): the order is deterministic but unrelated to the natural order
// of the elements. The sort is not stable.
func (s *DynamicSequence[T]) Sort() {
	cmp := s.config.Compare
	if cmp == nil {
		cmp = func(a, b T) int {
			return value.HashOrder(a, b)
		}
	}
	s.SortFunc(cmp)
}

// SortFunc sorts the elements in place using cmp, see Sort.
func (s *DynamicSequence[T]) SortFunc(cmp func(a, b T) int) {
	if cmp == nil {
		panic("nil comparison function")
	}
	quicksort(s.storage[:s.length], cmp)
}

// quicksort sorts elements using the last element of each partition as pivot.
func quicksort[T any](elements []T, cmp func(a, b T) int) {
	if len(elements) < 2 {
		return
	}

	pivotIndex := partition(elements, cmp)
	quicksort(elements[:pivotIndex], cmp)
	quicksort(elements[pivotIndex+1:], cmp)
}

// partition moves the elements less or equal to the pivot (last element) to the left,
// places the pivot right after them and returns its index.
func partition[T any](elements []T, cmp func(a, b T) int) int {
	high := len(elements) - 1
	pivot := elements[high]

	i := 0
	for j := 0; j < high; j++ {
		if cmp(elements[j], pivot) <= 0 {
			elements[i], elements[j] = elements[j], elements[i]
			i++
		}
	}

	elements[i], elements[high] = elements[high], elements[i]
	return i
}
